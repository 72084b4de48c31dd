package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	AppEnv string

	JWTSecret    string
	JWTAccessTTL time.Duration
	AdminKey     string

	Timezone      string
	RotationCron  string
	RotationDelay time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NatsURL string

	LikeLegacyUnconditionalDecrement bool
	TokenBlacklistTTLDays            int
	DBAutoMigrate                    bool
	SeedDir                          string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	AppEnv = v.GetString("APP_ENV")

	JWTSecret = v.GetString("JWT_SECRET")
	JWTAccessTTL = v.GetDuration("JWT_ACCESS_TTL")
	AdminKey = v.GetString("ADMIN_KEY")

	Timezone = v.GetString("TIMEZONE")
	RotationCron = v.GetString("ROTATION_CRON")
	RotationDelay = v.GetDuration("ROTATION_DELAY")

	RedisAddr = v.GetString("REDIS_ADDR")
	RedisPassword = v.GetString("REDIS_PASSWORD")
	RedisDB = v.GetInt("REDIS_DB")

	NatsURL = v.GetString("NATS_URL")

	LikeLegacyUnconditionalDecrement = v.GetBool("LIKE_LEGACY_UNCONDITIONAL_DECREMENT")
	TokenBlacklistTTLDays = v.GetInt("TOKEN_BLACKLIST_TTL_DAYS")
	DBAutoMigrate = v.GetBool("DB_AUTO_MIGRATE")
	SeedDir = v.GetString("SEED_DIR")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if AdminKey == "" {
		log.Println("⚠️ ADMIN_KEY is empty, admin sign-up disabled")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("JWT_ACCESS_TTL", "24h")
	v.SetDefault("TIMEZONE", "Asia/Seoul")
	v.SetDefault("ROTATION_CRON", "0 0 * * *")
	v.SetDefault("ROTATION_DELAY", "1s")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LIKE_LEGACY_UNCONDITIONAL_DECREMENT", false)
	v.SetDefault("TOKEN_BLACKLIST_TTL_DAYS", 7)
	v.SetDefault("DB_AUTO_MIGRATE", true)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
