package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"go.uber.org/zap"

	"moodlight_backend/internals/configs"
	database "moodlight_backend/internals/databases"
	questionScheduler "moodlight_backend/internals/features/journal/questions/scheduler"
	questionService "moodlight_backend/internals/features/journal/questions/service"
	notificationService "moodlight_backend/internals/features/notifications/service"
	notificationSubscriber "moodlight_backend/internals/features/notifications/subscriber"
	authScheduler "moodlight_backend/internals/features/users/auth/scheduler"
	helper "moodlight_backend/internals/helpers"
	"moodlight_backend/internals/helpers/dbtime"
	"moodlight_backend/internals/infra/cache"
	"moodlight_backend/internals/infra/events"
	middlewares "moodlight_backend/internals/middlewares"
	routes "moodlight_backend/internals/route"
	"moodlight_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	configs.InitLogger(configs.AppEnv)
	defer func() { _ = zap.L().Sync() }()

	loc := dbtime.LoadLocation(configs.Timezone)
	clock := dbtime.SystemClock{}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing + per-request timeout
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		zap.L().Debug("request",
			zap.String("id", id),
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
		)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	if configs.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			zap.L().Fatal("auto migrate failed", zap.Error(err))
		}
	}
	if configs.SeedDir != "" {
		seeds.RunAllSeeds(database.DB, configs.SeedDir)
	}

	// 🧰 Redis cache (optional)
	var questionCache cache.Cache = cache.Noop{}
	if configs.RedisAddr != "" {
		rc, err := cache.New(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
		if err != nil {
			zap.L().Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			questionCache = rc
			defer func() { _ = rc.Close() }()
		}
	}

	// 📣 NATS event bus (optional)
	var publisher events.Publisher = events.Noop{}
	if configs.NatsURL != "" {
		bus, err := events.Connect(events.Config{URL: configs.NatsURL, Name: "moodlight-backend"})
		if err != nil {
			zap.L().Warn("nats unavailable, events disabled", zap.Error(err))
		} else {
			publisher = bus
			defer bus.Close()
			notifier := notificationService.NewNotifier(database.DB, notificationService.LogSender{})
			if _, err := notificationSubscriber.Subscribe(bus, notifier); err != nil {
				zap.L().Warn("notification subscribe failed", zap.Error(err))
			}
		}
	}

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// ⏱ schedulers after DB is ready
	questions := questionService.NewQuestionService(database.DB, questionCache, clock, loc)
	rotator := questionScheduler.NewRotator(database.DB, questionScheduler.Options{
		Trigger:     questionScheduler.NewCronTrigger(configs.RotationCron, loc),
		Clock:       clock,
		Location:    loc,
		Delay:       configs.RotationDelay,
		Invalidator: questions,
	})
	if err := rotator.Start(rootCtx); err != nil {
		zap.L().Fatal("rotation scheduler failed to start", zap.Error(err))
	}

	authScheduler.StartBlacklistCleanupScheduler(rootCtx, database.DB, configs.TokenBlacklistTTLDays, 24*time.Hour)

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		DB:                  database.DB,
		Events:              publisher,
		Clock:               clock,
		Location:            loc,
		Questions:           questions,
		Rotator:             rotator,
		LegacyLikeDecrement: configs.LikeLegacyUnconditionalDecrement,
	})

	// 🔒 Keep-Alive & timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		zap.L().Info("✅ Listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			zap.L().Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopBackground()
	rotator.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
