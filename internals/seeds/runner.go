package seeds

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/seeds/questions"
	"moodlight_backend/internals/seeds/users"
)

// RunAllSeeds loads every seed file found under dir. Missing files are skipped.
func RunAllSeeds(db *gorm.DB, dir string) {
	//* Users
	if path := filepath.Join(dir, "users", "data_users.json"); fileExists(path) {
		if _, err := users.SeedUsersFromJSON(db, path); err != nil {
			zap.L().Error("user seed failed", zap.Error(err))
		}
	}

	//* Questions
	if path := filepath.Join(dir, "questions", "data_questions.json"); fileExists(path) {
		if _, err := questions.SeedQuestionsFromJSON(db, path); err != nil {
			zap.L().Error("question seed failed", zap.Error(err))
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
