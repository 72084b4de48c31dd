package questions

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/questions/model"
)

type QuestionSeed struct {
	Mood          string `json:"mood"`
	Contents      string `json:"contents"`
	ActivatedDate string `json:"activatedDate,omitempty"`
}

// SeedQuestionsFromJSON inserts questions whose (mood, contents) pair is not
// stored yet and returns how many were added.
func SeedQuestionsFromJSON(db *gorm.DB, filePath string) (int, error) {
	zap.L().Info("📥 reading question seeds", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}

	var seeds []QuestionSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return SeedQuestions(db, seeds)
}

func SeedQuestions(db *gorm.DB, seeds []QuestionSeed) (int, error) {
	var existing []model.QuestionModel
	if err := db.Select("mood", "contents").Find(&existing).Error; err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[string(q.Mood)+"|"+q.Contents] = true
	}

	var rows []model.QuestionModel
	for _, s := range seeds {
		mood := constants.Mood(strings.ToLower(strings.TrimSpace(s.Mood)))
		contents := strings.TrimSpace(s.Contents)
		if !mood.Valid() || contents == "" || len(contents) > constants.QuestionContentsMax {
			zap.L().Warn("skipping invalid question seed", zap.String("mood", s.Mood), zap.String("contents", s.Contents))
			continue
		}
		key := string(mood) + "|" + contents
		if seen[key] {
			continue
		}
		seen[key] = true

		row := model.QuestionModel{Mood: mood, Contents: contents}
		if d := strings.TrimSpace(s.ActivatedDate); d != "" {
			row.ActivatedDate = &d
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return 0, nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return 0, err
	}
	zap.L().Info("✅ questions seeded", zap.Int("count", len(rows)))
	return len(rows), nil
}
