package routes

import (
	"time"

	"gorm.io/gorm"

	questionScheduler "moodlight_backend/internals/features/journal/questions/scheduler"
	questionService "moodlight_backend/internals/features/journal/questions/service"
	"moodlight_backend/internals/helpers/dbtime"
	"moodlight_backend/internals/infra/events"
)

// Deps carries what the route tree needs beyond the DB handle.
type Deps struct {
	DB        *gorm.DB
	Events    events.Publisher
	Clock     dbtime.Clock
	Location  *time.Location
	Questions *questionService.QuestionService
	Rotator   *questionScheduler.Rotator

	LegacyLikeDecrement bool
}
