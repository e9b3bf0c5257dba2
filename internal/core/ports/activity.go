package ports

import (
	"context"
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// ActivityInput is the DTO handed from the task service to the activity
// pipeline.
type ActivityInput struct {
	UserID    string
	TaskID    string
	Action    domain.ActivityAction
	TaskTitle string
	Timestamp time.Time
}

// ActivityRecorder accepts activity entries for asynchronous persistence.
// Record must not block the caller beyond queue admission.
type ActivityRecorder interface {
	Record(entry ActivityInput)
}

// ActivityService processes queued entries and serves the feed.
type ActivityService interface {
	Process(ctx context.Context, entry ActivityInput) error
	ListByOwner(ctx context.Context, userID string, limit int) ([]*domain.Activity, error)
}

// ActivityRepository persists activity entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	ListByOwner(ctx context.Context, userID string, limit int) ([]*domain.Activity, error)
}
