package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/api/metrics"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

const defaultFeedLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the ActivityService implementation backing the
// activity workers and the feed endpoint.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single queued activity entry.
func (s *activityService) Process(ctx context.Context, entry ports.ActivityInput) error {
	start := time.Now()

	activity := &domain.Activity{
		ID:        uuid.NewString(),
		UserID:    entry.UserID,
		TaskID:    entry.TaskID,
		Action:    entry.Action,
		TaskTitle: entry.TaskTitle,
		CreatedAt: entry.Timestamp,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process activity: %w", err)
	}

	metrics.ActivityProcessedTotal.WithLabelValues(string(entry.Action)).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(string(entry.Action)).Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("user_id", entry.UserID).
		Str("task_id", entry.TaskID).
		Str("action", string(entry.Action)).
		Msg("activity recorded")

	return nil
}

// ListByOwner returns the user's most recent activity entries.
func (s *activityService) ListByOwner(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}
	return s.repo.ListByOwner(ctx, userID, limit)
}
