package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/api/metrics"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// ListCache abstracts the per-user task list cache (Redis). Cache failures
// are never fatal: Mongo stays authoritative.
type ListCache interface {
	Get(ctx context.Context, userID string) ([]*domain.Task, bool, error)
	Set(ctx context.Context, userID string, tasks []*domain.Task) error
	Invalidate(ctx context.Context, userID string) error
}

// TaskService implements task CRUD with the ownership guard applied to
// every id-addressed operation.
type TaskService struct {
	repo     ports.TaskRepository
	cache    ListCache
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, cache ListCache, activity ports.ActivityRecorder, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cache: cache, activity: activity, log: log}
}

// Create stores a new task owned by userID. The owner always comes from the
// authenticated identity; nothing in the input can override it.
func (s *TaskService) Create(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
	title, err := domain.NormalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.invalidate(ctx, userID)
	s.record(task, domain.ActivityCreated, now)

	return task, nil
}

// List returns all of the user's tasks, newest first, through the cache.
func (s *TaskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	if tasks, ok, err := s.cache.Get(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("task cache read failed")
	} else if ok {
		return tasks, nil
	}

	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, userID, tasks); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("task cache write failed")
	}
	return tasks, nil
}

// Get returns a single task after the ownership check.
func (s *TaskService) Get(ctx context.Context, id, userID string) (*domain.Task, error) {
	return s.authorized(ctx, id, userID)
}

// Update edits title and/or description. Nil input fields are left as-is.
func (s *TaskService) Update(ctx context.Context, id, userID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.authorized(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := domain.NormalizeTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if input.Description != nil {
		if err := domain.ValidateDescription(*input.Description); err != nil {
			return nil, err
		}
		task.Description = *input.Description
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	s.record(task, domain.ActivityUpdated, task.UpdatedAt)

	return task, nil
}

// Delete removes a task permanently.
func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	task, err := s.authorized(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	s.record(task, domain.ActivityDeleted, time.Now().UTC())

	return nil
}

// ToggleComplete flips the completion flag. CompletedAt is set exactly when
// the flag becomes true and cleared when it becomes false.
func (s *TaskService) ToggleComplete(ctx context.Context, id, userID string) (*domain.Task, error) {
	task, err := s.authorized(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	action := domain.ActivityReopened
	if task.Completed {
		task.Completed = false
		task.CompletedAt = nil
	} else {
		task.Completed = true
		task.CompletedAt = &now
		action = domain.ActivityCompleted
	}
	task.UpdatedAt = now

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	metrics.TaskTogglesTotal.WithLabelValues(string(action)).Inc()
	s.invalidate(ctx, userID)
	s.record(task, action, now)

	return task, nil
}

// authorized loads the task and applies the ownership guard: a missing task
// is ErrTaskNotFound, a foreign one ErrForbidden, in that order.
func (s *TaskService) authorized(ctx context.Context, id, userID string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeTask(task, userID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("task cache invalidation failed")
	}
}

func (s *TaskService) record(task *domain.Task, action domain.ActivityAction, ts time.Time) {
	s.activity.Record(ports.ActivityInput{
		UserID:    task.UserID,
		TaskID:    task.ID,
		Action:    action,
		TaskTitle: task.Title,
		Timestamp: ts,
	})
}
