package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	byID map[string]*domain.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{byID: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		clone.CompletedAt = &ts
	}
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.byID[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	task, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.byID {
		if task.UserID == userID {
			out = append(out, cloneTask(task))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.byID[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.byID[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.byID, id)
	return nil
}

// noopCache never hits; it records invalidations.
type noopCache struct {
	invalidated []string
}

func (c *noopCache) Get(_ context.Context, _ string) ([]*domain.Task, bool, error) {
	return nil, false, nil
}

func (c *noopCache) Set(_ context.Context, _ string, _ []*domain.Task) error { return nil }

func (c *noopCache) Invalidate(_ context.Context, userID string) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}

// recordingRecorder captures activity entries synchronously.
type recordingRecorder struct {
	entries []ports.ActivityInput
}

func (r *recordingRecorder) Record(entry ports.ActivityInput) {
	r.entries = append(r.entries, entry)
}

type taskFixture struct {
	svc      *TaskService
	repo     *stubTaskRepo
	cache    *noopCache
	recorder *recordingRecorder
}

func newTaskFixture() *taskFixture {
	repo := newStubTaskRepo()
	cache := &noopCache{}
	recorder := &recordingRecorder{}
	return &taskFixture{
		svc:      NewTaskService(repo, cache, recorder, zerolog.Nop()),
		repo:     repo,
		cache:    cache,
		recorder: recorder,
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestTaskService_Create_StampsOwnerFromCaller(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "  buy milk  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.UserID != "user_a" {
		t.Fatalf("expected owner user_a, got %q", task.UserID)
	}
	if task.Title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("new task must start incomplete")
	}

	if len(f.recorder.entries) != 1 || f.recorder.entries[0].Action != domain.ActivityCreated {
		t.Fatalf("expected one created activity entry, got %+v", f.recorder.entries)
	}
	if len(f.cache.invalidated) != 1 || f.cache.invalidated[0] != "user_a" {
		t.Fatalf("expected cache invalidation for user_a, got %v", f.cache.invalidated)
	}
}

func TestTaskService_Create_BlankTitle(t *testing.T) {
	f := newTaskFixture()

	if _, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "   "}); !errors.Is(err, domain.ErrTitleBlank) {
		t.Fatalf("expected ErrTitleBlank, got %v", err)
	}
	if len(f.repo.byID) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestTaskService_Create_OversizedDescription(t *testing.T) {
	f := newTaskFixture()

	input := ports.CreateTaskInput{Title: "ok", Description: strings.Repeat("d", domain.DescriptionMaxLen+1)}
	if _, err := f.svc.Create(context.Background(), "user_a", input); !errors.Is(err, domain.ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Ownership guard
// ---------------------------------------------------------------------------

func TestTaskService_Get_ForbiddenVsNotFound(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "a's task"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Existing task, wrong owner: forbidden.
	if _, err := f.svc.Get(context.Background(), task.ID, "user_b"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// Missing task: not-found, never forbidden.
	if _, err := f.svc.Get(context.Background(), "no-such-task", "user_b"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_MutationsApplyOwnershipGuard(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "a's task"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "hijack"
	if _, err := f.svc.Update(context.Background(), task.ID, "user_b", ports.UpdateTaskInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("update: expected ErrForbidden, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), task.ID, "user_b"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.ToggleComplete(context.Background(), task.ID, "user_b"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("toggle: expected ErrForbidden, got %v", err)
	}

	// The task is untouched.
	stored, _ := f.repo.FindByID(context.Background(), task.ID)
	if stored.Title != "a's task" || stored.Completed {
		t.Fatalf("foreign mutation must not change the task: %+v", stored)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestTaskService_Update_PartialEdit(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "original", Description: "keep me"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	title := "renamed"
	updated, err := f.svc.Update(context.Background(), task.ID, "user_a", ports.UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("expected new title, got %q", updated.Title)
	}
	if updated.Description != "keep me" {
		t.Fatalf("nil description must leave the field untouched, got %q", updated.Description)
	}
	// Equal timestamps can happen on coarse clocks; it must never go backwards.
	if updated.UpdatedAt.Before(task.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
}

func TestTaskService_Update_BlankTitleRejected(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "original"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	blank := "   "
	if _, err := f.svc.Update(context.Background(), task.ID, "user_a", ports.UpdateTaskInput{Title: &blank}); !errors.Is(err, domain.ErrTitleBlank) {
		t.Fatalf("expected ErrTitleBlank, got %v", err)
	}
}

func TestTaskService_Delete_RemovesPermanently(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "doomed"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := f.svc.Delete(context.Background(), task.ID, "user_a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), task.ID, "user_a"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if last := f.recorder.entries[len(f.recorder.entries)-1]; last.Action != domain.ActivityDeleted {
		t.Fatalf("expected deleted activity entry, got %+v", last)
	}
}

// ---------------------------------------------------------------------------
// ToggleComplete
// ---------------------------------------------------------------------------

func TestTaskService_ToggleComplete_RoundTrip(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), "user_a", ports.CreateTaskInput{Title: "toggle me"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	completed, err := f.svc.ToggleComplete(context.Background(), task.ID, "user_a")
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !completed.Completed {
		t.Fatalf("expected completed=true after first toggle")
	}
	if completed.CompletedAt == nil {
		t.Fatalf("expected completed_at to be set when completed")
	}

	reopened, err := f.svc.ToggleComplete(context.Background(), task.ID, "user_a")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if reopened.Completed {
		t.Fatalf("expected completed=false after second toggle")
	}
	if reopened.CompletedAt != nil {
		t.Fatalf("expected completed_at cleared when reopened")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestTaskService_List_OnlyOwnTasksNewestFirst(t *testing.T) {
	f := newTaskFixture()

	// Insert directly so creation timestamps are deterministic.
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, spec := range []struct {
		id, owner string
	}{
		{"t1", "user_a"},
		{"t2", "user_b"},
		{"t3", "user_a"},
	} {
		f.repo.byID[spec.id] = &domain.Task{
			ID:        spec.id,
			UserID:    spec.owner,
			Title:     spec.id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	tasks, err := f.svc.List(context.Background(), "user_a")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t3" || tasks[1].ID != "t1" {
		t.Fatalf("expected newest first [t3 t1], got [%s %s]", tasks[0].ID, tasks[1].ID)
	}
}

func TestTaskService_List_CacheHitSkipsRepository(t *testing.T) {
	repo := newStubTaskRepo()
	cached := []*domain.Task{{ID: "cached", UserID: "user_a", Title: "from cache"}}
	svc := NewTaskService(repo, &hitCache{tasks: cached}, &recordingRecorder{}, zerolog.Nop())

	tasks, err := svc.List(context.Background(), "user_a")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "cached" {
		t.Fatalf("expected cached list, got %+v", tasks)
	}
}

// hitCache always returns its fixed payload.
type hitCache struct {
	tasks []*domain.Task
}

func (c *hitCache) Get(_ context.Context, _ string) ([]*domain.Task, bool, error) {
	return c.tasks, true, nil
}
func (c *hitCache) Set(_ context.Context, _ string, _ []*domain.Task) error { return nil }
func (c *hitCache) Invalidate(_ context.Context, _ string) error            { return nil }
