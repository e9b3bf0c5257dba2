package domain

import "time"

// ActivityAction identifies what happened to a task.
type ActivityAction string

const (
	ActivityCreated   ActivityAction = "created"
	ActivityUpdated   ActivityAction = "updated"
	ActivityCompleted ActivityAction = "completed"
	ActivityReopened  ActivityAction = "reopened"
	ActivityDeleted   ActivityAction = "deleted"
)

// Activity is one entry in a user's task activity feed. Entries are written
// asynchronously by the activity workers and are best-effort: losing one
// never fails the task operation that produced it.
type Activity struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	TaskID    string         `json:"task_id"`
	Action    ActivityAction `json:"action"`
	TaskTitle string         `json:"task_title"`
	CreatedAt time.Time      `json:"created_at"`
}
