package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	TitleMaxLen       = 500
	DescriptionMaxLen = 2000
)

var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")
var ErrTitleBlank = errors.New("title cannot be empty or whitespace only")
var ErrTitleTooLong = errors.New("title must be at most 500 characters")
var ErrDescriptionTooLong = errors.New("description must be at most 2000 characters")

// Task is a unit of work owned by exactly one user. UserID is stamped from
// the authenticated identity at creation time and never changes.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthorizeTask decides whether userID may act on t. Existence is checked
// before ownership: a task that does not exist reports ErrTaskNotFound even
// to a non-owner, so a 403 never confirms that someone else's task id is
// real.
func AuthorizeTask(t *Task, userID string) error {
	if t == nil {
		return ErrTaskNotFound
	}
	if t.UserID != userID {
		return ErrForbidden
	}
	return nil
}

// NormalizeTitle trims surrounding whitespace and validates length bounds.
// Limits count characters, not bytes, so multibyte titles are not penalized.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleBlank
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// ValidateDescription enforces the description character bound. Empty is fine.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > DescriptionMaxLen {
		return ErrDescriptionTooLong
	}
	return nil
}
