package domain

import (
	"strings"
	"testing"
)

func TestAuthorizeTask_MissingBeforeForbidden(t *testing.T) {
	// A nil task must always come back as not-found, even when the asker
	// would not have owned it: forbidden must never confirm existence.
	if err := AuthorizeTask(nil, "user_b"); err != ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAuthorizeTask_Forbidden(t *testing.T) {
	task := &Task{ID: "t1", UserID: "user_a"}
	if err := AuthorizeTask(task, "user_b"); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorizeTask_Owner(t *testing.T) {
	task := &Task{ID: "t1", UserID: "user_a"}
	if err := AuthorizeTask(task, "user_a"); err != nil {
		t.Fatalf("expected owner to be authorized, got %v", err)
	}
}

func TestNormalizeTitle_Trims(t *testing.T) {
	title, err := NormalizeTitle("  buy milk  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "buy milk" {
		t.Fatalf("expected trimmed title, got %q", title)
	}
}

func TestNormalizeTitle_Blank(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := NormalizeTitle(title); err != ErrTitleBlank {
			t.Fatalf("expected ErrTitleBlank for %q, got %v", title, err)
		}
	}
}

func TestNormalizeTitle_TooLong(t *testing.T) {
	if _, err := NormalizeTitle(strings.Repeat("a", TitleMaxLen+1)); err != ErrTitleTooLong {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}
	if _, err := NormalizeTitle(strings.Repeat("a", TitleMaxLen)); err != nil {
		t.Fatalf("expected max-length title to pass, got %v", err)
	}
}

func TestNormalizeTitle_CountsCharactersNotBytes(t *testing.T) {
	// 300 two-byte runes: 600 bytes but only 300 characters, well within
	// the limit.
	title := strings.Repeat("é", 300)
	if _, err := NormalizeTitle(title); err != nil {
		t.Fatalf("300-char multibyte title should pass, got %v", err)
	}

	if _, err := NormalizeTitle(strings.Repeat("é", TitleMaxLen)); err != nil {
		t.Fatalf("max-length multibyte title should pass, got %v", err)
	}
	if _, err := NormalizeTitle(strings.Repeat("é", TitleMaxLen+1)); err != ErrTitleTooLong {
		t.Fatalf("expected ErrTitleTooLong past the character limit, got %v", err)
	}
}

func TestValidateDescription_CountsCharactersNotBytes(t *testing.T) {
	if err := ValidateDescription(strings.Repeat("漢", DescriptionMaxLen)); err != nil {
		t.Fatalf("max-length multibyte description should pass, got %v", err)
	}
	if err := ValidateDescription(strings.Repeat("漢", DescriptionMaxLen+1)); err != ErrDescriptionTooLong {
		t.Fatalf("expected ErrDescriptionTooLong past the character limit, got %v", err)
	}
}

func TestValidateDescription_Bounds(t *testing.T) {
	if err := ValidateDescription(""); err != nil {
		t.Fatalf("empty description should pass, got %v", err)
	}
	if err := ValidateDescription(strings.Repeat("d", DescriptionMaxLen)); err != nil {
		t.Fatalf("max-length description should pass, got %v", err)
	}
	if err := ValidateDescription(strings.Repeat("d", DescriptionMaxLen+1)); err != ErrDescriptionTooLong {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}
}
