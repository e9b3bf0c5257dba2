package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/service"
)

func issueToken(t *testing.T, svc *service.TokenService, userID, email string) string {
	t.Helper()
	token, err := svc.Issue(userID, email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	signed := issueToken(t, tokens, "user_1", "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user_1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("email") != "alice@example.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// rejectionCases exercises every failure mode; all must produce the same
// 401 with no hint of why verification failed.
func TestAuthMiddleware_AllFailuresCollapseTo401(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	otherSecret := service.NewTokenService("other", time.Hour)

	expired := service.NewTokenService("secret", time.Nanosecond)
	expiredToken := issueToken(t, expired, "user_1", "a@x.com")
	time.Sleep(10 * time.Millisecond)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"no token":       "Bearer",
		"garbage token":  "Bearer not-a-token",
		"foreign signer": "Bearer " + issueToken(t, otherSecret, "user_1", "a@x.com"),
		"expired token":  "Bearer " + expiredToken,
	}

	var messages []string
	for name, header := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(tokens)
		handler := mw(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected echo.HTTPError, got %v", name, err)
		}
		if he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, he.Code)
		}
		messages = append(messages, he.Message.(string))
	}

	for _, msg := range messages {
		if msg != messages[0] {
			t.Fatalf("rejection messages must be identical, got %v", messages)
		}
	}
}
