package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrEmailTaken, http.StatusBadRequest, "email already exists"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "could not validate credentials"},
		{domain.ErrTransactionNotFound, http.StatusNotFound, "transaction not found"},
		{domain.ErrBudgetNotFound, http.StatusNotFound, "budget not found"},
		{domain.ErrGoalNotFound, http.StatusNotFound, "goal not found"},
		{domain.ErrRecurringNotFound, http.StatusNotFound, "recurring transaction not found"},
	}

	for _, tc := range cases {
		code, msg := resolveError(tc.err, zerolog.Nop(), newTestContext())
		if code != tc.wantCode {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.wantCode, code)
		}
		if msg != tc.wantMsg {
			t.Errorf("%v: expected %q, got %q", tc.err, tc.wantMsg, msg)
		}
	}
}

func TestResolveError_CategoryNotDeletable(t *testing.T) {
	code, msg := resolveError(domain.ErrCategoryNotDeletable, zerolog.Nop(), newTestContext())
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != domain.ErrCategoryNotDeletable.Error() {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestResolveError_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), zerolog.Nop(), newTestContext())
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "missing authorization header" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update budget"), domain.ErrBudgetNotFound)
	code, _ := resolveError(wrapped, zerolog.Nop(), newTestContext())
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", code)
	}
}

func TestResolveError_UnknownErrorHidesCause(t *testing.T) {
	code, msg := resolveError(errors.New("mongo: connection reset"), zerolog.Nop(), newTestContext())
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error {
		return domain.ErrGoalNotFound
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"goal not found"`) {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
}

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}
