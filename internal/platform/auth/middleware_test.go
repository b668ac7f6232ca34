package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newAuthedServer() *echo.Echo {
	e := echo.New()
	e.Use(Middleware(key, Skipper))
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/v1/medications", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"user_id": UserIDFromContext(c.Request().Context()).String(),
		})
	})
	e.POST("/api/v1/users", func(c echo.Context) error { return c.NoContent(http.StatusCreated) })
	e.GET("/api/v1/users", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func get(e *echo.Echo, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	e := newAuthedServer()
	rec := get(e, http.MethodGet, "/api/v1/medications", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}

func TestMiddlewareRejectsGarbageToken(t *testing.T) {
	e := newAuthedServer()
	rec := get(e, http.MethodGet, "/api/v1/medications", "Bearer not.a.token")
	if rec.Code != http.StatusForbidden {
		t.Errorf("got status %d, want 403", rec.Code)
	}
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	e := newAuthedServer()
	userID := uuid.New()
	token, err := IssueToken(key, userID, "a@b.com", false, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	rec := get(e, http.MethodGet, "/api/v1/medications", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
}

func TestSkipperAllowsPublicEndpoints(t *testing.T) {
	e := newAuthedServer()

	if rec := get(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: got status %d, want 200", rec.Code)
	}
	if rec := get(e, http.MethodPost, "/api/v1/users", ""); rec.Code != http.StatusCreated {
		t.Errorf("signup: got status %d, want 201", rec.Code)
	}
	// Same path, different method: must require auth.
	if rec := get(e, http.MethodGet, "/api/v1/users", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("list users: got status %d, want 401", rec.Code)
	}
}
