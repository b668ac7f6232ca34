package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwise/medwise/internal/platform/auth"
)

var testKey = []byte("metrics-test-signing-key-0123456789ab")

func newTestServer(t *testing.T) (*echo.Echo, *mockRepo, string) {
	t.Helper()
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())
	h := NewHandler(svc)

	e := echo.New()
	e.Use(auth.Middleware(testKey, nil))
	api := e.Group("/api/v1")
	h.RegisterRoutes(api)

	token, err := auth.IssueToken(testKey, uuid.New(), "test@example.com", false, time.Hour)
	require.NoError(t, err)
	return e, repo, token
}

func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRecordEndpoint(t *testing.T) {
	e, repo, token := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/metrics", `{"type":"weight","value":72.5,"unit":"kg"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, repo.items, 1)

	rec = do(e, http.MethodPost, "/api/v1/metrics", `{"type":"weight","value":500}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordCoercesStringValue(t *testing.T) {
	e, repo, token := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/metrics", `{"type":"heart_rate","value":"72"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, repo.items, 1)
	assert.Equal(t, 72.0, repo.items[0].Value)
	assert.Equal(t, StatusGood, repo.items[0].Status)

	rec = do(e, http.MethodPost, "/api/v1/metrics", `{"type":"heart_rate","value":"abc"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrendsRejectsBadWindow(t *testing.T) {
	e, _, token := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/metrics/trends?days=14", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/metrics/trends?days=90", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/metrics/trends", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSeriesRejectsUnknownType(t *testing.T) {
	e, _, token := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/metrics/series?type=cholesterol", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/metrics/series?type=weight", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScoreEndpoint(t *testing.T) {
	e, _, token := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/metrics", `{"type":"sleep","value":8}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/metrics/score", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score":100}`, rec.Body.String())
}

func TestExportCSV(t *testing.T) {
	e, _, token := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/metrics", `{"type":"weight","value":72.5}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/metrics/export", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Time,Type,Value,Unit,Notes,Category", lines[0])
	assert.Contains(t, lines[1], ",weight,72.5,")
	assert.True(t, strings.HasSuffix(lines[1], ",good"))
}
