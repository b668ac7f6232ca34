package metrics

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medwise/medwise/internal/platform/auth"
	"github.com/medwise/medwise/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/metrics", h.List)
	api.POST("/metrics", h.Record)
	api.GET("/metrics/series", h.Series)
	api.GET("/metrics/trends", h.Trends)
	api.GET("/metrics/score", h.Score)
	api.GET("/metrics/export", h.Export)
}

func windowDays(c echo.Context) (int, error) {
	raw := c.QueryParam("days")
	if raw == "" {
		return DefaultWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || !WindowDays[days] {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "days must be one of 7, 30, 90, 365")
	}
	return days, nil
}

// flexFloat accepts a JSON number or a numeric string, since clients
// historically submitted values either way.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", b)
	}
	*f = flexFloat(v)
	return nil
}

func (h *Handler) Record(c echo.Context) error {
	var req struct {
		Type       Type      `json:"type"`
		Value      flexFloat `json:"value"`
		Unit       string    `json:"unit"`
		Notes      *string   `json:"notes"`
		RecordedAt time.Time `json:"recorded_at"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m := Metric{
		UserID:     auth.UserIDFromContext(c.Request().Context()),
		Type:       req.Type,
		Value:      float64(req.Value),
		Unit:       req.Unit,
		Notes:      req.Notes,
		RecordedAt: req.RecordedAt,
	}
	if err := h.svc.Record(c.Request().Context(), &m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	userID := auth.UserIDFromContext(c.Request().Context())
	items, total, err := h.svc.ListByUser(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Series(c echo.Context) error {
	days, err := windowDays(c)
	if err != nil {
		return err
	}
	t := Type(c.QueryParam("type"))
	if !Known(t) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown metric type")
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	series, err := h.svc.SeriesFor(c.Request().Context(), userID, t, days, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, SeriesPoints(series))
}

func (h *Handler) Trends(c echo.Context) error {
	days, err := windowDays(c)
	if err != nil {
		return err
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	trends, err := h.svc.TrendsFor(c.Request().Context(), userID, days, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, trends)
}

func (h *Handler) Score(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	score, err := h.svc.ScoreFor(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"score": score})
}

func (h *Handler) Export(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	samples, err := h.svc.Export(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="metrics.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"Date", "Time", "Type", "Value", "Unit", "Notes", "Category"}); err != nil {
		return err
	}
	for _, m := range samples {
		status := m.Status
		if status == "" {
			status = Classify(m.Type, m.Value)
		}
		notes := ""
		if m.Notes != nil {
			notes = *m.Notes
		}
		row := []string{
			m.RecordedAt.Format("2006-01-02"),
			m.RecordedAt.Format("15:04"),
			string(m.Type),
			strconv.FormatFloat(m.Value, 'f', -1, 64),
			m.Unit,
			notes,
			string(status),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
