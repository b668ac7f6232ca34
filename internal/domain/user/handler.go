package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medwise/medwise/internal/platform/auth"
	"github.com/medwise/medwise/pkg/pagination"
)

type Handler struct {
	svc        *Service
	signingKey []byte
	tokenTTL   time.Duration
}

func NewHandler(svc *Service, signingKey []byte, tokenTTL time.Duration) *Handler {
	return &Handler{svc: svc, signingKey: signingKey, tokenTTL: tokenTTL}
}

// RegisterRoutes wires the user endpoints. The credential endpoints get the
// stricter fixed-window limiter.
func (h *Handler) RegisterRoutes(api *echo.Group, authLimiter echo.MiddlewareFunc) {
	api.POST("/users", h.Signup, authLimiter)
	api.POST("/login", h.Login, authLimiter)
	api.GET("/users", h.ListUsers)
	api.PATCH("/users/:id/profile-photo", h.UpdateProfilePhoto)

	adminGroup := api.Group("/admin", auth.RequireAdmin())
	adminGroup.GET("/users", h.ListUsers)
	adminGroup.DELETE("/users/:id", h.DeleteUser)
	adminGroup.PATCH("/users/:id/promote", h.PromoteUser)
}

func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Signup(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusConflict, "Email already exists.")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	}
	u, err := h.svc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}
	token, err := auth.IssueToken(h.signingKey, u.ID, u.Email, u.IsAdmin, h.tokenTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}
	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: u})
}

func (h *Handler) ListUsers(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user.")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) PromoteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	u, err := h.svc.Promote(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to promote user.")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateProfilePhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.UpdateProfilePhoto(c.Request().Context(), id, body.URL)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, u)
}
