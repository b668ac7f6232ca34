package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// publicPaths lists URL paths that bypass authentication: infrastructure
// endpoints (health checks) and the credential endpoints themselves.
var publicPaths = map[string]bool{
	"/health":       true,
	"/health/db":    true,
	"/api/v1/login": true,
}

// Skipper returns true for requests whose path should skip authentication.
// Signup (POST /api/v1/users) is public; every other method on that path
// requires a token.
func Skipper(c echo.Context) bool {
	if publicPaths[c.Path()] {
		return true
	}
	if c.Path() == "/api/v1/users" && c.Request().Method == http.MethodPost {
		return true
	}
	return false
}

// IsPublicPath reports whether the given path is a public infrastructure
// endpoint that should bypass auth.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
