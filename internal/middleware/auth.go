package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/session"
)

// Gate is the access policy attached to a route.
type Gate int

const (
	// GateNone lets every request through.
	GateNone Gate = iota
	// GateAuth requires a logged-in user.
	GateAuth
	// GateGuest requires that no user is logged in.
	GateGuest
)

func (g Gate) String() string {
	switch g {
	case GateAuth:
		return "auth"
	case GateGuest:
		return "guest"
	default:
		return "none"
	}
}

// Guard returns the middleware enforcing g.
func Guard(g Gate) echo.MiddlewareFunc {
	switch g {
	case GateAuth:
		return RequireAuth
	case GateGuest:
		return RequireGuest
	default:
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
}

// RequireAuth redirects anonymous visitors to the login page with a notice.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := session.FromContext(c)
		if !sess.Authenticated() {
			sess.AddFlash(session.FlashError, "Please login to access this page")
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireGuest sends logged-in users to their projects.
func RequireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session.FromContext(c).Authenticated() {
			return c.Redirect(http.StatusFound, "/projects")
		}
		return next(c)
	}
}
