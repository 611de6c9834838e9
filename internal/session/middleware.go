package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	// CookieName is the session cookie.
	CookieName = "sid"

	tokenContextKey   = "session_token"
	sessionContextKey = "session"
)

// Options configures the session cookie.
type Options struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

// Manager loads sessions for each request and commits changes before the response is written.
type Manager struct {
	store  Store
	signer *Signer
	ttl    time.Duration
	secure bool
	log    logrus.FieldLogger
}

// NewManager creates a session manager over store.
func NewManager(store Store, opts Options, log logrus.FieldLogger) *Manager {
	return &Manager{
		store:  store,
		signer: NewSigner(opts.Secret, opts.TTL),
		ttl:    opts.TTL,
		secure: opts.Secure,
		log:    log,
	}
}

// TokenMiddleware verifies the session cookie. Missing or invalid cookies are ignored so
// the request continues as a guest.
func (m *Manager) TokenMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + CookieName,
		ContextKey:  tokenContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return m.signer.Parse(auth)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

// Middleware attaches the request's Session to the context. It must run after TokenMiddleware.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := m.load(c)
			c.Set(sessionContextKey, sess)
			c.Response().Before(func() {
				m.commit(c, sess)
			})
			return next(c)
		}
	}
}

// Destroy removes the request's session from the store and expires its cookie.
// On error the session is left intact.
func (m *Manager) Destroy(c echo.Context) error {
	sess := FromContext(c)
	if !sess.isNew {
		if err := m.store.Destroy(c.Request().Context(), sess.id); err != nil {
			return fmt.Errorf("destroy session: %w", err)
		}
	}
	sess.data = Data{}
	sess.destroyed = true
	return nil
}

// FromContext returns the request's Session. Outside the middleware it returns a fresh, unsaved session.
func FromContext(c echo.Context) *Session {
	if sess, ok := c.Get(sessionContextKey).(*Session); ok {
		return sess
	}
	sess := newSession()
	c.Set(sessionContextKey, sess)
	return sess
}

func (m *Manager) load(c echo.Context) *Session {
	id, ok := c.Get(tokenContextKey).(string)
	if !ok || id == "" {
		return newSession()
	}

	data, err := m.store.Load(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.log.WithError(err).Warn("load session")
		}
		return newSession()
	}
	return &Session{id: id, data: *data}
}

func (m *Manager) commit(c echo.Context, sess *Session) {
	if sess.destroyed {
		m.clearCookie(c)
		return
	}
	if !sess.dirty || (sess.isNew && sess.empty()) {
		return
	}

	if err := m.store.Save(c.Request().Context(), sess.id, &sess.data, m.ttl); err != nil {
		m.log.WithError(err).Error("save session")
		return
	}
	token, err := m.signer.Sign(sess.id)
	if err != nil {
		m.log.WithError(err).Error("sign session")
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
