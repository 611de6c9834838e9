package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"taskboard/internal/session"
)

// render writes a page, adding the layout data every page needs. Pending flashes are consumed.
func render(c echo.Context, code int, page string, data echo.Map) error {
	sess := session.FromContext(c)
	if data == nil {
		data = echo.Map{}
	}
	data["LoggedIn"] = sess.Authenticated()
	data["UserName"] = sess.UserName()
	data["Success"] = sess.Flashes(session.FlashSuccess)
	data["Errors"] = sess.Flashes(session.FlashError)
	return c.Render(code, page, data)
}

// redirect queues a flash notice and answers 302 to target.
func redirect(c echo.Context, kind, message, target string) error {
	if message != "" {
		session.FromContext(c).AddFlash(kind, message)
	}
	return c.Redirect(http.StatusFound, target)
}

func renderError(c echo.Context, code int, message string) error {
	return render(c, code, "error", echo.Map{
		"Status":  code,
		"Message": message,
	})
}

// bindForm binds and validates a submitted form.
func bindForm(c echo.Context, form interface{}) error {
	if err := c.Bind(form); err != nil {
		return err
	}
	return c.Validate(form)
}

func parseID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// parseOptionalID parses a form value that may be blank.
func parseOptionalID(value string) (*uuid.UUID, bool) {
	if value == "" {
		return nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func currentUserID(c echo.Context) uuid.UUID {
	id, _ := session.FromContext(c).UserID()
	return id
}

// projectPath links to a project page, falling back to the project list for a missing or malformed id.
func projectPath(projectID string) string {
	id, err := uuid.Parse(projectID)
	if err != nil {
		return "/projects"
	}
	return "/projects/" + id.String()
}

func requestLogger(log logrus.FieldLogger, c echo.Context, op string) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"op":         op,
	})
}
