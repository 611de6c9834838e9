package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperr "taskboard/internal/errors"
)

// ErrorHandler renders the error page for errors that escape a handler.
// Internal error text is logged, never shown.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code    int
			message string
			he      *echo.HTTPError
		)
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
		} else {
			httpErr := apperr.MapErrorToHTTP(err)
			code, message = httpErr.StatusCode, httpErr.Message
		}

		if code >= http.StatusInternalServerError {
			requestLogger(log, c, "http").WithError(err).Error("unhandled error")
			message = fmt.Sprintf("%s. Please try again later.", http.StatusText(code))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = renderError(c, code, message)
		}
		if err != nil {
			requestLogger(log, c, "http").WithError(err).Error("render error page")
		}
	}
}
