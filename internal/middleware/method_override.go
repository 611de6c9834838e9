package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// MethodOverrideField is the form field HTML forms use to tunnel PUT, PATCH and DELETE through POST.
const MethodOverrideField = "_method"

const maxFormMemory = 32 << 20

// MethodOverride rewrites POST form submissions carrying _method before routing.
// The field is removed from the parsed form so binders never see it. Register with echo's Pre.
func MethodOverride() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			switch {
			case strings.HasPrefix(contentType, echo.MIMEApplicationForm):
				if err := req.ParseForm(); err != nil {
					return next(c)
				}
			case strings.HasPrefix(contentType, echo.MIMEMultipartForm):
				if err := req.ParseMultipartForm(maxFormMemory); err != nil {
					return next(c)
				}
				delete(req.MultipartForm.Value, MethodOverrideField)
			default:
				return next(c)
			}

			method := strings.ToUpper(req.PostForm.Get(MethodOverrideField))
			req.PostForm.Del(MethodOverrideField)
			req.Form.Del(MethodOverrideField)

			switch method {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				req.Method = method
			}
			return next(c)
		}
	}
}
