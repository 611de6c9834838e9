package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"taskboard/internal/model"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "layout.html"

// Pages lists every renderable page. Each is parsed together with the shared layout.
var Pages = []string{
	"index",
	"login",
	"register",
	"error",
	"projects/list",
	"projects/show",
	"projects/edit",
	"tasks/list",
	"tasks/show",
	"public/projects",
	"public/project_detail",
	"public/tasks",
}

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses all pages. It fails fast on a broken template.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"date":       formatDate,
		"label":      label,
		"selected":   selected,
		"statuses":   func() []model.TaskStatus { return model.TaskStatuses },
		"priorities": func() []model.TaskPriority { return model.TaskPriorities },
	}

	templates := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		t, err := template.New(layoutFile).Funcs(funcs).ParseFS(templateFS,
			"templates/"+layoutFile,
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, layoutFile, data)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// label turns an enum value like IN_PROGRESS into "In progress".
func label(v interface{}) string {
	s := strings.ToLower(strings.ReplaceAll(fmt.Sprint(v), "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func selected(current *uuid.UUID, id uuid.UUID) bool {
	return current != nil && *current == id
}
