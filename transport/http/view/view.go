package view

//go:generate go run go.uber.org/mock/mockgen -source=./view.go -destination=./mocks/view_mock.go -package=mocks

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"maps"
	"net/http"
)

const (
	PageRooms  = "rooms"
	PageGuests = "guests"
	PageError  = "error"

	KeyRooms  = "rooms"
	KeyGuests = "guests"

	layoutFile = "templates/layout.html"
	layoutName = "layout"

	keyGeneratedAt    = "generated_at"
	generatedAtLayout = "2006-01-02 15:04 MST"
)

//go:embed templates/*.html
var templates embed.FS

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data map[string]any) error
	RenderError(w http.ResponseWriter, err error)
}

type renderer struct {
	pages map[string]*template.Template
}

// New parses every page against the shared layout. A missing or broken
// template fails at startup rather than on the first request.
func New() (Renderer, error) {
	pages := make(map[string]*template.Template)

	for _, name := range []string{PageRooms, PageGuests, PageError} {
		page, err := template.New(name).ParseFS(templates, layoutFile, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}

		pages[name] = page
	}

	return &renderer{pages: pages}, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a partially written listing behind.
func (r *renderer) Render(w http.ResponseWriter, status int, name string, data map[string]any) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	pageData := make(map[string]any, len(data)+1)
	maps.Copy(pageData, data)
	pageData[keyGeneratedAt] = timezone.Format(timezone.Now(), generatedAtLayout)

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, layoutName, pageData); err != nil {
		return fmt.Errorf("failed to render %s template: %w", name, err)
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s page: %w", name, err)
	}

	return nil
}

// RenderError renders the error page with the status carried by err.
func (r *renderer) RenderError(w http.ResponseWriter, err error) {
	status := failure.GetCode(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "Something went wrong while loading this page."
	}

	renderErr := r.Render(w, status, PageError, map[string]any{
		"status":  status,
		"title":   http.StatusText(status),
		"message": message,
	})
	if renderErr != nil {
		logger.ErrorWithStack(renderErr)
		http.Error(w, http.StatusText(status), status)
	}
}
