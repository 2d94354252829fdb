package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTemplate is the name of the dashboard page template.
const PageTemplate = "page"

// Renderer executes the embedded templates. It satisfies echo.Renderer.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// RenderPage writes the dashboard page for page.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	return r.templates.ExecuteTemplate(w, PageTemplate, page)
}
