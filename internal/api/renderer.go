package api

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/web"
)

// Renderer adapts html/template to echo's Renderer interface. Templates are
// parsed once at startup from the embedded filesystem.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
