// Package web renders the server-side HTML views from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"warbler/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded stylesheet and default images under
// /static/.
func StaticHandler() http.Handler {
	sub, _ := fs.Sub(staticFS, "static")
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Page is the envelope every view receives: the session user for the navbar,
// drained flash messages, and the page-specific payload.
type Page struct {
	CurrentUser *domain.User
	Flashes     []string
	Data        any
}

type Renderer struct {
	templates map[string]*template.Template
}

var funcMap = template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.Format("Jan 2, 2006 at 3:04PM")
	},
}

// NewRenderer parses each page template against the shared base and
// partials.
func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, p := range pages {
		name := path.Base(p)
		if name == "base.html" || name[0] == '_' {
			continue
		}
		t, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS,
			"templates/base.html",
			"templates/_message_list.html",
			"templates/_user_list.html",
			p,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render writes the page, buffering so a template failure can still become a
// clean 500 instead of a torn response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, p Page) error {
	t, ok := r.templates[page]
	if !ok {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return fmt.Errorf("unknown template %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", p); err != nil {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
