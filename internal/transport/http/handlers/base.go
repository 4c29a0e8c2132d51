// Package handlers contains the HTML-facing HTTP handlers. Every handler
// renders a server-side view or redirects; authorization failures are
// surfaced as a flash message followed by a redirect rather than a bare
// status code.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"warbler/internal/observability"
	"warbler/internal/session"
	"warbler/internal/transport/http/middleware"
	"warbler/internal/web"
)

const accessUnauthorized = "Access unauthorized."

// base carries what every handler needs to produce a page.
type base struct {
	sessions *session.Manager
	render   *web.Renderer
}

// page renders a view wrapped in the shared envelope: current user for the
// navbar plus any queued flashes.
func (b *base) page(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	p := web.Page{
		CurrentUser: middleware.UserFrom(r.Context()),
		Flashes:     b.sessions.Flashes(w, r),
		Data:        data,
	}
	if err := b.render.Render(w, status, name, p); err != nil {
		observability.Logger().Error("render failed",
			zap.String("template", name),
			zap.Error(err),
		)
	}
}

// unauthorized is the uniform response to any authorization failure: flash
// and bounce to the landing page. It deliberately does not distinguish
// "not logged in" from "not allowed".
func (b *base) unauthorized(w http.ResponseWriter, r *http.Request) {
	b.sessions.Flash(w, r, accessUnauthorized)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (b *base) notFound(w http.ResponseWriter, r *http.Request) {
	b.page(w, r, http.StatusNotFound, "notfound.html", nil)
}

func (b *base) internalError(w http.ResponseWriter, r *http.Request, what string, err error) {
	observability.Logger().Error(what,
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}
