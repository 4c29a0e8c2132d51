package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warbler/internal/observability"
	"warbler/internal/repository"
	"warbler/internal/service"
	"warbler/internal/session"
	"warbler/internal/transport/http/middleware"
	"warbler/internal/web"
)

// Services bundles the application services the router wires handlers to.
type Services struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Follows  *service.FollowService
	Messages *service.MessageService
}

// NewRouter assembles the full route table. Authorization is enforced inside
// the handlers so that failures can flash and redirect instead of returning
// a bare status.
func NewRouter(
	sm *session.Manager,
	rnd *web.Renderer,
	userRepo repository.UserRepository,
	svcs Services,
	ready observability.Pinger,
) http.Handler {
	b := base{sessions: sm, render: rnd}

	home := NewHomeHandler(b, svcs.Users)
	auth := NewAuthHandler(b, svcs.Auth)
	users := NewUserHandler(b, svcs.Users, svcs.Follows, svcs.Messages)
	messages := NewMessageHandler(b, svcs.Messages)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(observability.RequestLogger)
	r.Use(observability.RequestMetrics)
	r.Use(middleware.CurrentUser(sm, userRepo))

	r.Get("/", home.Home)

	r.Get("/signup", auth.SignupForm)
	r.Post("/signup", auth.Signup)
	r.Get("/login", auth.LoginForm)
	r.Post("/login", auth.Login)
	r.Get("/logout", auth.Logout)

	r.Get("/users", users.List)
	r.Get("/users/profile", users.EditForm)
	r.Post("/users/profile", users.Edit)
	r.Post("/users/delete", users.Delete)
	r.Post("/users/follow/{id}", users.Follow)
	r.Post("/users/stop-following/{id}", users.StopFollowing)
	r.Get("/users/{id}", users.Show)
	r.Get("/users/{id}/following", users.Following)
	r.Get("/users/{id}/followers", users.Followers)
	r.Get("/users/{id}/likes", users.Likes)

	r.Get("/messages/new", messages.NewForm)
	r.Post("/messages/new", messages.Create)
	r.Get("/messages/{id}", messages.Show)
	r.Post("/messages/{id}/delete", messages.Delete)
	r.Post("/messages/{id}/like", messages.Like)

	r.Handle("/static/*", web.StaticHandler())

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health/live", observability.HealthLiveHandler)
	r.Get("/health/ready", observability.HealthReadyHandler(ready))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		b.notFound(w, req)
	})

	return r
}
