package handlers

import (
	"net/http"

	"warbler/internal/domain"
	"warbler/internal/service"
	"warbler/internal/transport/http/middleware"
)

type HomeHandler struct {
	base
	userService *service.UserService
}

func NewHomeHandler(b base, userService *service.UserService) *HomeHandler {
	return &HomeHandler{base: b, userService: userService}
}

type homeData struct {
	Messages []domain.Message
}

const recentLimit = 100

// Home shows the follow-scoped timeline to a logged-in user and the landing
// page to everyone else.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		msgs, err := h.userService.Recent(r.Context(), recentLimit)
		if err != nil {
			h.internalError(w, r, "loading recent messages", err)
			return
		}
		h.page(w, r, http.StatusOK, "landing.html", homeData{Messages: msgs})
		return
	}

	msgs, err := h.userService.Timeline(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, r, "loading timeline", err)
		return
	}

	h.page(w, r, http.StatusOK, "home.html", homeData{Messages: msgs})
}
