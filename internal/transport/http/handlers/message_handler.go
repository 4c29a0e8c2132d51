package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"warbler/internal/domain"
	"warbler/internal/observability"
	"warbler/internal/service"
	"warbler/internal/transport/http/middleware"
	"warbler/pkg/validator"
)

type MessageHandler struct {
	base
	messageService *service.MessageService
}

func NewMessageHandler(b base, messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{base: b, messageService: messageService}
}

type messageForm struct {
	Text string
}

type messageNewData struct {
	Form   messageForm
	Errors validator.ValidationErrors
}

type messageShowData struct {
	Message   *domain.Message
	LikeCount int
	IsOwner   bool
	HasLiked  bool
}

func (h *MessageHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFrom(r.Context()) == nil {
		h.unauthorized(w, r)
		return
	}
	h.page(w, r, http.StatusOK, "message_new.html", messageNewData{Errors: validator.ValidationErrors{}})
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	text := r.PostFormValue("text")
	if errs := validator.ValidateMessage(text); errs.HasErrors() {
		h.page(w, r, http.StatusOK, "message_new.html", messageNewData{
			Form:   messageForm{Text: text},
			Errors: errs,
		})
		return
	}

	if _, err := h.messageService.Create(r.Context(), current.ID, text); err != nil {
		h.internalError(w, r, "creating message", err)
		return
	}

	observability.MessagesPostedTotal.Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%s", current.ID), http.StatusFound)
}

// Show is a public single-message page.
func (h *MessageHandler) Show(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	msg, err := h.messageService.Get(r.Context(), messageID)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			h.notFound(w, r)
			return
		}
		h.internalError(w, r, "loading message", err)
		return
	}

	likes, err := h.messageService.CountLikes(r.Context(), messageID)
	if err != nil {
		h.internalError(w, r, "counting likes", err)
		return
	}

	data := messageShowData{Message: msg, LikeCount: likes}
	if current := middleware.UserFrom(r.Context()); current != nil {
		data.IsOwner = current.ID == msg.UserID
		liked, err := h.messageService.HasLiked(r.Context(), current.ID, messageID)
		if err != nil {
			h.internalError(w, r, "checking like state", err)
			return
		}
		data.HasLiked = liked
	}

	h.page(w, r, http.StatusOK, "message.html", data)
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	messageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err := h.messageService.Delete(r.Context(), current.ID, messageID); err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			h.notFound(w, r)
		case errors.Is(err, service.ErrNotMessageOwner):
			h.unauthorized(w, r)
		default:
			h.internalError(w, r, "deleting message", err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%s", current.ID), http.StatusFound)
}

// Like toggles the like edge and sends the user back where they came from.
func (h *MessageHandler) Like(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	messageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	liked, err := h.messageService.ToggleLike(r.Context(), current.ID, messageID)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			h.notFound(w, r)
			return
		}
		h.internalError(w, r, "toggling like", err)
		return
	}

	if liked {
		observability.LikeTogglesTotal.WithLabelValues("liked").Inc()
	} else {
		observability.LikeTogglesTotal.WithLabelValues("unliked").Inc()
	}

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusFound)
}
