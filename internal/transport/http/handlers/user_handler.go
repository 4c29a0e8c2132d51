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

type UserHandler struct {
	base
	userService    *service.UserService
	followService  *service.FollowService
	messageService *service.MessageService
}

func NewUserHandler(
	b base,
	userService *service.UserService,
	followService *service.FollowService,
	messageService *service.MessageService,
) *UserHandler {
	return &UserHandler{
		base:           b,
		userService:    userService,
		followService:  followService,
		messageService: messageService,
	}
}

type userListData struct {
	Users []domain.User
}

type profileData struct {
	User        *domain.User
	Stats       *domain.ProfileStats
	Messages    []domain.Message
	IsSelf      bool
	IsFollowing bool
}

type followListData struct {
	User  *domain.User
	Title string
	Users []domain.User
}

type likesData struct {
	User     *domain.User
	Messages []domain.Message
}

type profileEditData struct {
	Form   service.ProfileUpdateInput
	Errors validator.ValidationErrors
}

// List is the user search page; an empty query lists everyone.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.internalError(w, r, "searching users", err)
		return
	}
	h.page(w, r, http.StatusOK, "users.html", userListData{Users: users})
}

// Show is the public profile page: user card, counts, own messages.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.notFound(w, r)
			return
		}
		h.internalError(w, r, "loading user", err)
		return
	}

	stats, err := h.userService.Stats(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "loading profile stats", err)
		return
	}

	msgs, err := h.userService.Messages(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "loading user messages", err)
		return
	}

	data := profileData{User: user, Stats: stats, Messages: msgs}
	if current := middleware.UserFrom(r.Context()); current != nil {
		data.IsSelf = current.ID == userID
		if !data.IsSelf {
			following, err := h.followService.IsFollowing(r.Context(), current.ID, userID)
			if err != nil {
				h.internalError(w, r, "checking follow state", err)
				return
			}
			data.IsFollowing = following
		}
	}

	h.page(w, r, http.StatusOK, "profile.html", data)
}

// owner resolves the {id} path param and enforces that the current user is
// that user. The second return value reports whether the caller may proceed.
func (h *UserHandler) owner(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return nil, false
	}

	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return nil, false
	}
	if current.ID != userID {
		h.unauthorized(w, r)
		return nil, false
	}
	return current, true
}

func (h *UserHandler) Following(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	users, err := h.followService.ListFollowing(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, r, "listing following", err)
		return
	}
	h.page(w, r, http.StatusOK, "follow_list.html", followListData{
		User:  user,
		Title: "Following",
		Users: users,
	})
}

func (h *UserHandler) Followers(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	users, err := h.followService.ListFollowers(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, r, "listing followers", err)
		return
	}
	h.page(w, r, http.StatusOK, "follow_list.html", followListData{
		User:  user,
		Title: "Followers",
		Users: users,
	})
}

func (h *UserHandler) Likes(w http.ResponseWriter, r *http.Request) {
	user, ok := h.owner(w, r)
	if !ok {
		return
	}

	msgs, err := h.messageService.ListLiked(r.Context(), user.ID)
	if err != nil {
		h.internalError(w, r, "listing liked messages", err)
		return
	}
	h.page(w, r, http.StatusOK, "likes.html", likesData{User: user, Messages: msgs})
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err := h.followService.Follow(r.Context(), current.ID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.notFound(w, r)
		case errors.Is(err, service.ErrSelfFollow):
			h.unauthorized(w, r)
		default:
			h.internalError(w, r, "following user", err)
		}
		return
	}

	observability.FollowEventsTotal.WithLabelValues("follow").Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%s/following", current.ID), http.StatusFound)
}

func (h *UserHandler) StopFollowing(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.notFound(w, r)
		return
	}

	if err := h.followService.Unfollow(r.Context(), current.ID, targetID); err != nil {
		h.internalError(w, r, "unfollowing user", err)
		return
	}

	observability.FollowEventsTotal.WithLabelValues("unfollow").Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%s/following", current.ID), http.StatusFound)
}

func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	form := service.ProfileUpdateInput{
		Username:       current.Username,
		Email:          current.Email,
		ImageURL:       current.ImageURL,
		HeaderImageURL: current.HeaderImageURL,
		Bio:            current.Bio,
		Location:       current.Location,
	}
	h.page(w, r, http.StatusOK, "profile_edit.html", profileEditData{
		Form:   form,
		Errors: validator.ValidationErrors{},
	})
}

func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	input := service.ProfileUpdateInput{
		Username:       r.PostFormValue("username"),
		Email:          r.PostFormValue("email"),
		ImageURL:       r.PostFormValue("image_url"),
		HeaderImageURL: r.PostFormValue("header_image_url"),
		Bio:            r.PostFormValue("bio"),
		Location:       r.PostFormValue("location"),
	}
	password := r.PostFormValue("password")

	errs := validator.ValidateProfileUpdate(input.Username, input.Email, password, input.Bio)
	if errs.HasErrors() {
		h.page(w, r, http.StatusOK, "profile_edit.html", profileEditData{Form: input, Errors: errs})
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), current.ID, password, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			errs.Add("password", "Wrong password, please try again.")
		case errors.Is(err, service.ErrUsernameTaken):
			errs.Add("username", "Username already taken")
		case errors.Is(err, service.ErrEmailTaken):
			errs.Add("email", "Email already registered")
		default:
			h.internalError(w, r, "updating profile", err)
			return
		}
		h.page(w, r, http.StatusOK, "profile_edit.html", profileEditData{Form: input, Errors: errs})
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%s", user.ID), http.StatusFound)
}

// Delete removes the current user's account and ends the session.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current := middleware.UserFrom(r.Context())
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	if err := h.userService.Delete(r.Context(), current.ID); err != nil {
		h.internalError(w, r, "deleting user", err)
		return
	}

	if err := h.sessions.SignOut(w, r); err != nil {
		h.internalError(w, r, "ending session", err)
		return
	}
	http.Redirect(w, r, "/signup", http.StatusFound)
}
