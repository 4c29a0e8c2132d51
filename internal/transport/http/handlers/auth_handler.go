package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"warbler/internal/observability"
	"warbler/internal/service"
	"warbler/internal/transport/http/middleware"
	"warbler/pkg/validator"
)

type AuthHandler struct {
	base
	authService *service.AuthService
}

func NewAuthHandler(b base, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{base: b, authService: authService}
}

type signupData struct {
	Form   service.SignupInput
	Errors validator.ValidationErrors
}

type loginForm struct {
	Username string
}

type loginData struct {
	Form   loginForm
	Errors validator.ValidationErrors
}

func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFrom(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.page(w, r, http.StatusOK, "signup.html", signupData{Errors: validator.ValidationErrors{}})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	input := service.SignupInput{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		ImageURL: r.PostFormValue("image_url"),
	}

	errs := validator.ValidateSignup(input.Username, input.Email, input.Password)
	if errs.HasErrors() {
		h.page(w, r, http.StatusOK, "signup.html", signupData{Form: input, Errors: errs})
		return
	}

	user, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			errs.Add("username", "Username already taken")
		case errors.Is(err, service.ErrEmailTaken):
			errs.Add("email", "Email already registered")
		default:
			h.internalError(w, r, "signup", err)
			return
		}
		h.page(w, r, http.StatusOK, "signup.html", signupData{Form: input, Errors: errs})
		return
	}

	observability.SignupsTotal.Inc()

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		h.internalError(w, r, "starting session", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.UserFrom(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.page(w, r, http.StatusOK, "login.html", loginData{Errors: validator.ValidationErrors{}})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	data := loginData{Form: loginForm{Username: username}}

	if errs := validator.ValidateLogin(username, password); errs.HasErrors() {
		data.Errors = errs
		h.page(w, r, http.StatusOK, "login.html", data)
		return
	}

	user, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		h.internalError(w, r, "login", err)
		return
	}
	if user == nil {
		errs := validator.ValidationErrors{}
		errs.Add("password", "Invalid credentials.")
		data.Errors = errs
		h.page(w, r, http.StatusOK, "login.html", data)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		h.internalError(w, r, "starting session", err)
		return
	}
	h.sessions.Flash(w, r, fmt.Sprintf("Hello, %s!", user.Username))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		h.internalError(w, r, "ending session", err)
		return
	}
	h.sessions.Flash(w, r, "You have successfully logged out.")
	http.Redirect(w, r, "/login", http.StatusFound)
}
