// Package session wraps the cookie store behind the two things handlers
// need: the current user id and flash messages. The session carries a single
// key; its absence means the request is anonymous.
package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "warbler_session"
	userIDKey   = "user_id"
)

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 16,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// CurrentUserID returns the authenticated user id, or false for an
// anonymous session.
func (m *Manager) CurrentUserID(r *http.Request) (uuid.UUID, bool) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return uuid.Nil, false
	}
	raw, ok := sess.Values[userIDKey].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// SignIn records the user id in the session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Values[userIDKey] = userID.String()
	return sess.Save(r, w)
}

// SignOut clears the user id, returning the session to Anonymous.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, sessionName)
	delete(sess.Values, userIDKey)
	return sess.Save(r, w)
}

// Flash queues a one-shot message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	sess, _ := m.store.Get(r, sessionName)
	sess.AddFlash(msg)
	_ = sess.Save(r, w)
}

// Flashes drains queued messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess, _ := m.store.Get(r, sessionName)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
