package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a signup leaves the image fields blank.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProfileStats are the counts shown on a user's profile page.
type ProfileStats struct {
	Messages  int `json:"messages"`
	Following int `json:"following"`
	Followers int `json:"followers"`
	Likes     int `json:"likes"`
}
