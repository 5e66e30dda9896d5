package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a storefront testimonial. New reviews start unapproved and only
// become publicly visible once an admin approves them.
type Review struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
