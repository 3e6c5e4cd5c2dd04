package model

import "time"

// Review represents a customer review. Reviews are created unapproved and
// only surface on the site once moderation flips the flag.
type Review struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email,omitempty" db:"email"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	Approved  bool      `json:"approved" db:"approved"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReviewRequest represents the request payload for submitting a review.
type ReviewRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
