package model

import "time"

// Subscription represents a newsletter signup. Email is unique across the
// store; subscriptions are never mutated or deleted.
type Subscription struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}

// SubscribeRequest represents the request payload for a newsletter signup.
type SubscribeRequest struct {
	Email string `json:"email"`
}
