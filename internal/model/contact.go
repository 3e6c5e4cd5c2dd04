package model

// ContactRequest represents a contact form submission. The message is
// relayed by mail only; nothing is stored.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
