package model

import "time"

// Contact represents a persisted contact-form record.
// Phone is a pointer so a missing phone round-trips as JSON null,
// never as an empty string.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactSubmission is the raw, untrusted body of POST /contacts.
// All fields arrive as text; phone is optional.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
