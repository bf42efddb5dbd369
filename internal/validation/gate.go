package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/contacthub/backend/internal/model"
	"github.com/go-playground/validator/v10"
)

// Violation describes a single failed field rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// submission carries the trimmed field values through the validator.
// Field order here is the order violations are reported in.
type submission struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Gate validates and normalizes contact submissions. It performs no I/O;
// a submission either comes back as a storage-ready Contact or as the
// full list of rule violations, never both.
type Gate struct {
	validate *validator.Validate
}

// NewGate creates a Gate with field names reported from json tags.
func NewGate() *Gate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Gate{validate: v}
}

// Check evaluates every field rule against the submission. On success it
// returns the normalized contact (trimmed fields, canonical email, nil
// phone when absent) ready for the store. On failure it returns one
// violation per offending field; partial acceptance never occurs.
func (g *Gate) Check(sub model.ContactSubmission) (*model.Contact, []Violation) {
	s := submission{
		Name:    strings.TrimSpace(sub.Name),
		Email:   NormalizeEmail(sub.Email),
		Phone:   strings.TrimSpace(sub.Phone),
		Subject: strings.TrimSpace(sub.Subject),
		Message: strings.TrimSpace(sub.Message),
	}

	if err := g.validate.Struct(&s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, []Violation{{Field: "payload", Message: "Invalid payload"}}
		}
		violations := make([]Violation, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, Violation{
				Field:   fe.Field(),
				Message: messageFor(fe),
			})
		}
		return nil, violations
	}

	contact := &model.Contact{
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
	}
	if s.Phone != "" {
		phone := s.Phone
		contact.Phone = &phone
	}
	return contact, nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func messageFor(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required", "email":
		if fe.Field() == "email" {
			return "Valid email is required"
		}
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func labelFor(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
