package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/contacthub/backend/internal/model"
	"github.com/contacthub/backend/internal/service"
	"github.com/contacthub/backend/internal/validation"
)

// ContactHandler handles contact submission, listing and deletion.
type ContactHandler struct {
	contactService service.ContactService
	gate           *validation.Gate
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		gate:           validation.NewGate(),
	}
}

type createResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type listResponse struct {
	Success bool             `json:"success"`
	Data    []*model.Contact `json:"data"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type validationResponse struct {
	Success bool                   `json:"success"`
	Errors  []validation.Violation `json:"errors"`
}

// Create handles POST /contacts. The payload is validated as a whole
// before any I/O; a store failure is reported generically and never
// leaks driver detail to the client.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sub model.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	contact, violations := h.gate.Check(sub)
	if len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: violations})
		return
	}

	if err := h.contactService.Create(r.Context(), contact); err != nil {
		slog.Error("failed to save contact", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save contact"})
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		Success: true,
		Message: "Contact submitted successfully!",
		ID:      contact.ID,
	})
}

// List handles GET /contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch contacts", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch contacts"})
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: contacts})
}

// Delete handles DELETE /contacts/{id}. Deleting an id that does not
// exist still succeeds.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid contact id"})
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete contact", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to delete contact"})
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Contact deleted"})
}
