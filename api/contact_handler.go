package api

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/harshityadav/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newContactHandler() contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submit validates a contact form submission and records it in the log.
// Delivery to an external mailbox is handled out of band.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(strings.TrimSpace(req.Name)) < 2 {
			h.responder.WriteError(w, errs.NewValidationError("name", "name must be at least 2 characters"))
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("email", "a valid email address is required"))
			return
		}
		if len(strings.TrimSpace(req.Subject)) < 5 {
			h.responder.WriteError(w, errs.NewValidationError("subject", "subject must be at least 5 characters"))
			return
		}
		if len(strings.TrimSpace(req.Message)) < 10 {
			h.responder.WriteError(w, errs.NewValidationError("message", "message must be at least 10 characters"))
			return
		}

		h.logger.Info().
			Str("name", req.Name).
			Str("email", req.Email).
			Str("subject", req.Subject).
			Msg("contact form submission")

		h.responder.WriteJSON(w, MessageResponse{Message: "Message received"})
	}
}
