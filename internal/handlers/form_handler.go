package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jricekitchen/order-backend/internal/schema"
	"github.com/jricekitchen/order-backend/internal/session"
)

// FormHandler serves the order form: its field schema plus a fresh page session.
type FormHandler struct {
	sessions *session.Store
	log      *slog.Logger
}

// NewFormHandler creates a new form handler
func NewFormHandler(sessions *session.Store, log *slog.Logger) *FormHandler {
	return &FormHandler{
		sessions: sessions,
		log:      log,
	}
}

type formResponse struct {
	SessionID string         `json:"sessionId"`
	Fields    []schema.Field `json:"fields"`
}

// GetForm handles GET /api/form
// This is the page-load moment: the optional attribution tag is read from the
// query exactly once and held on the session for every later submission.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	marketer := session.CaptureAttribution(r.URL.Query())
	sess := h.sessions.Create(marketer)

	WriteJSON(w, http.StatusOK, formResponse{
		SessionID: sess.ID,
		Fields:    schema.Fields(),
	}, h.log)

	h.log.Info("form served", "session_id", sess.ID, "attributed", marketer != "")
}
