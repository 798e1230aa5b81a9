package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jricekitchen/order-backend/internal/models"
	"github.com/jricekitchen/order-backend/internal/schema"
	"github.com/jricekitchen/order-backend/internal/service"
	"github.com/jricekitchen/order-backend/internal/session"
)

// sessionStore looks up the page session a submission belongs to.
type sessionStore interface {
	Get(id string) (*session.Context, bool)
}

// OrderHandler handles order submission HTTP requests
type OrderHandler struct {
	submissions     *service.SubmissionService
	validator       *schema.Validator
	sessions        sessionStore
	fallbackContact string
	log             *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(submissions *service.SubmissionService, validator *schema.Validator, sessions sessionStore, fallbackContact string, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		submissions:     submissions,
		validator:       validator,
		sessions:        sessions,
		fallbackContact: fallbackContact,
		log:             log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	// the schema boundary: business logic past this point trusts field shapes
	if err := h.validator.ValidateInput(req.OrderInput); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	var sess *session.Context
	if req.SessionID != "" {
		if found, ok := h.sessions.Get(req.SessionID); ok {
			sess = found
		}
	}

	res, err := h.submissions.Submit(r.Context(), req.OrderInput, sess)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOverCeiling):
			h.log.Info("order rejected over ceiling", "total", res.Total)
			WriteError(w, http.StatusUnprocessableEntity,
				fmt.Sprintf("Your order comes to £%d, which is over our maximum order value. Please reduce the quantity and try again.", res.Total),
				h.log)
		default:
			h.log.Error("order submission failed", "error", err)
			WriteError(w, http.StatusBadGateway,
				"Something went wrong. Please try again, or contact us: "+h.fallbackContact,
				h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.SubmitResponse{
		OrderID:    res.OrderID,
		Total:      res.Total,
		PaymentURL: res.PaymentURL,
	}, h.log)
	h.log.Info("order submitted successfully", "order_id", res.OrderID, "total", res.Total)
}
