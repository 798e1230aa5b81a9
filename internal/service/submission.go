package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jricekitchen/order-backend/internal/models"
	"github.com/jricekitchen/order-backend/internal/pricing"
	"github.com/jricekitchen/order-backend/internal/record"
	"github.com/jricekitchen/order-backend/internal/session"
)

// ErrOverCeiling rejects orders above the configured maximum value. Final for
// the attempt; the customer resubmits with an adjusted quantity.
var ErrOverCeiling = errors.New("order total exceeds the maximum order value")

// State identifies where a submission attempt is, or where it ended up.
type State string

const (
	StateComputing  State = "computing"
	StateGuarding   State = "guarding"
	StatePersisting State = "persisting"
	StateSucceeded  State = "succeeded"
	StateRejected   State = "rejected"
	StateFailed     State = "failed"
)

// Gateway persists one order record per call. A returned error means the record
// was not created; there is never a partial write.
type Gateway interface {
	CreateRecord(ctx context.Context, fields any) error
}

// LinkBuilder constructs the payment redirect URL for a successful order.
type LinkBuilder interface {
	BuildLink(total int, name, phone string) string
}

// SubmissionService runs one order submission through compute, guard, persist
// and link building. Input shapes are already validated by the schema layer.
type SubmissionService struct {
	calc     *pricing.Calculator
	gateway  Gateway
	links    LinkBuilder
	maxTotal int
	log      *slog.Logger
	now      func() time.Time
}

// NewSubmissionService creates a submission service.
func NewSubmissionService(calc *pricing.Calculator, gateway Gateway, links LinkBuilder, maxTotal int, log *slog.Logger) *SubmissionService {
	return &SubmissionService{
		calc:     calc,
		gateway:  gateway,
		links:    links,
		maxTotal: maxTotal,
		log:      log,
		now:      time.Now,
	}
}

// Result is the terminal outcome of one submission attempt.
type Result struct {
	State      State
	OrderID    string
	Total      int
	PaymentURL string
}

// Submit processes one validated submission. sess may be nil for submissions
// without a page session; those are simply unattributed.
//
// The attempt ends in exactly one of three states: Succeeded (record persisted,
// payment URL built), Rejected (guard tripped, nothing persisted) or Failed
// (persistence error, nothing to navigate to). The error distinguishes the
// non-success outcomes for the caller.
func (s *SubmissionService) Submit(ctx context.Context, in models.OrderInput, sess *session.Context) (*Result, error) {
	s.log.Debug("submission state", "state", StateComputing, "option", in.Option, "quantity", in.Quantity)

	total, err := s.calc.ComputeTotal(in.Option, in.Quantity)
	if err != nil {
		// unreachable given upstream field validation
		return nil, fmt.Errorf("compute total: %w", err)
	}

	s.log.Debug("submission state", "state", StateGuarding, "total", total, "max_total", s.maxTotal)

	if total > s.maxTotal {
		return &Result{State: StateRejected, Total: total}, ErrOverCeiling
	}

	marketer := ""
	if sess != nil {
		marketer = sess.Marketer
	}

	rec := record.Build(in, total, marketer, s.now())
	orderID := uuid.New().String()

	s.log.Debug("submission state", "state", StatePersisting, "order_id", orderID)

	if err := s.gateway.CreateRecord(ctx, rec); err != nil {
		s.log.Error("failed to persist order record", "order_id", orderID, "error", err)
		return &Result{State: StateFailed, Total: total}, fmt.Errorf("persist order: %w", err)
	}

	return &Result{
		State:      StateSucceeded,
		OrderID:    orderID,
		Total:      total,
		PaymentURL: s.links.BuildLink(total, in.Name, in.Phone),
	}, nil
}
