package models

// OrderInput is one validated form submission. Field shapes are enforced by the
// schema validator before any business logic runs; downstream code trusts them.
type OrderInput struct {
	Option   string `json:"option" validate:"required,oneof=one-plate two-litres"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Name     string `json:"name" validate:"required,fullname"`
	Phone    string `json:"phone" validate:"required,numeric"`
	Pickup   string `json:"pickup" validate:"required"`
}

// SubmitRequest is the POST /api/order body. SessionID is optional; submissions
// without one are simply unattributed.
type SubmitRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	OrderInput
}

// SubmitResponse is returned on a successful submission. The client is expected
// to navigate to PaymentURL in a new browsing context.
type SubmitResponse struct {
	OrderID    string `json:"orderId"`
	Total      int    `json:"total"`
	PaymentURL string `json:"paymentUrl"`
}
