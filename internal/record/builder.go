package record

import (
	"time"

	"github.com/jricekitchen/order-backend/internal/models"
)

// Both statuses start as Pending; downstream fulfilment updates them outside
// this system.
const statusPending = "Pending"

// Record is the persisted representation of one order, keyed exactly as the
// remote table expects. Marketer is omitted entirely when no attribution was
// captured.
type Record struct {
	PaymentStatus  string `json:"Payment Status"`
	DeliveryStatus string `json:"Delivery Status"`
	Name           string `json:"Name"`
	Phone          string `json:"Phone"`
	Pickup         string `json:"Pickup"`
	Quantity       int    `json:"Quantity"`
	Option         string `json:"Option"`
	Date           string `json:"Date"`
	Total          int    `json:"Total"`
	Marketer       string `json:"Marketer,omitempty"`
}

// Build assembles the record persisted for one submission. Pure apart from the
// injected timestamp.
func Build(in models.OrderInput, total int, marketer string, now time.Time) Record {
	return Record{
		PaymentStatus:  statusPending,
		DeliveryStatus: statusPending,
		Name:           in.Name,
		Phone:          in.Phone,
		Pickup:         in.Pickup,
		Quantity:       in.Quantity,
		Option:         in.Option,
		Date:           now.UTC().Format(time.RFC3339),
		Total:          total,
		Marketer:       marketer,
	}
}
