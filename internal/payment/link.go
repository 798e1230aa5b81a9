package payment

import (
	"fmt"
	"net/url"
	"strings"
)

// The memo rides in the provider's description field; the prefix warns the
// customer off editing it since the merchant matches payments by it.
const memoPrefix = "DONT EDIT THIS"

// Builder constructs provider deep links pre-filling payee, amount and memo.
type Builder struct {
	host  string
	payee string
}

// NewBuilder creates a link builder for the given provider host and payee.
func NewBuilder(host, payee string) *Builder {
	return &Builder{
		host:  strings.TrimRight(host, "/"),
		payee: payee,
	}
}

// BuildLink returns the payment URL for one order. Amounts are whole pounds and
// are always rendered with exactly two decimal places. The memo embeds the
// customer's name (spaces replaced with underscores) and phone number, and is
// percent-encoded as a query value.
func (b *Builder) BuildLink(total int, name, phone string) string {
	fullname := strings.ReplaceAll(name, " ", "_")
	memo := fmt.Sprintf("%s____JRICE order from %s %s", memoPrefix, fullname, phone)

	q := url.Values{}
	q.Set("d", memo)

	return fmt.Sprintf("%s/%s/%d.00?%s", b.host, b.payee, total, q.Encode())
}
