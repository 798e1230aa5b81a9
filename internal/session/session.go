package session

import (
	"net/url"
	"time"
)

// attributionParam is the query parameter the marketing tag arrives on.
const attributionParam = "m"

// Context is the per-page-load state. The marketer tag is captured exactly once,
// when the form is served, and attached to every order record built against this
// session. An empty Marketer means no attribution was present.
type Context struct {
	ID        string
	Marketer  string
	CreatedAt time.Time
}

// CaptureAttribution reads the optional marketing tag from the page's query
// parameters. The value is returned unchanged; absence yields the empty string.
func CaptureAttribution(query url.Values) string {
	return query.Get(attributionParam)
}
