package httpserver

import (
	"net/http"
	"net/url"
	"strings"

	"fragment-cache/internal/interfaces"
)

// Ensure httpRequestContext implements interfaces.RequestContext
var _ interfaces.RequestContext = (*httpRequestContext)(nil)

// httpRequestContext adapts an *http.Request to the vary-by dimension
// sources. Values are passed through verbatim; canonicalization is the
// caller's responsibility.
type httpRequestContext struct {
	req   *http.Request
	query url.Values
}

// NewRequestContext wraps an HTTP request as a vary-by dimension source.
// The authenticated user comes from the X-User-Id header, the negotiated
// culture from the first Accept-Language tag.
func NewRequestContext(r *http.Request) interfaces.RequestContext {
	return &httpRequestContext{req: r, query: r.URL.Query()}
}

func (c *httpRequestContext) Query(name string) (string, bool) {
	values, ok := c.query[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (c *httpRequestContext) Cookie(name string) (string, bool) {
	cookie, err := c.req.Cookie(name)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c *httpRequestContext) Header(name string) (string, bool) {
	values := c.req.Header.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (c *httpRequestContext) User() (string, bool) {
	user := c.req.Header.Get("X-User-Id")
	return user, user != ""
}

func (c *httpRequestContext) Culture() (string, bool) {
	accept := c.req.Header.Get("Accept-Language")
	if accept == "" {
		return "", false
	}
	// First tag only; quality weights belong to content negotiation, not
	// cache key derivation.
	culture := accept
	if idx := strings.IndexByte(culture, ','); idx >= 0 {
		culture = culture[:idx]
	}
	if idx := strings.IndexByte(culture, ';'); idx >= 0 {
		culture = culture[:idx]
	}
	culture = strings.TrimSpace(culture)
	return culture, culture != ""
}
