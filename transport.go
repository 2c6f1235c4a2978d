package discovery

import (
	"net/http"
	"time"
)

// Transport performs the HTTP request for the metadata document.
// *http.Client satisfies it; tests substitute a double that matches requests
// by method and URL.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// defaultTransport is used when no transport option is given. It has no
// cookie jar, so no ambient credentials reach the metadata endpoint.
func defaultTransport() Transport {
	return &http.Client{Timeout: 30 * time.Second}
}

// withoutCredentials strips the cookie jar from a caller supplied
// *http.Client. Other transports are used as they are.
func withoutCredentials(t Transport) Transport {
	c, ok := t.(*http.Client)
	if !ok || c.Jar == nil {
		return t
	}
	stripped := *c
	stripped.Jar = nil
	return &stripped
}
