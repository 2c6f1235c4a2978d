// Package mockfetch provides a scoped HTTP transport double for tests.
//
// Requests are matched against registered interceptors by method and URL.
// Each interceptor answers exactly one request. When the test finishes, every
// interceptor must have been consumed:
//
//	mock := mockfetch.New(t)
//	mock.Intercept(http.MethodGet, "https://example.com/.well-known/openid-configuration").
//	    JSON(http.StatusOK, `{"issuer":"https://example.com"}`)
//
// A request that matches no interceptor fails with a *NotMatchedError.
package mockfetch

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrNotMatched is matched by every *NotMatchedError.
var ErrNotMatched = errors.New("mockfetch: no interceptor matched")

// NotMatchedError is returned for a request no pending interceptor matches.
type NotMatchedError struct {
	Method string
	URL    string
}

func (e *NotMatchedError) Error() string {
	return fmt.Sprintf("mockfetch: no interceptor matched %s %s", e.Method, e.URL)
}

// Is reports whether target is ErrNotMatched.
func (e *NotMatchedError) Is(target error) bool {
	return target == ErrNotMatched
}

// Mock is a transport double. It satisfies the single-method Do interface
// that *http.Client implements and is safe for concurrent use.
type Mock struct {
	mu           sync.Mutex
	interceptors []*Interceptor
	requests     []*http.Request
	open         int
}

// New returns a Mock scoped to t. Interceptors left unconsumed when t
// finishes fail the test.
func New(t testing.TB) *Mock {
	t.Helper()

	m := &Mock{}
	t.Cleanup(func() {
		pending := m.Pending()
		assert.Empty(t, pending, "mockfetch: unconsumed interceptors")
	})
	return m
}

// Interceptor is a canned answer to one request.
type Interceptor struct {
	method string
	url    string

	status int
	header http.Header
	body   []byte
	err    error
}

// Intercept registers an interceptor for method and the absolute url. Without
// a response configured it answers 200 with an empty body.
func (m *Mock) Intercept(method, url string) *Interceptor {
	i := &Interceptor{
		method: method,
		url:    url,
		status: http.StatusOK,
		header: make(http.Header),
	}

	m.mu.Lock()
	m.interceptors = append(m.interceptors, i)
	m.mu.Unlock()

	return i
}

// Response sets the status and body of the answer.
func (i *Interceptor) Response(status int, body string) *Interceptor {
	i.status = status
	i.body = []byte(body)
	return i
}

// JSON sets the status and body of the answer and marks it as JSON.
func (i *Interceptor) JSON(status int, body string) *Interceptor {
	i.header.Set("Content-Type", "application/json")
	return i.Response(status, body)
}

// Header adds a response header.
func (i *Interceptor) Header(key, value string) *Interceptor {
	i.header.Add(key, value)
	return i
}

// Error makes the interceptor fail the request with err instead of
// answering it.
func (i *Interceptor) Error(err error) *Interceptor {
	i.err = err
	return i
}

func (i *Interceptor) String() string {
	return i.method + " " + i.url
}

// Do answers req with the first pending interceptor matching its method and
// URL and consumes that interceptor.
func (m *Mock) Do(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	var match *Interceptor
	for idx, i := range m.interceptors {
		if i.method == req.Method && i.url == req.URL.String() {
			match = i
			m.interceptors = append(m.interceptors[:idx:idx], m.interceptors[idx+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if match == nil {
		return nil, &NotMatchedError{Method: req.Method, URL: req.URL.String()}
	}
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if match.err != nil {
		return nil, match.err
	}

	m.mu.Lock()
	m.open++
	m.mu.Unlock()

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", match.status, http.StatusText(match.status)),
		StatusCode:    match.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        match.header.Clone(),
		Body:          &body{Reader: bytes.NewReader(match.body), mock: m},
		ContentLength: int64(len(match.body)),
		Request:       req,
	}, nil
}

// OpenBodies returns the number of response bodies handed out and not
// closed yet.
func (m *Mock) OpenBodies() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

type body struct {
	*bytes.Reader
	mock   *Mock
	closed bool
}

func (b *body) Close() error {
	b.mock.mu.Lock()
	defer b.mock.mu.Unlock()
	if !b.closed {
		b.closed = true
		b.mock.open--
	}
	return nil
}

// Requests returns every request seen so far, matched or not.
func (m *Mock) Requests() []*http.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*http.Request(nil), m.requests...)
}

// Pending lists the interceptors not consumed yet as "METHOD URL".
func (m *Mock) Pending() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	pending := make([]string, 0, len(m.interceptors))
	for _, i := range m.interceptors {
		pending = append(pending, i.String())
	}
	return pending
}
