package oidc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// WellKnownPath is the suffix appended to the issuer path to locate the
// provider metadata document.
const WellKnownPath = ".well-known/openid-configuration"

// DefaultMaxBodySize bounds the metadata document. Real documents are a few
// kilobytes.
const DefaultMaxBodySize int64 = 1 << 20

// ErrNotAnObject is returned when the metadata response is valid JSON but not
// a JSON object.
var ErrNotAnObject = errors.New("provider metadata is not an object")

// Doer performs a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the metadata endpoint does not answer 200 OK.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("metadata endpoint returned status %d, expected 200", e.StatusCode)
}

// DecodeError wraps the JSON decoder failure for a metadata response.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "failed to decode JSON: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// BodyTooLargeError is returned when the metadata response exceeds the
// configured size limit.
type BodyTooLargeError struct {
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("metadata response exceeds %d bytes", e.Limit)
}

// WellKnownURL returns the discovery document URL for issuer. A separator is
// inserted only when the issuer path does not already end with one, so
// "https://x" and "https://x/" map to the same URL. Query and fragment of the
// issuer are dropped. issuer is not modified.
func WellKnownURL(issuer *url.URL) *url.URL {
	wk := *issuer
	wk.User = nil
	wk.RawQuery = ""
	wk.ForceQuery = false
	wk.Fragment = ""
	wk.RawFragment = ""

	p := issuer.EscapedPath()
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	p += WellKnownPath

	// EscapedPath always yields a valid escaping, so unescaping cannot fail.
	wk.Path, _ = url.PathUnescape(p)
	wk.RawPath = p

	return &wk
}

// FetchDocument performs one GET against wellKnownURL and returns the decoded
// JSON object. Errors from client are returned unwrapped. A non-200 status
// yields *StatusError, an oversized body *BodyTooLargeError, invalid JSON
// *DecodeError and any other JSON value ErrNotAnObject.
func FetchDocument(ctx context.Context, client Doer, wellKnownURL *url.URL, maxBodySize int64) (map[string]any, error) {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnownURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request to get well-known endpoints: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxBodySize {
		return nil, &BodyTooLargeError{Limit: maxBodySize}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err}
	}

	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}

	return doc, nil
}
