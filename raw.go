package discovery

import (
	"context"
	"errors"
	"time"

	"github.com/auth0/go-oidc-discovery/internal/oidc"
)

// Outcome label for failures that are not an *Error.
const outcomeTransportError = "transport_error"

// standardDefaults are the values OpenID Connect Discovery 1.0 section 3
// prescribes for absent properties. Each call builds fresh values so callers
// may mutate the returned document.
var standardDefaults = []struct {
	key   string
	value func() any
}{
	{KeyResponseModesSupported, func() any { return []any{"query", "fragment"} }},
	{KeyGrantTypesSupported, func() any { return []any{"authorization_code", "implicit"} }},
	{KeyTokenEndpointAuthMethodsSupported, func() any { return []any{"client_secret_basic"} }},
	{KeyClaimTypesSupported, func() any { return []any{"normal"} }},
	{KeyClaimsParameterSupported, func() any { return false }},
	{KeyRequestParameterSupported, func() any { return false }},
	// The standard really does default this one to true.
	{KeyRequestURIParameterSupported, func() any { return true }},
	{KeyRequireRequestURIRegistration, func() any { return false }},
}

// applyDefaults adds the standard defaults for absent keys. Present keys are
// kept even when they hold an empty or false value.
func applyDefaults(raw RawMetadata) {
	for _, d := range standardDefaults {
		if _, ok := raw[d.key]; !ok {
			raw[d.key] = d.value()
		}
	}
}

func (c *Client) retrieveRaw(ctx context.Context, iss issuer) (raw RawMetadata, err error) {
	ctx, span := c.tracer.StartSpan(ctx, SpanRetrieveRaw)
	defer span.Finish()
	span.SetTag("issuer", iss.text)

	start := time.Now()
	defer func() {
		c.observe(start, err)
		span.SetError(err)
	}()

	// An already cancelled context must not reach the network.
	if ctx.Err() != nil {
		return nil, context.Cause(ctx)
	}

	wellKnownURL := oidc.WellKnownURL(iss.url)
	span.SetTag("url", wellKnownURL.String())
	c.logger.Debugf("fetching OIDC provider metadata from %s", wellKnownURL)

	doc, err := oidc.FetchDocument(ctx, c.transport, wellKnownURL, c.maxBodySize)
	if err != nil {
		err = translateFetchError(err)
		var dErr *Error
		if errors.As(err, &dErr) && dErr.Code == ErrorCodeUnexpectedStatus {
			span.SetTag("status", dErr.StatusCode)
		}
		c.logger.Warnf("could not retrieve OIDC provider metadata from %s: %v", wellKnownURL, err)
		return nil, err
	}

	raw = RawMetadata(doc)
	if c.setDefaults {
		applyDefaults(raw)
	}

	c.logger.Debugf("retrieved OIDC provider metadata for %s with %d properties", iss.text, len(raw))
	return raw, nil
}

// translateFetchError maps the leaf errors onto *Error. Anything else comes
// from the transport or the context and is returned as it is.
func translateFetchError(err error) error {
	var (
		statusErr   *oidc.StatusError
		decodeErr   *oidc.DecodeError
		tooLargeErr *oidc.BodyTooLargeError
	)
	switch {
	case errors.As(err, &statusErr):
		return newStatusError(statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		return &Error{
			Code:    ErrorCodeMalformedBody,
			Message: "provider metadata is not valid JSON",
			Index:   -1,
			Details: decodeErr.Err,
		}
	case errors.As(err, &tooLargeErr):
		return &Error{
			Code:    ErrorCodeBodyTooLarge,
			Message: tooLargeErr.Error(),
			Index:   -1,
		}
	case errors.Is(err, oidc.ErrNotAnObject):
		return &Error{
			Code:    ErrorCodeNotAnObject,
			Message: "provider metadata is not an object",
			Index:   -1,
		}
	}
	return err
}

func (c *Client) observe(start time.Time, err error) {
	tags := map[string]string{"outcome": outcome(err)}
	c.metrics.IncCounter(MetricRequestsTotal, tags)
	c.metrics.ObserveHistogram(MetricRequestDuration, time.Since(start).Seconds(), tags)
}

// outcome is "success", the code of an *Error or outcomeTransportError.
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return outcomeTransportError
}
