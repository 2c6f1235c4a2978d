package discovery

import (
	"errors"
	"net/http"
)

// Option configures a Client.
// Returns error for validation failures.
type Option func(*options) error

type options struct {
	transport   Transport
	setDefaults bool
	originOnly  bool
	maxBodySize int64
	logger      Logger
	tracer      Tracer
	metrics     Metrics
}

// WithHTTPClient sets the *http.Client used to fetch the metadata document.
// A cookie jar configured on the client is never used for discovery requests.
//
// Default: an *http.Client with a 30s timeout and no cookie jar
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) error {
		if c == nil {
			return ErrHTTPClientNil
		}
		o.transport = c
		return nil
	}
}

// WithTransport sets a custom Transport used to fetch the metadata document.
// Use this to plug in instrumented clients or test doubles.
//
// Example:
//
//	client, err := discovery.New(
//	    discovery.WithTransport(discovery.TransportFunc(func(r *http.Request) (*http.Response, error) {
//	        return myClient.Do(r)
//	    })),
//	)
func WithTransport(t Transport) Option {
	return func(o *options) error {
		if t == nil {
			return ErrTransportNil
		}
		o.transport = t
		return nil
	}
}

// WithDefaults sets whether the standard-defined default values are added to
// the raw metadata for the properties the provider left out:
// response_modes_supported, grant_types_supported,
// token_endpoint_auth_methods_supported, claim_types_supported,
// claims_parameter_supported, request_parameter_supported,
// request_uri_parameter_supported and require_request_uri_registration.
// Properties present in the response are never overwritten.
//
// Default: false
func WithDefaults(value bool) Option {
	return func(o *options) error {
		o.setDefaults = value
		return nil
	}
}

// WithIssuerOriginOnly sets whether only the origin (scheme, host and port) of
// the issuer claimed by the provider is compared with the requested issuer.
// This is non-standard but necessary for Microsoft Entra ID, whose common
// endpoint answers with a templated "{tenantid}" issuer.
//
// Default: false (exact string match)
func WithIssuerOriginOnly(value bool) Option {
	return func(o *options) error {
		o.originOnly = value
		return nil
	}
}

// WithMaxBodySize limits the number of bytes read from the metadata response.
//
// Default: 1 MiB
func WithMaxBodySize(n int64) Option {
	return func(o *options) error {
		if n <= 0 {
			return ErrMaxBodySizeInvalid
		}
		o.maxBodySize = n
		return nil
	}
}

// WithLogger sets an optional logger for discovery requests.
//
// Example:
//
//	client, err := discovery.New(
//	    discovery.WithLogger(discovery.NewZapLogger(zapLogger.Sugar())),
//	)
func WithLogger(logger Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return ErrLoggerNil
		}
		o.logger = logger
		return nil
	}
}

// WithTracer sets an optional tracer. Each retrieval and each parse is
// recorded as a span.
func WithTracer(tracer Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return ErrTracerNil
		}
		o.tracer = tracer
		return nil
	}
}

// WithMetrics sets an optional metrics sink for request counts and durations.
func WithMetrics(metrics Metrics) Option {
	return func(o *options) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		o.metrics = metrics
		return nil
	}
}

// Sentinel errors for configuration validation
var (
	ErrHTTPClientNil      = errors.New("HTTP client cannot be nil")
	ErrTransportNil       = errors.New("transport cannot be nil")
	ErrMaxBodySizeInvalid = errors.New("max body size must be positive")
	ErrLoggerNil          = errors.New("logger cannot be nil")
	ErrTracerNil          = errors.New("tracer cannot be nil")
	ErrMetricsNil         = errors.New("metrics cannot be nil")
)
