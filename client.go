package discovery

import (
	"context"
	"fmt"
	"net/url"

	"github.com/auth0/go-oidc-discovery/internal/oidc"
)

// Client retrieves provider metadata. It is immutable once built by New and
// safe for concurrent use; calls share no state beyond the configured
// Transport.
type Client struct {
	transport   Transport
	setDefaults bool
	originOnly  bool
	maxBodySize int64
	logger      Logger
	tracer      Tracer
	metrics     Metrics
}

// New builds a Client.
//
// Optional options:
//   - WithHTTPClient / WithTransport: how the metadata document is fetched
//   - WithDefaults: fill in standard-defined defaults
//   - WithIssuerOriginOnly: relax issuer validation to the origin
//   - WithMaxBodySize, WithLogger, WithTracer, WithMetrics
//
// Example:
//
//	client, err := discovery.New(
//	    discovery.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
//	    discovery.WithDefaults(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	metadata, err := client.Metadata(ctx, "https://accounts.google.com")
func New(opts ...Option) (*Client, error) {
	o := &options{
		maxBodySize: oidc.DefaultMaxBodySize,
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	c := &Client{
		transport:   o.transport,
		setDefaults: o.setDefaults,
		originOnly:  o.originOnly,
		maxBodySize: o.maxBodySize,
		logger:      o.logger,
		tracer:      o.tracer,
		metrics:     o.metrics,
	}
	if c.transport == nil {
		c.transport = defaultTransport()
	}
	c.transport = withoutCredentials(c.transport)
	if c.logger == nil {
		c.logger = NopLogger{}
	}
	if c.tracer == nil {
		c.tracer = &NoopTracer{}
	}
	if c.metrics == nil {
		c.metrics = &NoopMetrics{}
	}

	return c, nil
}

// RawMetadata retrieves the raw provider metadata for issuer, for example
// "https://accounts.google.com". The document is only checked to be a JSON
// object.
func (c *Client) RawMetadata(ctx context.Context, issuer string) (RawMetadata, error) {
	iss, err := issuerFromString(issuer)
	if err != nil {
		return nil, err
	}
	return c.retrieveRaw(ctx, iss)
}

// RawMetadataFromURL is RawMetadata for an already parsed issuer.
// issuer is not modified.
func (c *Client) RawMetadataFromURL(ctx context.Context, issuer *url.URL) (RawMetadata, error) {
	iss, err := issuerFromURL(issuer)
	if err != nil {
		return nil, err
	}
	return c.retrieveRaw(ctx, iss)
}

// Metadata retrieves, validates and converts the provider metadata for
// issuer. Either a fully populated *ProviderMetadata or an error is returned.
func (c *Client) Metadata(ctx context.Context, issuer string) (*ProviderMetadata, error) {
	iss, err := issuerFromString(issuer)
	if err != nil {
		return nil, err
	}
	return c.retrieveParsed(ctx, iss)
}

// MetadataFromURL is Metadata for an already parsed issuer. In exact mode the
// provider's issuer must equal issuer.String().
func (c *Client) MetadataFromURL(ctx context.Context, issuer *url.URL) (*ProviderMetadata, error) {
	iss, err := issuerFromURL(issuer)
	if err != nil {
		return nil, err
	}
	return c.retrieveParsed(ctx, iss)
}

// RetrieveRawMetadata retrieves the raw provider metadata for issuer with a
// Client built from opts.
func RetrieveRawMetadata(ctx context.Context, issuer string, opts ...Option) (RawMetadata, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.RawMetadata(ctx, issuer)
}

// RetrieveRawMetadataFromURL is RetrieveRawMetadata for an already parsed issuer.
func RetrieveRawMetadataFromURL(ctx context.Context, issuer *url.URL, opts ...Option) (RawMetadata, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.RawMetadataFromURL(ctx, issuer)
}

// RetrieveMetadata retrieves and parses the provider metadata for issuer with
// a Client built from opts.
func RetrieveMetadata(ctx context.Context, issuer string, opts ...Option) (*ProviderMetadata, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Metadata(ctx, issuer)
}

// RetrieveMetadataFromURL is RetrieveMetadata for an already parsed issuer.
func RetrieveMetadataFromURL(ctx context.Context, issuer *url.URL, opts ...Option) (*ProviderMetadata, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.MetadataFromURL(ctx, issuer)
}

// issuer is the caller's issuer in both forms: text is what exact issuer
// validation compares against, url is what the request is built from.
type issuer struct {
	text string
	url  *url.URL
}

func issuerFromString(s string) (issuer, error) {
	u, err := url.Parse(s)
	if err != nil {
		return issuer{}, newInvalidIssuerError(s, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return issuer{}, newInvalidIssuerError(s, nil)
	}
	return issuer{text: s, url: u}, nil
}

func issuerFromURL(u *url.URL) (issuer, error) {
	if u == nil {
		return issuer{}, newInvalidIssuerError("", nil)
	}
	if !u.IsAbs() || u.Host == "" {
		return issuer{}, newInvalidIssuerError(u.String(), nil)
	}
	cp := *u
	return issuer{text: cp.String(), url: &cp}, nil
}
