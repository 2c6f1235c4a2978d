/*
Package discovery retrieves and validates OpenID Connect provider metadata.

Given an issuer identifier, it builds the well-known metadata URL, fetches the
provider's configuration document with a single unauthenticated GET, checks
that the issuer the provider claims matches the one it was asked about and
converts the document into typed Go values.

# Quick Start

	import (
	    "github.com/auth0/go-oidc-discovery"
	)

	func main() {
	    ctx := context.Background()

	    metadata, err := discovery.RetrieveMetadata(ctx, "https://accounts.google.com")
	    if err != nil {
	        log.Fatal(err)
	    }

	    fmt.Println(metadata.TokenEndpoint)
	    fmt.Println(metadata.JWKSURI)
	}

# Raw and Parsed Metadata

Two layers are exposed:

  - RetrieveRawMetadata returns the document as an untyped RawMetadata map,
    only checked to be a JSON object. Non-standard properties are kept.
  - RetrieveMetadata additionally validates the issuer and the mandatory
    properties and returns a *ProviderMetadata with URLs parsed into
    *url.URL and capability lists converted to []string. The raw document
    is kept in ProviderMetadata.Raw.

Both have a FromURL variant taking an already parsed *url.URL, and a method
on Client for repeated use with the same options:

	client, err := discovery.New(
	    discovery.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
	    discovery.WithDefaults(true),
	)
	if err != nil {
	    log.Fatal(err)
	}

	raw, err := client.RawMetadata(ctx, "https://example.okta.com")

# Issuer Validation

By default the issuer in the document must equal the issuer string used to
retrieve it. Some providers serve a templated issuer from a shared endpoint;
Microsoft's common endpoint answers with
"https://login.microsoftonline.com/{tenantid}/v2.0". For those, compare only
scheme, host and port:

	metadata, err := discovery.RetrieveMetadata(ctx,
	    "https://login.microsoftonline.com/common/v2.0",
	    discovery.WithIssuerOriginOnly(true),
	)

# Defaults

With WithDefaults(true) the values OpenID Connect Discovery 1.0 prescribes for
absent properties are added to the raw document, for example
response_modes_supported = ["query", "fragment"]. Published values are never
replaced.

# Error Handling

Every failure detected by this package is an *Error with a machine readable
Code. Use errors.Is with the category sentinels to branch:

	metadata, err := discovery.RetrieveMetadata(ctx, issuer)
	switch {
	case errors.Is(err, discovery.ErrIssuerMismatch):
	    // the provider claims a different issuer
	case errors.Is(err, discovery.ErrInvalidField):
	    var dErr *discovery.Error
	    errors.As(err, &dErr)
	    log.Printf("bad property %s: %s", dErr.Field, dErr.Code)
	case err != nil:
	    // transport failure or cancellation, returned unwrapped
	}

Network errors and context cancellation are returned as they are. Cancel a
retrieval through the context; an already cancelled context fails with
context.Cause(ctx) without any request being sent.

# Logging, Tracing and Metrics

A Client logs through WithLogger (adapters for zap, zerolog and logrus are
provided), records spans through WithTracer (NewOpenTelemetryTracer) and
counts requests through WithMetrics (NewPrometheusMetrics). All three default
to no-ops.

# What This Package Does Not Do

It does not cache metadata, retry failed requests, fetch or validate the
keys behind jwks_uri, register clients or exchange tokens.
*/
package discovery
