package discovery

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
)

var (
	errNotArray        = errors.New("not an array")
	errNonStringMember = errors.New("non-string member")
)

// field describes how one metadata property is converted. Exactly one of
// url and strings is set.
type field struct {
	key      string
	required bool
	url      **url.URL
	strings  *[]string
}

// fields lists the converted properties in validation order: mandatory URLs,
// mandatory arrays, then the optional properties.
func (m *ProviderMetadata) fields() []field {
	return []field{
		{key: KeyIssuer, required: true, url: &m.Issuer},
		{key: KeyAuthorizationEndpoint, required: true, url: &m.AuthorizationEndpoint},
		{key: KeyTokenEndpoint, required: true, url: &m.TokenEndpoint},
		{key: KeyJWKSURI, required: true, url: &m.JWKSURI},
		{key: KeyResponseTypesSupported, required: true, strings: &m.ResponseTypesSupported},
		{key: KeySubjectTypesSupported, required: true, strings: &m.SubjectTypesSupported},
		{key: KeyIDTokenSigningAlgValuesSupported, required: true, strings: &m.IDTokenSigningAlgValuesSupported},

		{key: KeyUserinfoEndpoint, url: &m.UserinfoEndpoint},
		{key: KeyRegistrationEndpoint, url: &m.RegistrationEndpoint},
		{key: KeyScopesSupported, strings: &m.ScopesSupported},
		{key: KeyResponseModesSupported, strings: &m.ResponseModesSupported},
		{key: KeyGrantTypesSupported, strings: &m.GrantTypesSupported},
		{key: KeyClaimsSupported, strings: &m.ClaimsSupported},
		{key: KeyTokenEndpointAuthMethodsSupported, strings: &m.TokenEndpointAuthMethodsSupported},
		{key: KeyCheckSessionIframe, url: &m.CheckSessionIframe},
		{key: KeyEndSessionEndpoint, url: &m.EndSessionEndpoint},
		{key: KeyCodeChallengeMethodsSupported, strings: &m.CodeChallengeMethodsSupported},
		{key: KeyDeviceAuthorizationEndpoint, url: &m.DeviceAuthorizationEndpoint},
		{key: KeyRevocationEndpoint, url: &m.RevocationEndpoint},
		{key: KeyRevocationEndpointAuthMethodsSupported, strings: &m.RevocationEndpointAuthMethodsSupported},
	}
}

func (c *Client) retrieveParsed(ctx context.Context, iss issuer) (*ProviderMetadata, error) {
	ctx, span := c.tracer.StartSpan(ctx, SpanParse)
	defer span.Finish()
	span.SetTag("issuer", iss.text)
	span.SetTag("origin_only", c.originOnly)

	raw, err := c.retrieveRaw(ctx, iss)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	metadata, err := parse(iss, raw, c.originOnly)
	c.metrics.IncCounter(MetricParseTotal, map[string]string{"outcome": outcome(err)})
	if err != nil {
		c.logger.Warnf("invalid OIDC provider metadata for %s: %v", iss.text, err)
		span.SetError(err)
		return nil, err
	}

	return metadata, nil
}

// parse validates raw against the requested issuer and converts it. raw is
// not modified and is attached to the result as it is.
func parse(iss issuer, raw RawMetadata, originOnly bool) (*ProviderMetadata, error) {
	if err := validateIssuer(iss, raw, originOnly); err != nil {
		return nil, err
	}

	metadata := &ProviderMetadata{Raw: raw}
	for _, f := range metadata.fields() {
		value, ok := raw[f.key]
		if !ok {
			if f.required {
				return nil, newFieldError(ErrorCodeMissingField, f.key, "is missing, but required", nil)
			}
			continue
		}

		if f.url != nil {
			u, err := urlValue(f.key, value)
			if err != nil {
				return nil, err
			}
			*f.url = u
			continue
		}

		s, err := stringsValue(f.key, value)
		if err != nil {
			return nil, err
		}
		*f.strings = s
	}

	return metadata, nil
}

// validateIssuer checks the issuer claimed by the provider. In exact mode it
// must equal the caller's issuer string; in origin-only mode only scheme,
// host and port are compared.
func validateIssuer(iss issuer, raw RawMetadata, originOnly bool) error {
	value, ok := raw[KeyIssuer]
	if !ok {
		return newFieldError(ErrorCodeMissingField, KeyIssuer, "is missing, but required", nil)
	}
	actual, ok := value.(string)
	if !ok {
		return newFieldError(ErrorCodeNotString, KeyIssuer, "is not a string, as required", nil)
	}

	if !originOnly {
		if actual != iss.text {
			return newIssuerMismatchError(iss.text, actual, false)
		}
		return nil
	}

	actualURL, err := urlValue(KeyIssuer, actual)
	if err != nil {
		return err
	}
	if origin(actualURL) != origin(iss.url) {
		return newIssuerMismatchError(iss.text, actual, true)
	}
	return nil
}

// origin returns scheme://host:port with the scheme's default port filled in.
func origin(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if port == "" {
		switch scheme {
		case "http":
			port = "80"
		case "https":
			port = "443"
		}
	}
	if port == "" {
		return scheme + "://" + host
	}
	return scheme + "://" + net.JoinHostPort(host, port)
}

func urlValue(key string, value any) (*url.URL, error) {
	s, ok := value.(string)
	if !ok {
		return nil, newFieldError(ErrorCodeNotString, key, "is not a string, as required", nil)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, newFieldError(ErrorCodeInvalidURL, key, "is not a valid URL", err)
	}
	if !u.IsAbs() {
		return nil, newFieldError(ErrorCodeInvalidURL, key, "is not an absolute URL", nil)
	}
	return u, nil
}

func stringsValue(key string, value any) ([]string, error) {
	s, index, err := toStrings(value)
	switch {
	case errors.Is(err, errNotArray):
		return nil, newFieldError(ErrorCodeNotStringArray, key, "is not an array of strings, as required", nil)
	case errors.Is(err, errNonStringMember):
		fErr := newFieldError(ErrorCodeNonStringElement, key, "does not only contain strings, as required", nil)
		fErr.Index = index
		return nil, fErr
	}
	return s, nil
}

// toStrings copies a decoded JSON array of strings. On errNonStringMember the
// index of the first offending element is returned.
func toStrings(value any) ([]string, int, error) {
	switch v := value.(type) {
	case []string:
		return append(make([]string, 0, len(v)), v...), -1, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, i, errNonStringMember
			}
			out = append(out, s)
		}
		return out, -1, nil
	}
	return nil, -1, errNotArray
}
