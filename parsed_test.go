package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auth0/go-oidc-discovery/internal/mockfetch"
)

const minimalDocument = `{
	"issuer": "https://foo.bar",
	"authorization_endpoint": "https://foo.bar/auth",
	"token_endpoint": "https://foo.bar/token",
	"jwks_uri": "https://foo.bar/jwks",
	"response_types_supported": ["response"],
	"subject_types_supported": ["subject"],
	"id_token_signing_alg_values_supported": ["id_token"]
}`

const fooBarWellKnown = "https://foo.bar/.well-known/openid-configuration"

// withProperty returns minimalDocument with key set to the raw JSON value, or
// removed when value is empty.
func withProperty(t *testing.T, key, value string) string {
	t.Helper()
	doc := decode(t, minimalDocument)
	if value == "" {
		delete(doc, key)
	} else {
		var v any
		require.NoError(t, json.Unmarshal([]byte(value), &v))
		doc[key] = v
	}
	body, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(body)
}

func retrieveFooBar(t *testing.T, body string, opts ...Option) (*ProviderMetadata, error) {
	t.Helper()
	mock := mockfetch.New(t)
	mock.Intercept(http.MethodGet, fooBarWellKnown).JSON(http.StatusOK, body)
	return RetrieveMetadata(context.Background(), "https://foo.bar", append([]Option{WithTransport(mock)}, opts...)...)
}

func requireFieldError(t *testing.T, err error, code, field string) *Error {
	t.Helper()
	require.ErrorIs(t, err, ErrInvalidField)
	var dErr *Error
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, code, dErr.Code)
	assert.Equal(t, field, dErr.Field)
	return dErr
}

func urlStrings(urls ...*url.URL) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, u.String())
	}
	return out
}

func TestRetrieveMetadata_TransportErrorsAreNotHidden(t *testing.T) {
	mock := mockfetch.New(t)

	_, err := RetrieveMetadata(context.Background(), "http://does-not-exist.local", WithTransport(mock))

	assert.ErrorIs(t, err, mockfetch.ErrNotMatched)
}

func TestRetrieveMetadata_MandatoryProperties(t *testing.T) {
	mandatory := []string{
		KeyIssuer,
		KeyAuthorizationEndpoint,
		KeyTokenEndpoint,
		KeyJWKSURI,
		KeyResponseTypesSupported,
		KeySubjectTypesSupported,
		KeyIDTokenSigningAlgValuesSupported,
	}

	for _, key := range mandatory {
		t.Run(key, func(t *testing.T) {
			metadata, err := retrieveFooBar(t, withProperty(t, key, ""))

			assert.Nil(t, metadata)
			dErr := requireFieldError(t, err, ErrorCodeMissingField, key)
			assert.Contains(t, dErr.Error(), key)
		})
	}
}

func TestRetrieveMetadata_ParsesMinimalObject(t *testing.T) {
	metadata, err := retrieveFooBar(t, minimalDocument)
	require.NoError(t, err)

	// The data passes through correctly
	assertDocument(t, decode(t, minimalDocument), metadata.Raw)

	assert.Equal(t, "https://foo.bar", metadata.Issuer.String())
	assert.Equal(t, "https://foo.bar/auth", metadata.AuthorizationEndpoint.String())
	assert.Equal(t, "https://foo.bar/token", metadata.TokenEndpoint.String())
	assert.Equal(t, "https://foo.bar/jwks", metadata.JWKSURI.String())
	assert.Equal(t, []string{"response"}, metadata.ResponseTypesSupported)
	assert.Equal(t, []string{"subject"}, metadata.SubjectTypesSupported)
	assert.Equal(t, []string{"id_token"}, metadata.IDTokenSigningAlgValuesSupported)

	// Optional properties are absent
	assert.Nil(t, metadata.UserinfoEndpoint)
	assert.Nil(t, metadata.RegistrationEndpoint)
	assert.Nil(t, metadata.CheckSessionIframe)
	assert.Nil(t, metadata.EndSessionEndpoint)
	assert.Nil(t, metadata.DeviceAuthorizationEndpoint)
	assert.Nil(t, metadata.RevocationEndpoint)
	assert.Nil(t, metadata.ScopesSupported)
	assert.Nil(t, metadata.ResponseModesSupported)
	assert.Nil(t, metadata.GrantTypesSupported)
	assert.Nil(t, metadata.ClaimsSupported)
	assert.Nil(t, metadata.TokenEndpointAuthMethodsSupported)
	assert.Nil(t, metadata.CodeChallengeMethodsSupported)
	assert.Nil(t, metadata.RevocationEndpointAuthMethodsSupported)
}

func TestRetrieveMetadata_EmptyArrays(t *testing.T) {
	body := withProperty(t, KeyResponseTypesSupported, `[]`)
	body = strings.Replace(body, "{", `{"scopes_supported":[],`, 1)

	metadata, err := retrieveFooBar(t, body)
	require.NoError(t, err)

	assert.NotNil(t, metadata.ResponseTypesSupported)
	assert.Empty(t, metadata.ResponseTypesSupported)
	assert.NotNil(t, metadata.ScopesSupported, "a published empty array is not absent")
	assert.Empty(t, metadata.ScopesSupported)
}

func TestRetrieveMetadata_ArrayProperties(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantCode  string
		wantIndex int
	}{
		{
			name:      "number in mandatory array",
			key:       KeyResponseTypesSupported,
			value:     `["response", 42]`,
			wantCode:  ErrorCodeNonStringElement,
			wantIndex: 1,
		},
		{
			name:      "null in mandatory array",
			key:       KeySubjectTypesSupported,
			value:     `[null]`,
			wantCode:  ErrorCodeNonStringElement,
			wantIndex: 0,
		},
		{
			name:      "nested array in optional array",
			key:       KeyScopesSupported,
			value:     `["openid", "email", ["profile"]]`,
			wantCode:  ErrorCodeNonStringElement,
			wantIndex: 2,
		},
		{
			name:      "object in optional array",
			key:       KeyRevocationEndpointAuthMethodsSupported,
			value:     `[{"method": "none"}]`,
			wantCode:  ErrorCodeNonStringElement,
			wantIndex: 0,
		},
		{
			name:      "string instead of mandatory array",
			key:       KeyIDTokenSigningAlgValuesSupported,
			value:     `"RS256"`,
			wantCode:  ErrorCodeNotStringArray,
			wantIndex: -1,
		},
		{
			name:      "object instead of optional array",
			key:       KeyGrantTypesSupported,
			value:     `{"0": "authorization_code"}`,
			wantCode:  ErrorCodeNotStringArray,
			wantIndex: -1,
		},
		{
			name:      "null optional array",
			key:       KeyClaimsSupported,
			value:     `null`,
			wantCode:  ErrorCodeNotStringArray,
			wantIndex: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata, err := retrieveFooBar(t, withProperty(t, tt.key, tt.value))

			assert.Nil(t, metadata)
			dErr := requireFieldError(t, err, tt.wantCode, tt.key)
			assert.Equal(t, tt.wantIndex, dErr.Index)
		})
	}
}

func TestRetrieveMetadata_URLProperties(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		wantCode string
	}{
		{name: "number", key: KeyJWKSURI, value: `42`, wantCode: ErrorCodeNotString},
		{name: "array", key: KeyTokenEndpoint, value: `["https://foo.bar/token"]`, wantCode: ErrorCodeNotString},
		{name: "relative", key: KeyAuthorizationEndpoint, value: `"/auth"`, wantCode: ErrorCodeInvalidURL},
		{name: "unparsable", key: KeyTokenEndpoint, value: `"https://foo.bar/%zz"`, wantCode: ErrorCodeInvalidURL},
		{name: "empty string", key: KeyJWKSURI, value: `""`, wantCode: ErrorCodeInvalidURL},
		{name: "null optional", key: KeyUserinfoEndpoint, value: `null`, wantCode: ErrorCodeNotString},
		{name: "bool optional", key: KeyEndSessionEndpoint, value: `true`, wantCode: ErrorCodeNotString},
		{name: "relative optional", key: KeyRevocationEndpoint, value: `"revoke"`, wantCode: ErrorCodeInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata, err := retrieveFooBar(t, withProperty(t, tt.key, tt.value))

			assert.Nil(t, metadata)
			requireFieldError(t, err, tt.wantCode, tt.key)
		})
	}
}

func TestRetrieveMetadata_IssuerValidation(t *testing.T) {
	tests := []struct {
		name       string
		issuer     string
		wellKnown  string
		document   string
		originOnly bool
		wantErr    error
		wantCode   string
	}{
		{
			name:      "exact match",
			issuer:    "https://foo.bar",
			wellKnown: fooBarWellKnown,
			document:  minimalDocument,
		},
		{
			name:      "evil provider claims another issuer",
			issuer:    "https://evil.bar",
			wellKnown: "https://evil.bar/.well-known/openid-configuration",
			document:  minimalDocument,
			wantErr:   ErrIssuerMismatch,
			wantCode:  ErrorCodeIssuerMismatch,
		},
		{
			name:      "trailing slash is significant",
			issuer:    "https://foo.bar/",
			wellKnown: fooBarWellKnown,
			document:  minimalDocument,
			wantErr:   ErrIssuerMismatch,
			wantCode:  ErrorCodeIssuerMismatch,
		},
		{
			name:       "origin only ignores path",
			issuer:     "https://foo.bar/common/v2.0",
			wellKnown:  "https://foo.bar/common/v2.0/.well-known/openid-configuration",
			document:   withProperty(t, KeyIssuer, `"https://foo.bar/{tenantid}/v2.0"`),
			originOnly: true,
		},
		{
			name:       "origin only normalises case and default port",
			issuer:     "HTTPS://Foo.Bar:443",
			wellKnown:  "https://Foo.Bar:443/.well-known/openid-configuration",
			document:   minimalDocument,
			originOnly: true,
		},
		{
			name:       "origin only rejects another host",
			issuer:     "https://evil.bar",
			wellKnown:  "https://evil.bar/.well-known/openid-configuration",
			document:   minimalDocument,
			originOnly: true,
			wantErr:    ErrIssuerMismatch,
			wantCode:   ErrorCodeIssuerMismatch,
		},
		{
			name:       "origin only rejects another port",
			issuer:     "https://foo.bar:8443",
			wellKnown:  "https://foo.bar:8443/.well-known/openid-configuration",
			document:   minimalDocument,
			originOnly: true,
			wantErr:    ErrIssuerMismatch,
			wantCode:   ErrorCodeIssuerMismatch,
		},
		{
			name:       "origin only rejects another scheme",
			issuer:     "http://foo.bar",
			wellKnown:  "http://foo.bar/.well-known/openid-configuration",
			document:   minimalDocument,
			originOnly: true,
			wantErr:    ErrIssuerMismatch,
			wantCode:   ErrorCodeIssuerMismatch,
		},
		{
			name:       "origin only with unparsable issuer",
			issuer:     "https://foo.bar",
			wellKnown:  fooBarWellKnown,
			document:   withProperty(t, KeyIssuer, `"not a url"`),
			originOnly: true,
			wantErr:    ErrInvalidField,
			wantCode:   ErrorCodeInvalidURL,
		},
		{
			name:      "issuer is not a string",
			issuer:    "https://foo.bar",
			wellKnown: fooBarWellKnown,
			document:  withProperty(t, KeyIssuer, `42`),
			wantErr:   ErrInvalidField,
			wantCode:  ErrorCodeNotString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mockfetch.New(t)
			mock.Intercept(http.MethodGet, tt.wellKnown).JSON(http.StatusOK, tt.document)

			metadata, err := RetrieveMetadata(context.Background(), tt.issuer,
				WithTransport(mock), WithIssuerOriginOnly(tt.originOnly))

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, metadata)
				return
			}
			assert.Nil(t, metadata)
			require.ErrorIs(t, err, tt.wantErr)
			var dErr *Error
			require.ErrorAs(t, err, &dErr)
			assert.Equal(t, tt.wantCode, dErr.Code)
			if tt.wantCode == ErrorCodeIssuerMismatch {
				assert.Equal(t, tt.issuer, dErr.Expected)
			}
		})
	}
}

func TestRetrieveMetadataFromURL(t *testing.T) {
	mock := mockfetch.New(t)
	mock.Intercept(http.MethodGet, fooBarWellKnown).JSON(http.StatusOK, minimalDocument)
	mock.Intercept(http.MethodGet, "https://evil.bar/.well-known/openid-configuration").JSON(http.StatusOK, minimalDocument)

	issuer, err := url.Parse("https://foo.bar")
	require.NoError(t, err)
	metadata, err := RetrieveMetadataFromURL(context.Background(), issuer, WithTransport(mock))
	require.NoError(t, err)
	assert.Equal(t, "https://foo.bar", metadata.Issuer.String())

	evil, err := url.Parse("https://evil.bar")
	require.NoError(t, err)
	_, err = RetrieveMetadataFromURL(context.Background(), evil, WithTransport(mock))
	var dErr *Error
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, ErrorCodeIssuerMismatch, dErr.Code)
	assert.Equal(t, "https://evil.bar", dErr.Expected)
	assert.Equal(t, "https://foo.bar", dErr.Actual)
}

func TestRetrieveMetadata_PropagatesRawErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		mock := mockfetch.New(t)
		mock.Intercept(http.MethodGet, fooBarWellKnown).JSON(http.StatusNotFound, minimalDocument)

		_, err := RetrieveMetadata(context.Background(), "https://foo.bar", WithTransport(mock))
		var dErr *Error
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, http.StatusNotFound, dErr.StatusCode)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := retrieveFooBar(t, `["https://foo.bar"]`)
		assert.ErrorIs(t, err, ErrMalformedBody)
	})

	t.Run("invalid issuer", func(t *testing.T) {
		_, err := RetrieveMetadata(context.Background(), "foo.bar")
		assert.ErrorIs(t, err, ErrInvalidIssuer)
	})
}

func TestRetrieveMetadata_DefaultsAreConverted(t *testing.T) {
	metadata, err := retrieveFooBar(t, minimalDocument, WithDefaults(true))
	require.NoError(t, err)

	assert.Equal(t, []string{"query", "fragment"}, metadata.ResponseModesSupported)
	assert.Equal(t, []string{"authorization_code", "implicit"}, metadata.GrantTypesSupported)
	assert.Equal(t, []string{"client_secret_basic"}, metadata.TokenEndpointAuthMethodsSupported)
	assert.Equal(t, true, metadata.Raw[KeyRequestURIParameterSupported])
}

func TestRetrieveMetadata_Providers(t *testing.T) {
	t.Run("accounts.google.com", func(t *testing.T) {
		body, want := readFixture(t, "accounts.google.com.json")
		mock := mockfetch.New(t)
		mock.Intercept(http.MethodGet, "https://accounts.google.com/.well-known/openid-configuration").
			JSON(http.StatusOK, body)

		actual, err := RetrieveMetadata(context.Background(), "https://accounts.google.com", WithTransport(mock))
		require.NoError(t, err)

		assertDocument(t, want, actual.Raw)
		assert.Equal(t, []string{
			"https://accounts.google.com",
			"https://accounts.google.com/o/oauth2/v2/auth",
			"https://oauth2.googleapis.com/device/code",
			"https://oauth2.googleapis.com/token",
			"https://openidconnect.googleapis.com/v1/userinfo",
			"https://oauth2.googleapis.com/revoke",
			"https://www.googleapis.com/oauth2/v3/certs",
		}, urlStrings(
			actual.Issuer,
			actual.AuthorizationEndpoint,
			actual.DeviceAuthorizationEndpoint,
			actual.TokenEndpoint,
			actual.UserinfoEndpoint,
			actual.RevocationEndpoint,
			actual.JWKSURI,
		))
		assert.Equal(t, []string{
			"code",
			"token",
			"id_token",
			"code token",
			"code id_token",
			"token id_token",
			"code token id_token",
			"none",
		}, actual.ResponseTypesSupported)
		assert.Equal(t, []string{"public"}, actual.SubjectTypesSupported)
		assert.Equal(t, []string{"RS256"}, actual.IDTokenSigningAlgValuesSupported)
		assert.Equal(t, []string{"openid", "email", "profile"}, actual.ScopesSupported)
		assert.Equal(t, []string{"client_secret_post", "client_secret_basic"}, actual.TokenEndpointAuthMethodsSupported)
		assert.Equal(t, []string{
			"aud",
			"email",
			"email_verified",
			"exp",
			"family_name",
			"given_name",
			"iat",
			"iss",
			"locale",
			"name",
			"picture",
			"sub",
		}, actual.ClaimsSupported)
		assert.Equal(t, []string{"plain", "S256"}, actual.CodeChallengeMethodsSupported)
		assert.Equal(t, []string{
			"authorization_code",
			"refresh_token",
			"urn:ietf:params:oauth:grant-type:device_code",
			"urn:ietf:params:oauth:grant-type:jwt-bearer",
		}, actual.GrantTypesSupported)
		assert.Nil(t, actual.EndSessionEndpoint)
	})

	t.Run("example.okta.com", func(t *testing.T) {
		body, want := readFixture(t, "example.okta.com.json")
		mock := mockfetch.New(t)
		mock.Intercept(http.MethodGet, "https://example.okta.com/.well-known/openid-configuration").
			JSON(http.StatusOK, body)

		actual, err := RetrieveMetadata(context.Background(), "https://example.okta.com", WithTransport(mock))
		require.NoError(t, err)

		assertDocument(t, want, actual.Raw)
		assert.Equal(t, []string{
			"https://example.okta.com",
			"https://example.okta.com/oauth2/v1/authorize",
			"https://example.okta.com/oauth2/v1/token",
			"https://example.okta.com/oauth2/v1/userinfo",
			"https://example.okta.com/oauth2/v1/clients",
			"https://example.okta.com/oauth2/v1/keys",
			"https://example.okta.com/oauth2/v1/revoke",
			"https://example.okta.com/oauth2/v1/logout",
			"https://example.okta.com/oauth2/v1/device/authorize",
		}, urlStrings(
			actual.Issuer,
			actual.AuthorizationEndpoint,
			actual.TokenEndpoint,
			actual.UserinfoEndpoint,
			actual.RegistrationEndpoint,
			actual.JWKSURI,
			actual.RevocationEndpoint,
			actual.EndSessionEndpoint,
			actual.DeviceAuthorizationEndpoint,
		))
		assert.Equal(t, []string{
			"code",
			"id_token",
			"code id_token",
			"code token",
			"id_token token",
			"code id_token token",
		}, actual.ResponseTypesSupported)
		assert.Equal(t, []string{"query", "fragment", "form_post", "okta_post_message"}, actual.ResponseModesSupported)
		assert.Equal(t, []string{
			"authorization_code",
			"implicit",
			"refresh_token",
			"password",
			"urn:ietf:params:oauth:grant-type:device_code",
		}, actual.GrantTypesSupported)
		assert.Equal(t, []string{"public"}, actual.SubjectTypesSupported)
		assert.Equal(t, []string{"RS256"}, actual.IDTokenSigningAlgValuesSupported)
		assert.Equal(t, []string{"openid", "email", "profile", "address", "phone", "offline_access", "groups"}, actual.ScopesSupported)
		authMethods := []string{"client_secret_basic", "client_secret_post", "client_secret_jwt", "private_key_jwt", "none"}
		assert.Equal(t, authMethods, actual.TokenEndpointAuthMethodsSupported)
		assert.Equal(t, authMethods, actual.RevocationEndpointAuthMethodsSupported)
		assert.Len(t, actual.ClaimsSupported, 31)
		assert.Equal(t, "iss", actual.ClaimsSupported[0])
		assert.Equal(t, "c_hash", actual.ClaimsSupported[30])
		assert.Equal(t, []string{"S256"}, actual.CodeChallengeMethodsSupported)
	})

	t.Run("login.microsoftonline.com", func(t *testing.T) {
		body, want := readFixture(t, "login.microsoftonline.com.json")
		mock := mockfetch.New(t)
		mock.Intercept(http.MethodGet, "https://login.microsoftonline.com/common/v2.0/.well-known/openid-configuration").
			JSON(http.StatusOK, body)

		actual, err := RetrieveMetadata(context.Background(), "https://login.microsoftonline.com/common/v2.0",
			WithTransport(mock), WithIssuerOriginOnly(true))
		require.NoError(t, err)

		assertDocument(t, want, actual.Raw)
		assert.Equal(t, []string{
			"https://login.microsoftonline.com/common/oauth2/v2.0/token",
			"https://login.microsoftonline.com/common/discovery/v2.0/keys",
			"https://graph.microsoft.com/oidc/userinfo",
			"https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
			"https://login.microsoftonline.com/common/oauth2/v2.0/devicecode",
			"https://login.microsoftonline.com/common/oauth2/v2.0/logout",
		}, urlStrings(
			actual.TokenEndpoint,
			actual.JWKSURI,
			actual.UserinfoEndpoint,
			actual.AuthorizationEndpoint,
			actual.DeviceAuthorizationEndpoint,
			actual.EndSessionEndpoint,
		))
		assert.Equal(t, "login.microsoftonline.com", actual.Issuer.Host)
		assert.Equal(t, "/{tenantid}/v2.0", actual.Issuer.Path)
		assert.Equal(t, []string{"client_secret_post", "private_key_jwt", "client_secret_basic"}, actual.TokenEndpointAuthMethodsSupported)
		assert.Equal(t, []string{"query", "fragment", "form_post"}, actual.ResponseModesSupported)
		assert.Equal(t, []string{"pairwise"}, actual.SubjectTypesSupported)
		assert.Equal(t, []string{"RS256"}, actual.IDTokenSigningAlgValuesSupported)
		assert.Equal(t, []string{"code", "id_token", "code id_token", "id_token token"}, actual.ResponseTypesSupported)
		assert.Equal(t, []string{"openid", "profile", "email", "offline_access"}, actual.ScopesSupported)
		assert.Len(t, actual.ClaimsSupported, 19)
		assert.Contains(t, actual.ClaimsSupported, "cloud_instance_host_name")
		assert.Nil(t, actual.RevocationEndpoint)
	})

	t.Run("login.microsoftonline.com requires origin only", func(t *testing.T) {
		body, _ := readFixture(t, "login.microsoftonline.com.json")
		mock := mockfetch.New(t)
		mock.Intercept(http.MethodGet, "https://login.microsoftonline.com/common/v2.0/.well-known/openid-configuration").
			JSON(http.StatusOK, body)

		_, err := RetrieveMetadata(context.Background(), "https://login.microsoftonline.com/common/v2.0", WithTransport(mock))
		assert.ErrorIs(t, err, ErrIssuerMismatch)
	})
}

func TestClient_EndToEnd(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                                server.URL,
			"authorization_endpoint":                server.URL + "/auth",
			"token_endpoint":                        server.URL + "/token",
			"jwks_uri":                              server.URL + "/jwks",
			"response_types_supported":              []string{"code"},
			"subject_types_supported":               []string{"public"},
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	}))
	defer server.Close()

	client, err := New(WithHTTPClient(server.Client()))
	require.NoError(t, err)

	metadata, err := client.Metadata(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/token", metadata.TokenEndpoint.String())
	assert.Equal(t, []string{"code"}, metadata.ResponseTypesSupported)

	raw, err := client.RawMetadata(context.Background(), server.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, server.URL, raw[KeyIssuer])

	_, err = client.RawMetadata(context.Background(), server.URL+"/missing")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
