package discovery

import "net/url"

// Wire names of the provider metadata properties, as defined by
// OpenID Connect Discovery 1.0 section 3 and the extensions commonly
// published by Google, Okta and Microsoft.
const (
	KeyIssuer                                 = "issuer"
	KeyAuthorizationEndpoint                  = "authorization_endpoint"
	KeyTokenEndpoint                          = "token_endpoint"
	KeyUserinfoEndpoint                       = "userinfo_endpoint"
	KeyJWKSURI                                = "jwks_uri"
	KeyRegistrationEndpoint                   = "registration_endpoint"
	KeyScopesSupported                        = "scopes_supported"
	KeyResponseTypesSupported                 = "response_types_supported"
	KeyResponseModesSupported                 = "response_modes_supported"
	KeyGrantTypesSupported                    = "grant_types_supported"
	KeyACRValuesSupported                     = "acr_values_supported"
	KeySubjectTypesSupported                  = "subject_types_supported"
	KeyIDTokenSigningAlgValuesSupported       = "id_token_signing_alg_values_supported"
	KeyIDTokenEncryptionAlgValuesSupported    = "id_token_encryption_alg_values_supported"
	KeyIDTokenEncryptionEncValuesSupported    = "id_token_encryption_enc_values_supported"
	KeyUserinfoSigningAlgValuesSupported      = "userinfo_signing_alg_values_supported"
	KeyUserinfoEncryptionAlgValuesSupported   = "userinfo_encryption_alg_values_supported"
	KeyUserinfoEncryptionEncValuesSupported   = "userinfo_encryption_enc_values_supported"
	KeyRequestObjectSigningAlgValuesSupported = "request_object_signing_alg_values_supported"
	KeyRequestObjectEncryptionAlgValues       = "request_object_encryption_alg_values_supported"
	KeyRequestObjectEncryptionEncValues       = "request_object_encryption_enc_values_supported"
	KeyTokenEndpointAuthMethodsSupported      = "token_endpoint_auth_methods_supported"
	KeyTokenEndpointAuthSigningAlgValues      = "token_endpoint_auth_signing_alg_values_supported"
	KeyDisplayValuesSupported                 = "display_values_supported"
	KeyClaimTypesSupported                    = "claim_types_supported"
	KeyClaimsSupported                        = "claims_supported"
	KeyServiceDocumentation                   = "service_documentation"
	KeyClaimsLocalesSupported                 = "claims_locales_supported"
	KeyUILocalesSupported                     = "ui_locales_supported"
	KeyClaimsParameterSupported               = "claims_parameter_supported"
	KeyRequestParameterSupported              = "request_parameter_supported"
	KeyRequestURIParameterSupported           = "request_uri_parameter_supported"
	KeyRequireRequestURIRegistration          = "require_request_uri_registration"
	KeyOPPolicyURI                            = "op_policy_uri"
	KeyOPTosURI                               = "op_tos_uri"

	KeyCheckSessionIframe                     = "check_session_iframe"
	KeyEndSessionEndpoint                     = "end_session_endpoint"
	KeyCodeChallengeMethodsSupported          = "code_challenge_methods_supported"
	KeyDeviceAuthorizationEndpoint            = "device_authorization_endpoint"
	KeyIntrospectionEndpoint                  = "introspection_endpoint"
	KeyIntrospectionEndpointAuthMethods       = "introspection_endpoint_auth_methods_supported"
	KeyRevocationEndpoint                     = "revocation_endpoint"
	KeyRevocationEndpointAuthMethodsSupported = "revocation_endpoint_auth_methods_supported"
	KeyFrontchannelLogoutSupported            = "frontchannel_logout_supported"
	KeyHTTPLogoutSupported                    = "http_logout_supported"

	// Microsoft specific
	KeyKerberosEndpoint   = "kerberos_endpoint"
	KeyTenantRegionScope  = "tenant_region_scope"
	KeyCloudInstanceName  = "cloud_instance_name"
	KeyCloudGraphHostName = "cloud_graph_host_name"
	KeyMSGraphHost        = "msgraph_host"
	KeyRBACURL            = "rbac_url"
)

// RawMetadata is the provider metadata document exactly as the provider
// returned it, keyed by wire name. Values are whatever the JSON decoder
// produced: string, bool, float64, nil, []any or map[string]any.
type RawMetadata map[string]any

// Has reports whether key is present, even with a JSON null value.
func (m RawMetadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// String returns the value of key if it is a string.
func (m RawMetadata) String(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// Bool returns the value of key if it is a boolean.
func (m RawMetadata) Bool(key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}

// Strings returns a copy of the value of key if it is an array holding only
// strings.
func (m RawMetadata) Strings(key string) ([]string, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	s, _, err := toStrings(v)
	if err != nil {
		return nil, false
	}
	return s, true
}

// ProviderMetadata is validated and converted provider metadata.
//
// Mandatory properties are always set. Optional URL properties are nil and
// optional array properties are nil when the provider did not publish them;
// a published empty array is a non-nil empty slice.
type ProviderMetadata struct {
	// Issuer is the provider's issuer URL.
	Issuer *url.URL

	// AuthorizationEndpoint is the URL of the OAuth 2.0 authorization endpoint.
	AuthorizationEndpoint *url.URL

	// TokenEndpoint is the URL of the OAuth 2.0 token endpoint.
	TokenEndpoint *url.URL

	// JWKSURI is the URL of the provider's JSON Web Key Set document.
	JWKSURI *url.URL

	// ResponseTypesSupported lists the OAuth 2.0 response_type values.
	ResponseTypesSupported []string

	// SubjectTypesSupported lists the subject identifier types.
	SubjectTypesSupported []string

	// IDTokenSigningAlgValuesSupported lists the JWS alg values for ID tokens.
	IDTokenSigningAlgValuesSupported []string

	UserinfoEndpoint     *url.URL
	RegistrationEndpoint *url.URL

	ScopesSupported                   []string
	ResponseModesSupported            []string
	GrantTypesSupported               []string
	ClaimsSupported                   []string
	TokenEndpointAuthMethodsSupported []string

	// CheckSessionIframe is the OP iframe for session state (Session Management 1.0).
	CheckSessionIframe *url.URL

	// EndSessionEndpoint is where users are redirected to end their session.
	EndSessionEndpoint *url.URL

	// CodeChallengeMethodsSupported lists PKCE methods.
	CodeChallengeMethodsSupported []string

	// DeviceAuthorizationEndpoint is published by Google, Okta and Microsoft.
	DeviceAuthorizationEndpoint *url.URL

	// RevocationEndpoint is published by Google and Okta.
	RevocationEndpoint *url.URL

	// RevocationEndpointAuthMethodsSupported is published by Okta.
	RevocationEndpointAuthMethodsSupported []string

	// Raw is the complete metadata document, including properties that are
	// not converted above.
	Raw RawMetadata
}
