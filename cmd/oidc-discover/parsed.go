package main

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	discovery "github.com/auth0/go-oidc-discovery"
)

// parsedView is the printable form of discovery.ProviderMetadata.
type parsedView struct {
	Issuer                                 string   `json:"issuer"`
	AuthorizationEndpoint                  string   `json:"authorization_endpoint"`
	TokenEndpoint                          string   `json:"token_endpoint"`
	JWKSURI                                string   `json:"jwks_uri"`
	ResponseTypesSupported                 []string `json:"response_types_supported"`
	SubjectTypesSupported                  []string `json:"subject_types_supported"`
	IDTokenSigningAlgValuesSupported       []string `json:"id_token_signing_alg_values_supported"`
	UserinfoEndpoint                       string   `json:"userinfo_endpoint,omitempty"`
	RegistrationEndpoint                   string   `json:"registration_endpoint,omitempty"`
	ScopesSupported                        []string `json:"scopes_supported,omitempty"`
	ResponseModesSupported                 []string `json:"response_modes_supported,omitempty"`
	GrantTypesSupported                    []string `json:"grant_types_supported,omitempty"`
	ClaimsSupported                        []string `json:"claims_supported,omitempty"`
	TokenEndpointAuthMethodsSupported      []string `json:"token_endpoint_auth_methods_supported,omitempty"`
	CheckSessionIframe                     string   `json:"check_session_iframe,omitempty"`
	EndSessionEndpoint                     string   `json:"end_session_endpoint,omitempty"`
	CodeChallengeMethodsSupported          []string `json:"code_challenge_methods_supported,omitempty"`
	DeviceAuthorizationEndpoint            string   `json:"device_authorization_endpoint,omitempty"`
	RevocationEndpoint                     string   `json:"revocation_endpoint,omitempty"`
	RevocationEndpointAuthMethodsSupported []string `json:"revocation_endpoint_auth_methods_supported,omitempty"`
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

func newParsedView(m *discovery.ProviderMetadata) parsedView {
	return parsedView{
		Issuer:                                 urlString(m.Issuer),
		AuthorizationEndpoint:                  urlString(m.AuthorizationEndpoint),
		TokenEndpoint:                          urlString(m.TokenEndpoint),
		JWKSURI:                                urlString(m.JWKSURI),
		ResponseTypesSupported:                 m.ResponseTypesSupported,
		SubjectTypesSupported:                  m.SubjectTypesSupported,
		IDTokenSigningAlgValuesSupported:       m.IDTokenSigningAlgValuesSupported,
		UserinfoEndpoint:                       urlString(m.UserinfoEndpoint),
		RegistrationEndpoint:                   urlString(m.RegistrationEndpoint),
		ScopesSupported:                        m.ScopesSupported,
		ResponseModesSupported:                 m.ResponseModesSupported,
		GrantTypesSupported:                    m.GrantTypesSupported,
		ClaimsSupported:                        m.ClaimsSupported,
		TokenEndpointAuthMethodsSupported:      m.TokenEndpointAuthMethodsSupported,
		CheckSessionIframe:                     urlString(m.CheckSessionIframe),
		EndSessionEndpoint:                     urlString(m.EndSessionEndpoint),
		CodeChallengeMethodsSupported:          m.CodeChallengeMethodsSupported,
		DeviceAuthorizationEndpoint:            urlString(m.DeviceAuthorizationEndpoint),
		RevocationEndpoint:                     urlString(m.RevocationEndpoint),
		RevocationEndpointAuthMethodsSupported: m.RevocationEndpointAuthMethodsSupported,
	}
}

func newParsedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parsed <issuer>...",
		Short: "Prints the validated metadata",
		Long: `This will fetch the metadata document of every issuer, validate the
issuer and the mandatory properties and print the typed view.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd.Context(), args, func(ctx context.Context, issuer string) error {
				ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
				defer cancel()

				metadata, err := a.client.Metadata(ctx, issuer)
				if err != nil {
					return err
				}
				return writeJSON(cmd, newParsedView(metadata))
			})
		},
	}
}
