/*
Package oidc implements the network leaf of OIDC discovery.

It builds the well-known metadata URL for an issuer and performs the single
GET that retrieves the provider metadata document:

	https://issuer.example.com/tenant/.well-known/openid-configuration

The document is returned as an untyped JSON object. This package does not
interpret any of its properties; issuer validation and type conversion live
in the root discovery package.

# Errors

FetchDocument reports each failure with a distinct type so callers can map
them without string matching:

  - errors returned by the Doer (network, TLS, context cancellation) are
    returned as they are
  - *StatusError for any status other than 200
  - *BodyTooLargeError when the body exceeds the size limit
  - *DecodeError when the body is not valid JSON
  - ErrNotAnObject when the body is JSON but not an object

# Specification

OpenID Connect Discovery 1.0, section 4:
https://openid.net/specs/openid-connect-discovery-1_0.html#ProviderConfig
*/
package oidc
