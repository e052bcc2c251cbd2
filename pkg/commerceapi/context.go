package commerceapi

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Credentials carry the per-call upstream instance and bearer token.
// They are supplied out-of-band from tool arguments, through transport
// headers, and are only checked when a request is about to be made.
type Credentials struct {
	Domain string // Base URL of the commerce instance
	Token  string // Bearer token, with or without the scheme prefix
}

type contextKey int

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// HeaderDomain is the transport header carrying the upstream base URL
	HeaderDomain = "X-Commerce-Domain"

	// HeaderAuthorization is the transport header carrying the bearer token
	HeaderAuthorization = "Authorization"
)

const (
	credentialsKey contextKey = iota
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithCredentials returns a context carrying the per-call credentials
func WithCredentials(ctx context.Context, domain, token string) context.Context {
	return context.WithValue(ctx, credentialsKey, Credentials{
		Domain: domain,
		Token:  token,
	})
}

// CredentialsFromContext returns the per-call credentials, or the zero
// value if none have been set
func CredentialsFromContext(ctx context.Context) Credentials {
	if v, ok := ctx.Value(credentialsKey).(Credentials); ok {
		return v
	}
	return Credentials{}
}
