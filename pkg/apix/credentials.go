package apix

import "context"

// CredentialSource supplies the bearer credential attached to outgoing
// requests. Returning an empty token with a nil error means "no credential
// available"; the request is then sent unauthenticated.
//
// The two-tier device-token/access-token fallback lives behind this
// interface so tests can substitute either credential deterministically.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticCredentials is a CredentialSource returning a fixed token. Used in
// tests and one-off tooling.
type StaticCredentials string

func (s StaticCredentials) Token(context.Context) (string, error) {
	return string(s), nil
}
