package domain

import "context"

// Identity is the authenticated account as reported by the hosted auth
// provider. It is distinct from the Merchant profile that may own it.
type Identity struct {
	UserID        string
	Email         string
	EmailVerified bool
}

// ProviderAccount is the raw result of a provider sign-up or sign-in,
// including the provider-issued token needed for follow-up calls.
type ProviderAccount struct {
	UserID        string
	Email         string
	EmailVerified bool
	IDToken       string
}

// IdentityProvider is the hosted auth provider boundary. Implementations
// translate known provider error codes into domain errors and pass
// unrecognized provider errors through wrapped.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*ProviderAccount, error)
	SignIn(ctx context.Context, email, password string) (*ProviderAccount, error)
	SendVerificationEmail(ctx context.Context, idToken string) error
	Lookup(ctx context.Context, idToken string) (*Identity, error)
}
