package usecases

import "context"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, email string, admin bool) (token string, expiresIn int64, err error)
}

// SSOUserInfo is the subset of identity-provider profile data the login flow
// needs.
type SSOUserInfo struct {
	Email         string
	Name          string
	Subject       string
	EmailVerified bool
}

// SSOProvider drives the OAuth authorization code flow against the identity
// provider.
type SSOProvider interface {
	AuthURL(state string) (url, codeVerifier string, err error)
	Exchange(ctx context.Context, code, codeVerifier string) (accessToken string, err error)
	UserInfo(ctx context.Context, accessToken string) (*SSOUserInfo, error)
}

// StateStore round-trips OAuth state between the login redirect and callback.
type StateStore interface {
	Put(state, verifier string)
	Consume(state string) (verifier string, ok bool)
}
