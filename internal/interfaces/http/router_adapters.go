package http

import (
	"context"

	authusecases "pepperminto/internal/application/auth/usecases"

	"pepperminto/internal/infrastructure/auth"
)

// ssoProviderAdapter bridges the Google OAuth client to the application
// layer's provider interface.
type ssoProviderAdapter struct {
	client *auth.GoogleOAuthClient
}

func (a *ssoProviderAdapter) AuthURL(state string) (string, string, error) {
	return a.client.GetAuthURL(state)
}

func (a *ssoProviderAdapter) Exchange(ctx context.Context, code, codeVerifier string) (string, error) {
	return a.client.ExchangeCode(ctx, code, codeVerifier)
}

func (a *ssoProviderAdapter) UserInfo(ctx context.Context, accessToken string) (*authusecases.SSOUserInfo, error) {
	info, err := a.client.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &authusecases.SSOUserInfo{
		Email:         info.Email,
		Name:          info.Name,
		Subject:       info.Subject,
		EmailVerified: info.EmailVerified,
	}, nil
}
