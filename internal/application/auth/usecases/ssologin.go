package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type SSOLoginResult struct {
	AuthURL string
}

// SSOLoginUseCase starts the identity-provider login flow and hands the
// caller the authorization URL to redirect to.
type SSOLoginUseCase struct {
	provider SSOProvider
	states   StateStore
	logger   logger.Interface
}

func NewSSOLoginUseCase(
	provider SSOProvider,
	states StateStore,
	logger logger.Interface,
) *SSOLoginUseCase {
	return &SSOLoginUseCase{
		provider: provider,
		states:   states,
		logger:   logger,
	}
}

func (uc *SSOLoginUseCase) Execute(ctx context.Context) (*SSOLoginResult, error) {
	state, err := generateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, errors.NewInternalError("failed to start sso login")
	}

	authURL, verifier, err := uc.provider.AuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to build auth url", "error", err)
		return nil, errors.NewInternalError("failed to start sso login")
	}

	uc.states.Put(state, verifier)

	return &SSOLoginResult{AuthURL: authURL}, nil
}

func generateState() (string, error) {
	stateBytes := make([]byte, 24)
	if _, err := rand.Read(stateBytes); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(stateBytes), nil
}
