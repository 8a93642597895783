package usecases

import (
	"context"

	userdto "pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type SSOCallbackCommand struct {
	State string
	Code  string
}

type SSOCallbackResult struct {
	Token     string
	ExpiresIn int64
	User      *userdto.UserDTO
}

// SSOCallbackUseCase completes the identity-provider flow. Accounts that do
// not exist yet are created as external users so requesters can sign in
// without being provisioned first.
type SSOCallbackUseCase struct {
	userRepo user.UserRepository
	provider SSOProvider
	states   StateStore
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewSSOCallbackUseCase(
	userRepo user.UserRepository,
	provider SSOProvider,
	states StateStore,
	tokens TokenIssuer,
	logger logger.Interface,
) *SSOCallbackUseCase {
	return &SSOCallbackUseCase{
		userRepo: userRepo,
		provider: provider,
		states:   states,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *SSOCallbackUseCase) Execute(ctx context.Context, cmd SSOCallbackCommand) (*SSOCallbackResult, error) {
	if cmd.State == "" || cmd.Code == "" {
		return nil, errors.NewValidationError("state and code are required")
	}

	verifier, ok := uc.states.Consume(cmd.State)
	if !ok {
		uc.logger.Warnw("sso callback with unknown or expired state")
		return nil, errors.NewSSOLoginError("invalid or expired login attempt", true)
	}

	accessToken, err := uc.provider.Exchange(ctx, cmd.Code, verifier)
	if err != nil {
		uc.logger.Errorw("failed to exchange sso code", "error", err)
		return nil, errors.NewSSOLoginError("sso login failed", false)
	}

	info, err := uc.provider.UserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to fetch sso user info", "error", err)
		return nil, errors.NewSSOLoginError("sso login failed", false)
	}

	if !info.EmailVerified {
		return nil, errors.NewUnauthorizedError("email address is not verified with the identity provider")
	}

	u, err := uc.findOrCreateUser(ctx, info)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), u.Email(), u.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in via sso", "user_id", u.ID())

	return &SSOCallbackResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      userdto.ToUserDTO(u),
	}, nil
}

func (uc *SSOCallbackUseCase) findOrCreateUser(ctx context.Context, info *SSOUserInfo) (*user.User, error) {
	u, err := uc.userRepo.FindByEmail(ctx, info.Email)
	if err == nil {
		if u.SSOSubject() == "" {
			if err := u.LinkSSO(info.Subject); err != nil {
				return nil, errors.NewInternalError(err.Error())
			}
			if err := uc.userRepo.Update(ctx, u); err != nil {
				uc.logger.Errorw("failed to link sso subject", "user_id", u.ID(), "error", err)
				return nil, errors.NewInternalError("failed to link sso account")
			}
		}
		return u, nil
	}

	newUser, err := user.NewExternalUser(info.Name, info.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := newUser.LinkSSO(info.Subject); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create external user", "email", info.Email, "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	uc.logger.Infow("external user created via sso", "user_id", newUser.ID())
	return newUser, nil
}
