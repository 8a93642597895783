package usecases

import (
	"context"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

// dummyHash is compared against when the account does not exist, so a failed
// login takes the same time either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      *dto.UserDTO
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		_ = uc.hasher.Verify(cmd.Password, dummyHash)
		uc.logger.Debugw("login attempt for unknown account", "email", cmd.Email)
		return nil, errors.NewInvalidCredentialsError()
	}

	if !u.HasPassword() {
		_ = uc.hasher.Verify(cmd.Password, dummyHash)
		uc.logger.Debugw("login attempt for passwordless account", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Debugw("login attempt with wrong password", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), u.Email(), u.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.ToUserDTO(u),
	}, nil
}
