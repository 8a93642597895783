package usecases

import (
	"context"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Admin    bool
	External bool
}

type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to check email")
	}
	if exists {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	newUser, err := uc.buildUser(cmd)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user")
	}

	uc.logger.Infow("user created", "user_id", newUser.ID())

	return dto.ToUserDTO(newUser), nil
}

func (uc *CreateUserUseCase) buildUser(cmd CreateUserCommand) (*user.User, error) {
	if cmd.External {
		newUser, err := user.NewExternalUser(cmd.Name, cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		return newUser, nil
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Admin {
		if err := newUser.PromoteToAdmin(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	return newUser, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if cmd.Name == "" {
		return errors.NewValidationError("name is required")
	}
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if cmd.External && cmd.Admin {
		return errors.NewValidationError("external users cannot be admins")
	}
	if !cmd.External && len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
