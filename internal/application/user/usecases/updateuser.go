package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID   uint
	Name     string
	Email    string
	Language string
	Admin    *bool
}

type UpdateUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := u.UpdateProfile(cmd.Name, cmd.Email, cmd.Language); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Admin != nil {
		if *cmd.Admin {
			if err := u.PromoteToAdmin(); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		} else {
			u.DemoteFromAdmin()
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID)

	return dto.ToUserDTO(u), nil
}
