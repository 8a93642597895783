package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
	// ActorID is the admin performing the deletion. Self-deletion is
	// rejected so an instance cannot lose its last admin by accident.
	ActorID uint
}

type DeleteUserResult struct {
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return nil, errors.NewValidationError("you cannot delete your own account")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)

	return &DeleteUserResult{UserID: cmd.UserID}, nil
}
