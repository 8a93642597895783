package usecases

import (
	"context"

	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

type ChangePasswordResult struct {
	UserID uint
}

type ChangePasswordUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) (*ChangePasswordResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.NewPassword) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if !u.HasPassword() {
		return nil, errors.NewValidationError("this account has no password to change")
	}

	if err := uc.hasher.Verify(cmd.OldPassword, u.PasswordHash()); err != nil {
		uc.logger.Debugw("password change with wrong current password", "user_id", cmd.UserID)
		return nil, errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	if err := u.ChangePassword(hash); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update password")
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)

	return &ChangePasswordResult{UserID: cmd.UserID}, nil
}
