package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", query.UserID))
	}

	return dto.ToUserDTO(u), nil
}
