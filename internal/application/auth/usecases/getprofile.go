package usecases

import (
	"context"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.ToUserDTO(u), nil
}
