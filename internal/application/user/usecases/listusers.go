package usecases

import (
	"context"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListUsersQuery struct {
	External  *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListUsersResult struct {
	Users []*dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		External:  query.External,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{
		Users: dto.ToUserDTOs(users),
		Total: total,
	}, nil
}
