package user

import (
	"context"

	"pepperminto/internal/application/user/dto"
	"pepperminto/internal/application/user/usecases"
)

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query usecases.GetUserQuery) (*dto.UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteUserCommand) (*usecases.DeleteUserResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) (*usecases.ChangePasswordResult, error)
}
