package auth

import (
	"context"

	userdto "pepperminto/internal/application/user/dto"

	"pepperminto/internal/application/auth/usecases"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type SSOLoginExecutor interface {
	Execute(ctx context.Context) (*usecases.SSOLoginResult, error)
}

type SSOCallbackExecutor interface {
	Execute(ctx context.Context, cmd usecases.SSOCallbackCommand) (*usecases.SSOCallbackResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query usecases.GetProfileQuery) (*userdto.UserDTO, error)
}
