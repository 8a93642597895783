package user

import "context"

type ListFilter struct {
	External  *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type UserRepository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	ListAdmins(ctx context.Context) ([]*User, error)
}
