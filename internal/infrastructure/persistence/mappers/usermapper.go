package mappers

import (
	"time"

	"pepperminto/internal/domain/user"
	"pepperminto/internal/infrastructure/persistence/models"
)

// UserMapper converts between user domain objects and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(m *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (um *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Admin:        u.IsAdmin(),
		External:     u.IsExternal(),
		Language:     u.Language(),
		SSOSubject:   u.SSOSubject(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (um *UserMapperImpl) ToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Admin,
		m.External,
		m.Language,
		m.SSOSubject,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
}
