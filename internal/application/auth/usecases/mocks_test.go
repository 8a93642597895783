package usecases

import (
	"context"

	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ListAdminsFunc    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, email string, admin bool) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(userID uint, email string, admin bool) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, admin)
	}
	return "token", 3600, nil
}

type mockSSOProvider struct {
	AuthURLFunc  func(state string) (string, string, error)
	ExchangeFunc func(ctx context.Context, code, codeVerifier string) (string, error)
	UserInfoFunc func(ctx context.Context, accessToken string) (*SSOUserInfo, error)
}

func (m *mockSSOProvider) AuthURL(state string) (string, string, error) {
	if m.AuthURLFunc != nil {
		return m.AuthURLFunc(state)
	}
	return "https://idp.example.com/auth?state=" + state, "verifier", nil
}

func (m *mockSSOProvider) Exchange(ctx context.Context, code, codeVerifier string) (string, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code, codeVerifier)
	}
	return "access-token", nil
}

func (m *mockSSOProvider) UserInfo(ctx context.Context, accessToken string) (*SSOUserInfo, error) {
	if m.UserInfoFunc != nil {
		return m.UserInfoFunc(ctx, accessToken)
	}
	return nil, nil
}

type mockStateStore struct {
	PutFunc     func(state, verifier string)
	ConsumeFunc func(state string) (string, bool)
}

func (m *mockStateStore) Put(state, verifier string) {
	if m.PutFunc != nil {
		m.PutFunc(state, verifier)
	}
}

func (m *mockStateStore) Consume(state string) (string, bool) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(state)
	}
	return "", false
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
