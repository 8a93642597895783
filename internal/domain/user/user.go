package user

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	admin        bool
	external     bool
	language     string
	ssoSubject   string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now()

	return &User{
		name:         name,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		language:     "en",
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewExternalUser creates a portal customer account. External users never
// hold admin rights and may be SSO-only (empty password hash).
func NewExternalUser(name, email string) (*User, error) {
	u, err := NewUser(name, email, "")
	if err != nil {
		return nil, err
	}
	u.external = true
	return u, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	admin bool,
	external bool,
	language string,
	ssoSubject string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		admin:        admin,
		external:     external,
		language:     language,
		ssoSubject:   ssoSubject,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.admin
}

func (u *User) IsExternal() bool {
	return u.external
}

func (u *User) Language() string {
	return u.language
}

func (u *User) SSOSubject() string {
	return u.ssoSubject
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(name, email, language string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if err := validateEmail(email); err != nil {
		return err
	}

	u.name = name
	u.email = strings.ToLower(email)
	if language != "" {
		u.language = language
	}
	u.updatedAt = time.Now()

	return nil
}

// PromoteToAdmin grants admin rights. External (portal) accounts can never
// become admins.
func (u *User) PromoteToAdmin() error {
	if u.external {
		return fmt.Errorf("external users cannot be promoted to admin")
	}
	u.admin = true
	u.updatedAt = time.Now()
	return nil
}

func (u *User) DemoteFromAdmin() {
	u.admin = false
	u.updatedAt = time.Now()
}

func (u *User) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) LinkSSO(subject string) error {
	if len(subject) == 0 {
		return fmt.Errorf("SSO subject is required")
	}
	u.ssoSubject = subject
	u.updatedAt = time.Now()
	return nil
}

// HasPassword reports whether local password login is possible.
// SSO-only accounts have no password hash.
func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func validateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
