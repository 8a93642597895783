package migration

import (
	"context"
	"fmt"

	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/config"
	"pepperminto/internal/shared/logger"
)

// PasswordHasher hashes seed account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Seeder creates the initial admin account when the users table is empty of it.
type Seeder struct {
	users  user.UserRepository
	hasher PasswordHasher
	logger logger.Interface
}

func NewSeeder(users user.UserRepository, hasher PasswordHasher) *Seeder {
	return &Seeder{
		users:  users,
		hasher: hasher,
		logger: logger.NewLogger().With("component", "migration.seeder"),
	}
}

// SeedAdmin ensures the configured admin account exists. It is safe to run on
// every startup.
func (s *Seeder) SeedAdmin(ctx context.Context, cfg *config.SeedConfig) error {
	exists, err := s.users.ExistsByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		s.logger.Debugw("admin account already present", "email", cfg.AdminEmail)
		return nil
	}

	hash, err := s.hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := user.NewUser(cfg.AdminName, cfg.AdminEmail, hash)
	if err != nil {
		return fmt.Errorf("failed to build admin account: %w", err)
	}
	if err := admin.PromoteToAdmin(); err != nil {
		return err
	}

	if err := s.users.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save admin account: %w", err)
	}

	s.logger.Infow("seeded initial admin account", "email", cfg.AdminEmail)
	return nil
}
