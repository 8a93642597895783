package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pepperminto/internal/infrastructure/auth"
	"pepperminto/internal/infrastructure/config"
	"pepperminto/internal/infrastructure/database"
	"pepperminto/internal/infrastructure/migration"
	"pepperminto/internal/infrastructure/repository"
	"pepperminto/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema and seed the initial admin account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			manager := migration.NewManager()
			if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			logger.Info("migration completed")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the initial admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			userRepo := repository.NewUserRepository(database.Get())
			hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
			seeder := migration.NewSeeder(userRepo, hasher)

			if err := seeder.SeedAdmin(context.Background(), &cfg.Seed); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			logger.Info("seeding completed")
			return nil
		},
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}
