package migration

import (
	"fmt"

	"gorm.io/gorm"

	"pepperminto/internal/shared/logger"
)

// Manager runs schema migrations using GORM AutoMigrate.
type Manager struct {
	logger logger.Interface
}

func NewManager() *Manager {
	return &Manager{
		logger: logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	m.logger.Infow("database migration completed successfully")
	return nil
}
