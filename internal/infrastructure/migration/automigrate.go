package migration

import (
	"pepperminto/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ClientModel{},
		&models.TicketModel{},
		&models.MailboxModel{},
		&models.ArticleModel{},
		&models.NotificationModel{},
	}
}
