package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	TicketID  *uint  `gorm:"index"`
	Text      string `gorm:"size:512;not null"`
	Read      bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
