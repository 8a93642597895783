package models

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	Title           string  `gorm:"size:255;not null"`
	Name            string  `gorm:"size:255"`
	Email           string  `gorm:"size:255"`
	Detail          string  `gorm:"type:text"`
	Priority        string  `gorm:"size:20;not null;index"`
	Type            string  `gorm:"size:30;not null;index"`
	Status          string  `gorm:"size:20;not null;index"`
	ClientID        *uint   `gorm:"index"`
	AssigneeID      *uint   `gorm:"index"`
	CreatedByID     *uint   `gorm:"index"`
	FromEmailQueue  string  `gorm:"size:255;index"`
	SourceMessageID *string `gorm:"uniqueIndex;size:512"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
