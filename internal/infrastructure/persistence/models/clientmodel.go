package models

type ClientModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	ContactName   string `gorm:"size:255"`
	ContactNumber string `gorm:"size:50"`
	Email         string `gorm:"size:255"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}
