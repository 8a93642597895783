package models

type MailboxModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	ServiceType  string `gorm:"size:20;not null;index"`
	Username     string `gorm:"size:255"`
	Password     string `gorm:"size:255"`
	Hostname     string `gorm:"size:255"`
	TLS          bool   `gorm:"not null;default:true"`
	ClientID     string `gorm:"size:255"`
	ClientSecret string `gorm:"size:255"`
	RedirectURI  string `gorm:"size:512"`
	AccessToken  string `gorm:"type:text"`
	RefreshToken string `gorm:"type:text"`
	TokenExpiry  *int64
	LastSeenUID  uint32 `gorm:"not null;default:0"`
	Active       bool   `gorm:"not null;default:false;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MailboxModel) TableName() string {
	return "email_queues"
}
