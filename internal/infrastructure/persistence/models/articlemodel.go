package models

type ArticleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Slug      string `gorm:"uniqueIndex;size:255;not null"`
	AuthorID  uint   `gorm:"not null;index"`
	Tags      string `gorm:"type:json"`
	Body      string `gorm:"type:text"`
	PlainText string `gorm:"type:text"`
	Public    bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleModel) TableName() string {
	return "articles"
}
