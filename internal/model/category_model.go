package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id            uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug          string                `gorm:"type:varchar(128);uniqueIndex;not null"`
	Icon          *string               `gorm:"type:varchar(128)"`
	SortOrder     int                   `gorm:"not null;default:0"`
	VisibleRu     bool                  `gorm:"not null;default:true"`
	VisibleEn     bool                  `gorm:"not null;default:true"`
	Translations  []CategoryTranslation `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	Subcategories []Subcategory         `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time             `gorm:"autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type CategoryTranslation struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_category_locale"`
	Locale      string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_category_locale"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CategoryTranslation) TableName() string {
	return "category_translations"
}
