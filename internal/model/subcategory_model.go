package model

import (
	"time"

	"github.com/google/uuid"
)

type Subcategory struct {
	Id           uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId   uuid.UUID                `gorm:"type:uuid;not null;index"`
	Slug         string                   `gorm:"type:varchar(128);not null;uniqueIndex"`
	SortOrder    int                      `gorm:"not null;default:0"`
	VisibleRu    bool                     `gorm:"not null;default:true"`
	VisibleEn    bool                     `gorm:"not null;default:true"`
	Translations []SubcategoryTranslation `gorm:"foreignKey:SubcategoryId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                `gorm:"autoUpdateTime"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}

type SubcategoryTranslation struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubcategoryId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subcategory_locale"`
	Locale        string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_subcategory_locale"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (SubcategoryTranslation) TableName() string {
	return "subcategory_translations"
}
