package model

import (
	"time"

	"github.com/google/uuid"
)

type Schematic struct {
	Id            uuid.UUID              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug          string                 `gorm:"type:varchar(160);uniqueIndex;not null"`
	AuthorId      uuid.UUID              `gorm:"type:uuid;not null;index"`
	CategoryId    uuid.UUID              `gorm:"type:uuid;not null;index"`
	SubcategoryId *uuid.UUID             `gorm:"type:uuid;index"`
	FileURL       *string                `gorm:"type:text"`
	ImageURL      *string                `gorm:"type:text"`
	Published     bool                   `gorm:"not null;default:true"`
	VisibleRu     bool                   `gorm:"not null;default:true"`
	VisibleEn     bool                   `gorm:"not null;default:true"`
	Views         int64                  `gorm:"not null;default:0"`
	Downloads     int64                  `gorm:"not null;default:0"`
	Author        *User                  `gorm:"foreignKey:AuthorId"`
	Category      *Category              `gorm:"foreignKey:CategoryId"`
	Subcategory   *Subcategory           `gorm:"foreignKey:SubcategoryId"`
	Translations  []SchematicTranslation `gorm:"foreignKey:SchematicId;constraint:OnDelete:CASCADE"`
	Tags          []Tag                  `gorm:"many2many:schematic_tags;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time              `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time              `gorm:"autoUpdateTime"`
}

func (Schematic) TableName() string {
	return "schematics"
}

type SchematicTranslation struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchematicId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schematic_locale"`
	Locale      string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_schematic_locale"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Content     *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (SchematicTranslation) TableName() string {
	return "schematic_translations"
}

type SchematicLike struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_schematic"`
	SchematicId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_user_schematic;index"`
	User        *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (SchematicLike) TableName() string {
	return "schematic_likes"
}
