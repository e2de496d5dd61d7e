package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug         string           `gorm:"type:varchar(128);uniqueIndex;not null"`
	Translations []TagTranslation `gorm:"foreignKey:TagId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

type TagTranslation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TagId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tag_locale"`
	Locale    string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_tag_locale"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TagTranslation) TableName() string {
	return "tag_translations"
}
