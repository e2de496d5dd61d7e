package dto

import (
	"time"

	"github.com/google/uuid"
)

// ListSchematicsRequest carries the catalog query parsed from the URL.
type ListSchematicsRequest struct {
	Category    string
	Subcategory string
	Tag         string
	Search      string
	Sort        string
	Page        int
	PerPage     int
}

type SchematicAuthor struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatarUrl"`
}

type SchematicListItem struct {
	Id              uuid.UUID        `json:"id"`
	Slug            string           `json:"slug"`
	Title           string           `json:"title"`
	Description     *string          `json:"description"`
	ImageURL        *string          `json:"imageUrl"`
	CategorySlug    string           `json:"categorySlug"`
	SubcategorySlug *string          `json:"subcategorySlug"`
	Author          *SchematicAuthor `json:"author"`
	Tags            []TagResponse    `json:"tags"`
	Views           int64            `json:"views"`
	Downloads       int64            `json:"downloads"`
	Likes           int64            `json:"likes"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type SchematicDetailResponse struct {
	Schematic SchematicDetail `json:"schematic"`
}

type SchematicDetail struct {
	SchematicListItem
	Content *string `json:"content"`
	FileURL *string `json:"fileUrl"`
	IsLiked bool    `json:"isLiked"`
}

type SchematicTranslationInput struct {
	Locale      string  `json:"locale" validate:"required,oneof=ru en"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type CreateSchematicRequest struct {
	CategoryId    uuid.UUID                   `json:"categoryId" validate:"required"`
	SubcategoryId *uuid.UUID                  `json:"subcategoryId"`
	FileURL       *string                     `json:"fileUrl"`
	ImageURL      *string                     `json:"imageUrl"`
	Tags          []string                    `json:"tags" validate:"max=16,dive,min=1,max=64"`
	Translations  []SchematicTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type CreateSchematicResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdateSchematicRequest struct {
	Id            uuid.UUID                   `json:"-"`
	CategoryId    *uuid.UUID                  `json:"categoryId"`
	SubcategoryId *uuid.UUID                  `json:"subcategoryId"`
	FileURL       *string                     `json:"fileUrl"`
	ImageURL      *string                     `json:"imageUrl"`
	Tags          []string                    `json:"tags" validate:"omitempty,max=16,dive,min=1,max=64"`
	Translations  []SchematicTranslationInput `json:"translations" validate:"omitempty,dive"`
}

type LikeResponse struct {
	Success bool  `json:"success"`
	Liked   bool  `json:"liked"`
	Likes   int64 `json:"likes"`
}

type DownloadResponse struct {
	Success   bool    `json:"success"`
	Downloads int64   `json:"downloads"`
	FileURL   *string `json:"fileUrl"`
}
