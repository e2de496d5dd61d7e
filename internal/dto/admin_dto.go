package dto

import (
	"time"

	"github.com/google/uuid"
)

type TranslationInput struct {
	Locale      string  `json:"locale" validate:"required,oneof=ru en"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

type CreateCategoryRequest struct {
	Slug         string             `json:"slug" validate:"required,min=1,max=128"`
	Icon         *string            `json:"icon"`
	SortOrder    int                `json:"sortOrder"`
	Translations []TranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type UpdateCategoryRequest struct {
	Id           uuid.UUID          `json:"-"`
	Slug         *string            `json:"slug" validate:"omitempty,min=1,max=128"`
	Icon         *string            `json:"icon"`
	SortOrder    *int               `json:"sortOrder"`
	Translations []TranslationInput `json:"translations" validate:"omitempty,dive"`
}

type CreateSubcategoryRequest struct {
	CategoryId   uuid.UUID          `json:"categoryId" validate:"required"`
	Slug         string             `json:"slug" validate:"required,min=1,max=128"`
	SortOrder    int                `json:"sortOrder"`
	Translations []TranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type UpdateVisibilityRequest struct {
	Id        uuid.UUID `json:"-"`
	Published *bool     `json:"published"`
	VisibleRu *bool     `json:"visibleRu"`
	VisibleEn *bool     `json:"visibleEn"`
}

type AdminCategoryResponse struct {
	Id            uuid.UUID               `json:"id"`
	Slug          string                  `json:"slug"`
	Icon          *string                 `json:"icon"`
	SortOrder     int                     `json:"sortOrder"`
	VisibleRu     bool                    `json:"visibleRu"`
	VisibleEn     bool                    `json:"visibleEn"`
	Translations  []TranslationInput      `json:"translations"`
	Subcategories []AdminCategoryResponse `json:"subcategories,omitempty"`
}

type UpsertTranslationsRequest struct {
	Id           uuid.UUID          `json:"-"`
	Translations []TranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type UpsertSchematicTranslationsRequest struct {
	Id           uuid.UUID                   `json:"-"`
	Translations []SchematicTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

// AdminListSchematicsRequest carries the moderation listing query.
type AdminListSchematicsRequest struct {
	Category string
	Search   string
	Page     int
	PerPage  int
}

// AdminSchematicResponse exposes every locale and flag, hidden rows
// included.
type AdminSchematicResponse struct {
	Id            uuid.UUID                   `json:"id"`
	Slug          string                      `json:"slug"`
	AuthorId      uuid.UUID                   `json:"authorId"`
	CategorySlug  string                      `json:"categorySlug"`
	SubcategoryId *uuid.UUID                  `json:"subcategoryId"`
	FileURL       *string                     `json:"fileUrl"`
	ImageURL      *string                     `json:"imageUrl"`
	Published     bool                        `json:"published"`
	VisibleRu     bool                        `json:"visibleRu"`
	VisibleEn     bool                        `json:"visibleEn"`
	Views         int64                       `json:"views"`
	Downloads     int64                       `json:"downloads"`
	Translations  []SchematicTranslationInput `json:"translations"`
	CreatedAt     time.Time                   `json:"createdAt"`
}

type AdminStatsResponse struct {
	Users          int64 `json:"users"`
	Schematics     int64 `json:"schematics"`
	Categories     int64 `json:"categories"`
	TotalViews     int64 `json:"totalViews"`
	TotalDownloads int64 `json:"totalDownloads"`
	TotalLikes     int64 `json:"totalLikes"`
}

type SystemLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	Level     string                 `json:"level"`
	Module    *string                `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details"`
	CreatedAt time.Time              `json:"createdAt"`
}
