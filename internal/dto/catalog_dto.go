package dto

import (
	"github.com/google/uuid"
)

type SubcategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	SortOrder   int       `json:"sortOrder"`
}

type CategoryResponse struct {
	Id            uuid.UUID             `json:"id"`
	Slug          string                `json:"slug"`
	Icon          *string               `json:"icon"`
	Name          string                `json:"name"`
	Description   *string               `json:"description"`
	SortOrder     int                   `json:"sortOrder"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CategoryDetailResponse struct {
	Category CategoryResponse `json:"category"`
}

type TagResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

type TagsResponse struct {
	Tags []TagResponse `json:"tags"`
}
