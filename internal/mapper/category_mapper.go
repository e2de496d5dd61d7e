package mapper

import (
	"literinth-be/internal/entity"
	"literinth-be/internal/model"
	"literinth-be/internal/pkg/locale"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}

	translations := make([]entity.Translation, len(c.Translations))
	for i, t := range c.Translations {
		translations[i] = entity.Translation{
			Locale:      locale.Locale(t.Locale),
			Name:        t.Name,
			Description: t.Description,
		}
	}

	subcategories := make([]*entity.Subcategory, len(c.Subcategories))
	for i := range c.Subcategories {
		subcategories[i] = m.SubcategoryToEntity(&c.Subcategories[i])
	}

	return &entity.Category{
		Id:            c.Id,
		Slug:          c.Slug,
		Icon:          c.Icon,
		SortOrder:     c.SortOrder,
		VisibleRu:     c.VisibleRu,
		VisibleEn:     c.VisibleEn,
		Translations:  translations,
		Subcategories: subcategories,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}

	return &model.Category{
		Id:        c.Id,
		Slug:      c.Slug,
		Icon:      c.Icon,
		SortOrder: c.SortOrder,
		VisibleRu: c.VisibleRu,
		VisibleEn: c.VisibleEn,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CategoryMapper) SubcategoryToEntity(s *model.Subcategory) *entity.Subcategory {
	if s == nil {
		return nil
	}

	translations := make([]entity.Translation, len(s.Translations))
	for i, t := range s.Translations {
		translations[i] = entity.Translation{
			Locale:      locale.Locale(t.Locale),
			Name:        t.Name,
			Description: t.Description,
		}
	}

	return &entity.Subcategory{
		Id:           s.Id,
		CategoryId:   s.CategoryId,
		Slug:         s.Slug,
		SortOrder:    s.SortOrder,
		VisibleRu:    s.VisibleRu,
		VisibleEn:    s.VisibleEn,
		Translations: translations,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *CategoryMapper) SubcategoryToModel(s *entity.Subcategory) *model.Subcategory {
	if s == nil {
		return nil
	}

	return &model.Subcategory{
		Id:         s.Id,
		CategoryId: s.CategoryId,
		Slug:       s.Slug,
		SortOrder:  s.SortOrder,
		VisibleRu:  s.VisibleRu,
		VisibleEn:  s.VisibleEn,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (m *CategoryMapper) SubcategoriesToEntities(subcategories []*model.Subcategory) []*entity.Subcategory {
	entities := make([]*entity.Subcategory, len(subcategories))
	for i, s := range subcategories {
		entities[i] = m.SubcategoryToEntity(s)
	}
	return entities
}
