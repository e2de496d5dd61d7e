package mapper

import (
	"literinth-be/internal/entity"
	"literinth-be/internal/model"
	"literinth-be/internal/pkg/locale"
)

type SchematicMapper struct {
	userMapper     *UserMapper
	categoryMapper *CategoryMapper
	tagMapper      *TagMapper
}

func NewSchematicMapper() *SchematicMapper {
	return &SchematicMapper{
		userMapper:     NewUserMapper(),
		categoryMapper: NewCategoryMapper(),
		tagMapper:      NewTagMapper(),
	}
}

func (m *SchematicMapper) ToEntity(s *model.Schematic) *entity.Schematic {
	if s == nil {
		return nil
	}

	translations := make([]entity.Translation, len(s.Translations))
	for i, t := range s.Translations {
		translations[i] = entity.Translation{
			Locale:      locale.Locale(t.Locale),
			Name:        t.Title,
			Description: t.Description,
			Content:     t.Content,
		}
	}

	tags := make([]*entity.Tag, len(s.Tags))
	for i := range s.Tags {
		tags[i] = m.tagMapper.ToEntity(&s.Tags[i])
	}

	return &entity.Schematic{
		Id:            s.Id,
		Slug:          s.Slug,
		AuthorId:      s.AuthorId,
		CategoryId:    s.CategoryId,
		SubcategoryId: s.SubcategoryId,
		FileURL:       s.FileURL,
		ImageURL:      s.ImageURL,
		Published:     s.Published,
		VisibleRu:     s.VisibleRu,
		VisibleEn:     s.VisibleEn,
		Views:         s.Views,
		Downloads:     s.Downloads,
		Translations:  translations,
		Tags:          tags,
		Author:        m.userMapper.ToEntity(s.Author),
		Category:      m.categoryMapper.ToEntity(s.Category),
		Subcategory:   m.categoryMapper.SubcategoryToEntity(s.Subcategory),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SchematicMapper) ToModel(s *entity.Schematic) *model.Schematic {
	if s == nil {
		return nil
	}

	return &model.Schematic{
		Id:            s.Id,
		Slug:          s.Slug,
		AuthorId:      s.AuthorId,
		CategoryId:    s.CategoryId,
		SubcategoryId: s.SubcategoryId,
		FileURL:       s.FileURL,
		ImageURL:      s.ImageURL,
		Published:     s.Published,
		VisibleRu:     s.VisibleRu,
		VisibleEn:     s.VisibleEn,
		Views:         s.Views,
		Downloads:     s.Downloads,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (m *SchematicMapper) ToEntities(schematics []*model.Schematic) []*entity.Schematic {
	entities := make([]*entity.Schematic, len(schematics))
	for i, s := range schematics {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SchematicMapper) LikeToEntity(l *model.SchematicLike) *entity.SchematicLike {
	if l == nil {
		return nil
	}

	return &entity.SchematicLike{
		Id:          l.Id,
		UserId:      l.UserId,
		SchematicId: l.SchematicId,
		CreatedAt:   l.CreatedAt,
	}
}
