package mapper

import (
	"literinth-be/internal/entity"
	"literinth-be/internal/model"
	"literinth-be/internal/pkg/locale"
)

type TagMapper struct{}

func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

func (m *TagMapper) ToEntity(t *model.Tag) *entity.Tag {
	if t == nil {
		return nil
	}

	translations := make([]entity.Translation, len(t.Translations))
	for i, tr := range t.Translations {
		translations[i] = entity.Translation{
			Locale: locale.Locale(tr.Locale),
			Name:   tr.Name,
		}
	}

	return &entity.Tag{
		Id:           t.Id,
		Slug:         t.Slug,
		Translations: translations,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *TagMapper) ToModel(t *entity.Tag) *model.Tag {
	if t == nil {
		return nil
	}

	return &model.Tag{
		Id:        t.Id,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TagMapper) ToEntities(tags []*model.Tag) []*entity.Tag {
	entities := make([]*entity.Tag, len(tags))
	for i, t := range tags {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
