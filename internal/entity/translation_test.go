package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"literinth-be/internal/pkg/locale"
)

func strPtr(s string) *string { return &s }

func TestCategoryNameFallsBackToSlug(t *testing.T) {
	c := &Category{
		Slug: "redstone",
		Translations: []Translation{
			{Locale: locale.RU, Name: "Редстоун"},
		},
	}

	assert.Equal(t, "Редстоун", c.NameIn(locale.RU))
	assert.Equal(t, "redstone", c.NameIn(locale.EN))
}

func TestCategoryEmptyNameFallsBackToSlug(t *testing.T) {
	c := &Category{
		Slug: "farms",
		Translations: []Translation{
			{Locale: locale.EN, Name: ""},
		},
	}

	assert.Equal(t, "farms", c.NameIn(locale.EN))
}

func TestDescriptionIsNilWhenUntranslated(t *testing.T) {
	c := &Category{
		Slug: "builds",
		Translations: []Translation{
			{Locale: locale.RU, Name: "Постройки", Description: strPtr("Дома и замки")},
		},
	}

	assert.Equal(t, "Дома и замки", *c.DescriptionIn(locale.RU))
	assert.Nil(t, c.DescriptionIn(locale.EN))
}

func TestSchematicTitleAndContentProjection(t *testing.T) {
	s := &Schematic{
		Slug: "iron-farm-mk2",
		Translations: []Translation{
			{Locale: locale.EN, Name: "Iron Farm Mk2", Content: strPtr("Layer by layer guide")},
		},
	}

	assert.Equal(t, "Iron Farm Mk2", s.TitleIn(locale.EN))
	assert.Equal(t, "iron-farm-mk2", s.TitleIn(locale.RU))
	assert.Equal(t, "Layer by layer guide", *s.ContentIn(locale.EN))
	assert.Nil(t, s.ContentIn(locale.RU))
}

func TestVisibleInSelectsLocaleFlag(t *testing.T) {
	s := &Schematic{VisibleRu: true, VisibleEn: false}

	assert.True(t, s.VisibleIn(locale.RU))
	assert.False(t, s.VisibleIn(locale.EN))
}
