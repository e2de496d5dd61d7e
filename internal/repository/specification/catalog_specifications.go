package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"literinth-be/internal/pkg/locale"
)

// PublishedOnly keeps schematics visible to the public catalog.
type PublishedOnly struct{}

func (s PublishedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("schematics.published = ?", true)
}

// VisibleIn keeps rows whose per-locale visibility flag is set.
type VisibleIn struct {
	Locale locale.Locale
}

func (s VisibleIn) Apply(db *gorm.DB) *gorm.DB {
	if s.Locale == locale.EN {
		return db.Where("schematics.visible_en = ?", true)
	}
	return db.Where("schematics.visible_ru = ?", true)
}

// ByCategorySlug joins to categories and filters by the category slug.
type ByCategorySlug struct {
	Slug string
}

func (s ByCategorySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN categories ON categories.id = schematics.category_id").
		Where("categories.slug = ?", s.Slug)
}

// BySubcategorySlug joins to subcategories and filters by the subcategory slug.
type BySubcategorySlug struct {
	Slug string
}

func (s BySubcategorySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN subcategories ON subcategories.id = schematics.subcategory_id").
		Where("subcategories.slug = ?", s.Slug)
}

// ByTagSlug keeps schematics carrying the tag.
type ByTagSlug struct {
	Slug string
}

func (s ByTagSlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM schematic_tags st JOIN tags ON tags.id = st.tag_id WHERE st.schematic_id = schematics.id AND tags.slug = ?)",
		s.Slug,
	)
}

// ByAuthor filters by the uploading user.
type ByAuthor struct {
	AuthorID uuid.UUID
}

func (s ByAuthor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("schematics.author_id = ?", s.AuthorID)
}

// SearchInLocale matches the query against the requested locale's title
// and description, falling back to the slug so untranslated records
// stay findable.
type SearchInLocale struct {
	Query  string
	Locale locale.Locale
}

func (s SearchInLocale) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where(
		"(schematics.slug ILIKE ? OR EXISTS (SELECT 1 FROM schematic_translations tr WHERE tr.schematic_id = schematics.id AND tr.locale = ? AND (tr.title ILIKE ? OR tr.description ILIKE ?)))",
		pattern, string(s.Locale), pattern, pattern,
	)
}

// SearchAllLocales is the moderation variant: it scans every locale's
// translation, not just the active one.
type SearchAllLocales struct {
	Query string
}

func (s SearchAllLocales) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where(
		"(schematics.slug ILIKE ? OR EXISTS (SELECT 1 FROM schematic_translations tr WHERE tr.schematic_id = schematics.id AND (tr.title ILIKE ? OR tr.description ILIKE ?)))",
		pattern, pattern, pattern,
	)
}

// OrderByLikeCount sorts by the number of likes a schematic has received.
type OrderByLikeCount struct {
	Desc bool
}

func (s OrderByLikeCount) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order("(SELECT COUNT(*) FROM schematic_likes sl WHERE sl.schematic_id = schematics.id) " + direction)
}
