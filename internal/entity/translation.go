package entity

import "literinth-be/internal/pkg/locale"

// Translation is the per-locale projection shared by every translatable
// catalog record.
type Translation struct {
	Locale      locale.Locale
	Name        string
	Description *string
	Content     *string
}

// pickTranslation returns the translation for the requested locale, or
// nil when the record was never translated into it.
func pickTranslation(translations []Translation, loc locale.Locale) *Translation {
	for i := range translations {
		if translations[i].Locale == loc {
			return &translations[i]
		}
	}
	return nil
}

// nameOrSlug projects the display name for a locale: the translated
// name when present and non-empty, the slug otherwise.
func nameOrSlug(translations []Translation, loc locale.Locale, slug string) string {
	if t := pickTranslation(translations, loc); t != nil && t.Name != "" {
		return t.Name
	}
	return slug
}

func descriptionIn(translations []Translation, loc locale.Locale) *string {
	if t := pickTranslation(translations, loc); t != nil {
		return t.Description
	}
	return nil
}

func contentIn(translations []Translation, loc locale.Locale) *string {
	if t := pickTranslation(translations, loc); t != nil {
		return t.Content
	}
	return nil
}
