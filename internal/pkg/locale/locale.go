package locale

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locale is the active display language for a request.
type Locale string

const (
	RU Locale = "ru"
	EN Locale = "en"
)

// Default is returned when nothing in the request selects a language.
const Default = RU

func (l Locale) String() string {
	return string(l)
}

// Parse returns the locale and true when s is exactly "ru" or "en".
func Parse(s string) (Locale, bool) {
	switch s {
	case "ru":
		return RU, true
	case "en":
		return EN, true
	}
	return "", false
}

// Resolve determines the active locale. Priority order:
//  1. explicit "locale" parameter,
//  2. X-Locale header,
//  3. Accept-Language header (first ru/en prefix scanning left to right),
//  4. hard default "ru".
//
// Total: always produces a value, never errors.
func Resolve(explicit, xLocale, acceptLanguage string) Locale {
	if l, ok := Parse(explicit); ok {
		return l
	}
	if l, ok := Parse(xLocale); ok {
		return l
	}

	for _, part := range strings.Split(acceptLanguage, ",") {
		lang := part
		if i := strings.Index(lang, ";"); i >= 0 {
			lang = lang[:i]
		}
		lang = strings.ToLower(strings.TrimSpace(lang))
		if strings.HasPrefix(lang, "ru") {
			return RU
		}
		if strings.HasPrefix(lang, "en") {
			return EN
		}
	}

	return Default
}

// FromCtx resolves the request locale from the query param and headers.
func FromCtx(ctx *fiber.Ctx) Locale {
	return Resolve(ctx.Query("locale"), ctx.Get("X-Locale"), ctx.Get("Accept-Language"))
}
