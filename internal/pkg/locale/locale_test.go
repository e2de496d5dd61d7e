package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExplicitParamWins(t *testing.T) {
	assert.Equal(t, EN, Resolve("en", "ru", "ru-RU"))
	assert.Equal(t, RU, Resolve("ru", "en", "en-US"))
}

func TestResolveXLocaleBeatsAcceptLanguage(t *testing.T) {
	assert.Equal(t, RU, Resolve("", "ru", "en-US,en;q=0.9"))
	assert.Equal(t, EN, Resolve("", "en", "ru-RU,ru;q=0.9"))
}

func TestResolveAcceptLanguage(t *testing.T) {
	assert.Equal(t, EN, Resolve("", "", "en-US,en;q=0.9"))
	assert.Equal(t, RU, Resolve("", "", "ru-RU,ru;q=0.9,en;q=0.8"))

	// First recognizable entry wins, scanning left to right.
	assert.Equal(t, EN, Resolve("", "", "de-DE,en;q=0.7,ru;q=0.3"))
	assert.Equal(t, RU, Resolve("", "", "fr-FR, RU-ru ;q=0.5"))
}

func TestResolveDefaults(t *testing.T) {
	assert.Equal(t, RU, Resolve("", "", ""))
	assert.Equal(t, RU, Resolve("de", "fr", "ja-JP,zh;q=0.9"))
	assert.Equal(t, RU, Resolve("RU", "", "")) // explicit param must match exactly
}

func TestResolveIsTotal(t *testing.T) {
	inputs := []string{"", "ru", "en", "EN", "es", "en-US", "garbage;;,"}
	for _, a := range inputs {
		for _, b := range inputs {
			for _, c := range inputs {
				got := Resolve(a, b, c)
				assert.Contains(t, []Locale{RU, EN}, got)
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, in := range []string{"RU", "En", " en", "ruu", ""} {
		_, ok := Parse(in)
		assert.False(t, ok, in)
	}
}
