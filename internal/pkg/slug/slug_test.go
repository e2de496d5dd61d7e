package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Iron Farm Mk2", "iron-farm-mk2"},
		{"  Trim   me  ", "trim-me"},
		{"Автоматическая ферма железа", "avtomaticheskaya-ferma-zheleza"},
		{"Щит & меч!", "schit-mech"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
		{"Подъезд", "podezd"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Make(c.in), "input: %q", c.in)
	}
}
