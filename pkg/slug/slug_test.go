package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Interiores-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Sofá Nórdico":             "sofa-nordico",
		"  Cocina   moderna 2030 ": "cocina-moderna-2030",
		"Living-Room / Ideas!":     "living-room-ideas",
		"Ñandú":                    "nandu",
		"":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada %q", in)
	}
}
