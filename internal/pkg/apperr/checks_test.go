package apperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationChecks(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		v := NewValidation()
		assert.False(t, v.Required("name", "  "))
		assert.True(t, v.Required("email", "a@b.co"))
		assert.Equal(t, "name is required", v.Fields["name"])
		assert.NotContains(t, v.Fields, "email")
	})

	t.Run("lengths", func(t *testing.T) {
		v := NewValidation()
		assert.False(t, v.MaxLen("title", "abcdef", 5))
		assert.False(t, v.MinLen("password", "abc", 6))
		assert.True(t, v.MaxLen("ok", "ünï", 3))
		assert.Len(t, v.Fields, 2)
	})

	t.Run("email", func(t *testing.T) {
		cases := map[string]bool{
			"agent@example.com":        true,
			"not-an-email":             false,
			"Name <agent@example.com>": false,
			"":                         false,
		}
		for in, want := range cases {
			v := NewValidation()
			assert.Equal(t, want, v.Email("email", in), in)
		}
	})

	t.Run("check", func(t *testing.T) {
		v := NewValidation()
		v.Check(false, "rating", "rating must be between 1 and 5")
		assert.Equal(t, "rating must be between 1 and 5", v.Fields["rating"])
	})
}
