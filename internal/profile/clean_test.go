package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Run("protects contact tokens through the specials sweep", func(t *testing.T) {
		in := "Reach me at john.doe@example.com or (555) 123-4567. Profile: https://linkedin.com/in/john-doe"
		out := Clean(in)
		assert.Equal(t, "Reach me at john.doe@example.com or (555) 123-4567. Profile https://linkedin.com/in/john-doe", out)
	})

	t.Run("folds diacritics and ligatures", func(t *testing.T) {
		assert.Equal(t, "Resume of Zoe finance", Clean("Résumé of Zoë ﬁnance"))
	})

	t.Run("collapses whitespace and trims", func(t *testing.T) {
		assert.Equal(t, "a b c", Clean("  a\n\nb\tc  "))
	})

	t.Run("drops special characters outside the keep set", func(t *testing.T) {
		assert.Equal(t, "C++ Java Python", Clean("C++ & Java // Python"))
	})

	t.Run("keeps protocol-less linkedin urls intact", func(t *testing.T) {
		out := Clean("find me: www.linkedin.com/in/jane-smith!")
		assert.Contains(t, out, "www.linkedin.com/in/jane-smith")
	})

	t.Run("empty and blank input", func(t *testing.T) {
		assert.Equal(t, "", Clean(""))
		assert.Equal(t, "", Clean("   \n\t "))
	})
}
