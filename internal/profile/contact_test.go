package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact(t *testing.T) {
	t.Run("email takes the first match", func(t *testing.T) {
		c := ExtractContact("primary alice.smith+jobs@example.co.uk backup bob@example.com")
		assert.Equal(t, "alice.smith+jobs@example.co.uk", c.Email)
	})

	t.Run("phone patterns are first-pattern-wins", func(t *testing.T) {
		c := ExtractContact("Call +44 20 7946 0958 or (555) 123-4567")
		assert.Equal(t, "+44 20 7946 0958", c.Phone)
	})

	t.Run("us format with parentheses", func(t *testing.T) {
		c := ExtractContact("Phone: (555) 123-4567")
		assert.Equal(t, "(555) 123-4567", c.Phone)
	})

	t.Run("bare ten digit number", func(t *testing.T) {
		c := ExtractContact("reach me on 5551234567 anytime")
		assert.Equal(t, "5551234567", c.Phone)
	})

	t.Run("phone whitespace is normalized", func(t *testing.T) {
		c := ExtractContact("tel +1\t555 123 4567")
		assert.Equal(t, "+1 555 123 4567", c.Phone)
	})

	t.Run("full linkedin url", func(t *testing.T) {
		c := ExtractContact("see https://www.linkedin.com/in/jane-smith today")
		assert.Equal(t, "https://www.linkedin.com/in/jane-smith", c.LinkedIn)
	})

	t.Run("protocol-less linkedin url gets https prefix", func(t *testing.T) {
		c := ExtractContact("profile www.linkedin.com/in/jane-smith")
		assert.Equal(t, "https://www.linkedin.com/in/jane-smith", c.LinkedIn)
	})

	t.Run("pub profiles are recognized", func(t *testing.T) {
		c := ExtractContact("profile linkedin.com/pub/jane-smith")
		assert.Equal(t, "https://linkedin.com/pub/jane-smith", c.LinkedIn)
	})

	t.Run("nothing found leaves the zero value", func(t *testing.T) {
		c := ExtractContact("a resume with no contact details at all")
		assert.Equal(t, Contact{}, c)
	})
}
