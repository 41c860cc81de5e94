package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducation(t *testing.T) {
	t.Run("highest tier wins", func(t *testing.T) {
		edu := ExtractEducation("PhD in Computer Science, also holds a Masters")
		assert.True(t, edu.HasDegree)
		assert.Equal(t, EducationPhD, edu.Level)
	})

	t.Run("mba counts as masters", func(t *testing.T) {
		edu := ExtractEducation("MBA, University of Chicago")
		assert.True(t, edu.HasDegree)
		assert.Equal(t, EducationMasters, edu.Level)
	})

	t.Run("abbreviated bachelors", func(t *testing.T) {
		edu := ExtractEducation("B.Tech in Electronics, Anna University")
		assert.True(t, edu.HasDegree)
		assert.Equal(t, EducationBachelors, edu.Level)
	})

	t.Run("associates", func(t *testing.T) {
		edu := ExtractEducation("Associate degree in nursing")
		assert.True(t, edu.HasDegree)
		assert.Equal(t, EducationAssociates, edu.Level)
	})

	t.Run("degree keyword without a clear tier", func(t *testing.T) {
		edu := ExtractEducation("Graduated from Springfield College")
		assert.True(t, edu.HasDegree)
		assert.Empty(t, edu.Level)
	})

	t.Run("no education signals", func(t *testing.T) {
		edu := ExtractEducation("shipping web apps since forever")
		assert.False(t, edu.HasDegree)
		assert.Empty(t, edu.Level)
	})

	t.Run("institution names", func(t *testing.T) {
		edu := ExtractEducation("Massachusetts Institute of Technology and Stanford University")
		assert.Equal(t, []string{"Massachusetts Institute of Technology", "Stanford University"}, edu.Institutions)
	})
}
