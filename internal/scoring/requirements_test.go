package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumeworks/resumeworker/internal/profile"
)

func TestDeriveRequirements(t *testing.T) {
	t.Run("recovers skills, years and education from a description", func(t *testing.T) {
		jd := "We need 3+ years building services with Python, Docker and PostgreSQL. Bachelor degree required."
		req := DeriveRequirements(jd)

		assert.Equal(t, []string{"docker", "postgresql", "python"}, req.RequiredSkills)
		assert.Equal(t, 3, req.MinExperienceYears)
		assert.Equal(t, profile.EducationBachelors, req.EducationLevel)
		assert.False(t, req.IsZero())
	})

	t.Run("empty description derives nothing", func(t *testing.T) {
		assert.True(t, DeriveRequirements("").IsZero())
		assert.True(t, DeriveRequirements("   ").IsZero())
	})

	t.Run("description without requirement signals", func(t *testing.T) {
		req := DeriveRequirements("A wonderful place to work. Apply today and meet the team over coffee.")
		assert.Empty(t, req.RequiredSkills)
		assert.Zero(t, req.MinExperienceYears)
		assert.Empty(t, req.EducationLevel)
	})
}

func TestRequirementsIsZero(t *testing.T) {
	assert.True(t, Requirements{}.IsZero())
	assert.False(t, Requirements{MinExperienceYears: 1}.IsZero())
	assert.False(t, Requirements{RequiredSkills: []string{"go"}}.IsZero())
	assert.False(t, Requirements{EducationLevel: profile.EducationPhD}.IsZero())
}

func TestMatchSkills(t *testing.T) {
	skills := profile.Skills{"programming": {"python", "go"}}

	t.Run("splits required into relevant and missing", func(t *testing.T) {
		relevant, missing := MatchSkills(skills, Requirements{
			RequiredSkills:   []string{"Python", "kubernetes"},
			NiceToHaveSkills: []string{"go", "aws"},
		})
		assert.Equal(t, []string{"go", "python"}, relevant)
		assert.Equal(t, []string{"kubernetes"}, missing)
	})

	t.Run("no requirements yields empty lists", func(t *testing.T) {
		relevant, missing := MatchSkills(skills, Requirements{})
		assert.Empty(t, relevant)
		assert.Empty(t, missing)
	})
}
