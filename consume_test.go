package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/resumeworks/resumeworker/internal/database"
	"github.com/resumeworks/resumeworker/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResume(filename string) database.Resume {
	return database.Resume{
		ID:               uuid.New(),
		OriginalFilename: filename,
		Mime:             "application/pdf",
		ObjectKey:        "resumes/" + filename,
	}
}

func TestRetry(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		got, err := retry(3, func() (int, error) {
			calls++
			if calls < 3 {
				return 0, fmt.Errorf("transient")
			}
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when exhausted", func(t *testing.T) {
		_, err := retry(2, func() (string, error) {
			return "", fmt.Errorf("broker down")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 attempts")
		assert.Contains(t, err.Error(), "broker down")
	})
}

func TestResolveRequirements(t *testing.T) {
	t.Run("structured requirements win", func(t *testing.T) {
		s := Session{
			Requirements:   &scoring.Requirements{RequiredSkills: []string{"go"}, MinExperienceYears: 3},
			JobDescription: "We need Python and Docker experience.",
		}
		reqs := resolveRequirements(s)
		assert.Equal(t, []string{"go"}, reqs.RequiredSkills)
		assert.Equal(t, 3, reqs.MinExperienceYears)
	})

	t.Run("empty requirements fall back to the description", func(t *testing.T) {
		s := Session{
			Requirements:   &scoring.Requirements{},
			JobDescription: "We need Python and Docker experience. Bachelor degree required.",
		}
		reqs := resolveRequirements(s)
		assert.ElementsMatch(t, []string{"python", "docker"}, reqs.RequiredSkills)
		assert.Equal(t, "Bachelors", string(reqs.EducationLevel))
	})

	t.Run("nil requirements fall back to the description", func(t *testing.T) {
		s := Session{JobDescription: "Looking for a Go developer with 5+ years of experience."}
		reqs := resolveRequirements(s)
		assert.Contains(t, reqs.RequiredSkills, "go")
		assert.Equal(t, 5, reqs.MinExperienceYears)
	})
}

func TestHydrateSessionPassthrough(t *testing.T) {
	// a full message never touches the database
	s := Session{
		ID:             uuid.New(),
		JobTitle:       "Backend Engineer",
		JobDescription: "Build services in Go.",
	}
	got, err := hydrateSession(context.Background(), &WorkerConfig{}, s)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestRankCandidates(t *testing.T) {
	results := []CandidateResult{
		{FileName: "b.pdf", Result: scoring.Result{Overall: 0.61}},
		{FileName: "broken.pdf", IsErrorResult: true, Error: "file download error: no such key"},
		{FileName: "a.pdf", Result: scoring.Result{Overall: 0.82}},
		{FileName: "c.pdf", Result: scoring.Result{Overall: 0.61}},
	}
	rankCandidates(results)

	// best score first, filename breaks the tie, error entry sinks last
	assert.Equal(t, "a.pdf", results[0].FileName)
	assert.Equal(t, "b.pdf", results[1].FileName)
	assert.Equal(t, "c.pdf", results[2].FileName)
	assert.Equal(t, "broken.pdf", results[3].FileName)

	for i, res := range results {
		assert.Equal(t, i+1, res.Rank)
	}
}

func TestRankCandidatesEmpty(t *testing.T) {
	var results []CandidateResult
	rankCandidates(results)
	assert.Empty(t, results)
}

func TestErrorResult(t *testing.T) {
	resume := testResume("cv.pdf")
	res := errorResult(resume, "file download error: no such key")

	assert.Equal(t, resume.ID, res.ResumeID)
	assert.Equal(t, "cv.pdf", res.FileName)
	assert.True(t, res.IsErrorResult)
	assert.Equal(t, "file download error: no such key", res.Error)
	assert.Equal(t, scoring.RecommendationNone, res.Recommendation)
	assert.Zero(t, res.Overall)
}
