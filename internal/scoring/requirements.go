package scoring

import (
	"sort"
	"strings"

	"github.com/resumeworks/resumeworker/internal/profile"
)

// Requirements describes what a role asks for. The zero value means no
// requirements were stated; component scorers then return neutral scores.
type Requirements struct {
	RequiredSkills           []string               `json:"required_skills,omitempty"`
	NiceToHaveSkills         []string               `json:"nice_to_have_skills,omitempty"`
	MinExperienceYears       int                    `json:"min_experience_years,omitempty"`
	PreferredExperienceYears int                    `json:"preferred_experience_years,omitempty"`
	EducationLevel           profile.EducationLevel `json:"education_level,omitempty"`
	PreferredEducationLevel  profile.EducationLevel `json:"preferred_education_level,omitempty"`
}

// IsZero reports whether no requirement field is set.
func (r Requirements) IsZero() bool {
	return len(r.RequiredSkills) == 0 && len(r.NiceToHaveSkills) == 0 &&
		r.MinExperienceYears == 0 && r.PreferredExperienceYears == 0 &&
		r.EducationLevel == "" && r.PreferredEducationLevel == ""
}

// DeriveRequirements recovers requirements from free-form job description
// text using the same extractors that analyze resumes. Taxonomy skills
// found in the description become required skills, the largest years
// mention becomes the minimum, and the highest degree tier mentioned
// becomes the required level.
func DeriveRequirements(jobDescription string) Requirements {
	text := profile.Clean(jobDescription)
	if text == "" {
		return Requirements{}
	}
	req := Requirements{
		RequiredSkills:     profile.ExtractSkills(text).Flatten(),
		MinExperienceYears: profile.ExplicitYears(text),
	}
	if edu := profile.ExtractEducation(text); edu.Level != "" {
		req.EducationLevel = edu.Level
	}
	return req
}

// MatchSkills intersects a profile's extracted skills with the role's
// lists. Relevant covers hits from both the required and nice-to-have
// lists; missing covers required skills only. Both come back lowercased
// and sorted.
func MatchSkills(skills profile.Skills, req Requirements) (relevant, missing []string) {
	have := toSet(skills.Flatten())
	relevantSet := make(map[string]struct{})
	missingSet := make(map[string]struct{})

	for _, s := range normalizeSkills(req.RequiredSkills) {
		if _, ok := have[s]; ok {
			relevantSet[s] = struct{}{}
		} else {
			missingSet[s] = struct{}{}
		}
	}
	for _, s := range normalizeSkills(req.NiceToHaveSkills) {
		if _, ok := have[s]; ok {
			relevantSet[s] = struct{}{}
		}
	}
	return sortedKeys(relevantSet), sortedKeys(missingSet)
}

func normalizeSkills(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		set[s] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
