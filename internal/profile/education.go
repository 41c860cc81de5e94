package profile

import (
	"regexp"
	"strings"
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "diploma",
	"university", "college", "institute", "school",
}

// Capitalized run ending in an institution noun, with an optional
// "of ..." tail: "Stanford University", "University of California".
// Tail tokens after "of" exclude dots so a sentence break like
// "University of Illinois. Strong" stops the capture at "Illinois".
var institutionRe = regexp.MustCompile(`\b((?:[A-Z][A-Za-z.\-]*\s+){0,4}(?:University|College|Institute|Academy)(?:\s+of\s+[A-Z][A-Za-z\-]*(?:\s+[A-Z][A-Za-z\-]*){0,2})?)`)

// ExtractEducation detects degree presence, the highest degree tier
// mentioned, and institution name candidates in cleaned text.
func ExtractEducation(text string) Education {
	lower := strings.ToLower(text)
	edu := Education{
		Level:        detectLevel(lower),
		Institutions: extractInstitutions(text),
	}
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			edu.HasDegree = true
			break
		}
	}
	return edu
}

// detectLevel walks the ladder top down so a resume listing both a
// Master of Science and a B.S. reports Masters. Substring checks on
// purpose: resumes abbreviate degrees every way imaginable.
func detectLevel(lower string) EducationLevel {
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
	switch {
	case has("phd", "ph.d", "doctorate"):
		return EducationPhD
	case has("master", "mba", "m.s", "m.a"):
		return EducationMasters
	case has("bachelor", "b.s", "b.a", "b.tech"):
		return EducationBachelors
	case has("associate"):
		return EducationAssociates
	}
	return ""
}

func extractInstitutions(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range institutionRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimRight(strings.TrimSpace(m[1]), ".")
		if len(name) <= 2 {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
