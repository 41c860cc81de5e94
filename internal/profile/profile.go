// Package profile turns raw resume text into a structured candidate
// profile covering contact details, skills, experience and education.
// Extraction is deterministic: the same text always produces the same
// profile.
package profile

import (
	"strings"
	"unicode/utf8"
)

// EducationLevel is a recognized degree tier.
type EducationLevel string

const (
	EducationAssociates EducationLevel = "Associates"
	EducationBachelors  EducationLevel = "Bachelors"
	EducationMasters    EducationLevel = "Masters"
	EducationMBA        EducationLevel = "MBA"
	EducationPhD        EducationLevel = "PhD"
)

// Contact holds the contact details found in a resume.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Experience summarizes the work history signals found in a resume.
type Experience struct {
	TotalYears    int      `json:"total_years"`
	Organizations []string `json:"organizations,omitempty"`
	JobTitles     []string `json:"job_titles,omitempty"`
}

// Education summarizes the strongest degree signals found in a resume.
type Education struct {
	HasDegree    bool           `json:"has_degree"`
	Level        EducationLevel `json:"level,omitempty"`
	Institutions []string       `json:"institutions,omitempty"`
}

// Profile is the structured result of analyzing one resume.
type Profile struct {
	Contact    Contact    `json:"contact_info"`
	Skills     Skills     `json:"skills,omitempty"`
	Experience Experience `json:"experience"`
	Education  Education  `json:"education"`
	TextLength int        `json:"text_length"`
	WordCount  int        `json:"word_count"`
}

// Cleaned text shorter than this carries too little signal to extract
// from; Build then returns a profile with only the size counters set.
const minExtractableRunes = 50

// Build cleans raw resume text and runs every extractor over it. It never
// fails: garbage input yields an empty profile, which the scorer grades
// accordingly.
func Build(raw string) *Profile {
	text := Clean(raw)
	p := &Profile{
		TextLength: utf8.RuneCountInString(text),
		WordCount:  len(strings.Fields(text)),
	}
	if p.TextLength < minExtractableRunes {
		return p
	}
	p.Contact = ExtractContact(text)
	p.Skills = ExtractSkills(text)
	p.Experience = ExtractExperience(text)
	p.Education = ExtractEducation(text)
	return p
}
