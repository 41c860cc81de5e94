// Package scoring grades candidate profiles against job requirements,
// producing a weighted overall score with per-component feedback and a
// hiring recommendation.
package scoring

import (
	"fmt"
	"math"

	"github.com/resumeworks/resumeworker/internal/profile"
)

// Component weights. They sum to 1.0, so the overall score stays in [0, 1].
var weights = struct {
	Skills, Experience, Education, Quality float64
}{0.40, 0.25, 0.20, 0.15}

// Below either threshold a resume is graded as having insufficient
// content, regardless of what the extractors managed to find.
const (
	minQualityTextLength = 100
	minQualityWordCount  = 20
)

var educationHierarchy = map[profile.EducationLevel]int{
	profile.EducationAssociates: 1,
	profile.EducationBachelors:  2,
	profile.EducationMasters:    3,
	profile.EducationMBA:        3,
	profile.EducationPhD:        4,
}

// Breakdown holds the four component scores, each in [0, 1].
type Breakdown struct {
	SkillsMatch     float64 `json:"skills_match"`
	ExperienceYears float64 `json:"experience_years"`
	Education       float64 `json:"education"`
	ResumeQuality   float64 `json:"resume_quality"`
}

// Feedback carries one reviewer-facing line per component.
type Feedback struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Quality    string `json:"quality"`
}

// Result is the full evaluation of one candidate against one role.
type Result struct {
	Overall        float64   `json:"overall_score"`
	Percent        float64   `json:"score_percentage"`
	Components     Breakdown `json:"component_scores"`
	Feedback       Feedback  `json:"feedback"`
	Recommendation string    `json:"recommendation"`
	RelevantSkills []string  `json:"relevant_skills,omitempty"`
	MissingSkills  []string  `json:"missing_skills,omitempty"`
}

const (
	RecommendationStrong   = "Strong Candidate - Recommend for Interview"
	RecommendationGood     = "Good Candidate - Consider for Interview"
	RecommendationModerate = "Moderate Candidate - Review Carefully"
	RecommendationWeak     = "Weak Candidate - Consider Rejection"
	RecommendationNone     = "Unable to Evaluate"
)

// Evaluate scores a candidate profile against the role requirements.
func Evaluate(p *profile.Profile, req Requirements) Result {
	if p == nil {
		return Result{Recommendation: RecommendationNone}
	}

	b := Breakdown{
		SkillsMatch:     scoreSkills(p.Skills, req),
		ExperienceYears: scoreExperience(p.Experience.TotalYears, req.MinExperienceYears, req.PreferredExperienceYears),
		Education:       scoreEducation(p.Education, req.EducationLevel, req.PreferredEducationLevel),
		ResumeQuality:   scoreQuality(p),
	}
	overall := b.SkillsMatch*weights.Skills +
		b.ExperienceYears*weights.Experience +
		b.Education*weights.Education +
		b.ResumeQuality*weights.Quality

	relevant, missing := MatchSkills(p.Skills, req)
	return Result{
		Overall:        overall,
		Percent:        math.Round(overall*1000) / 10,
		Components:     b,
		Feedback:       feedbackFor(b, p, req),
		Recommendation: recommendationFor(overall),
		RelevantSkills: relevant,
		MissingSkills:  missing,
	}
}

// scoreSkills weights required-skill coverage over nice-to-have coverage
// 80/20. With no skill requirements at all the component is neutral.
func scoreSkills(skills profile.Skills, req Requirements) float64 {
	required := toSet(normalizeSkills(req.RequiredSkills))
	nice := toSet(normalizeSkills(req.NiceToHaveSkills))
	if len(required) == 0 && len(nice) == 0 {
		return 0.5
	}

	have := toSet(skills.Flatten())
	requiredScore := coverage(have, required)
	niceScore := coverage(have, nice)

	var score float64
	switch {
	case len(required) > 0 && len(nice) > 0:
		score = requiredScore*0.8 + niceScore*0.2
	case len(required) > 0:
		score = requiredScore
	default:
		score = niceScore
	}
	return math.Min(score, 1.0)
}

func coverage(have, want map[string]struct{}) float64 {
	if len(want) == 0 {
		return 0
	}
	hits := 0
	for s := range want {
		if _, ok := have[s]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}

// scoreExperience gives 0.7 for meeting the minimum, 1.0 for meeting the
// preferred level, a small capped bonus per extra year otherwise, and a
// prorated sub-0.6 score below the minimum.
func scoreExperience(years, required, preferred int) float64 {
	if years < 0 {
		return 0
	}
	if required == 0 && preferred == 0 {
		return 0.5
	}
	if years >= required {
		base := 0.7
		switch {
		case preferred > 0 && years >= preferred:
			base = 1.0
		case years > required:
			excess := float64(years - required)
			base = math.Min(1.0, base+math.Min(0.3, excess*0.05))
		}
		return base
	}
	// years < required, so required > 0 here
	return float64(years) / float64(required) * 0.6
}

// scoreEducation mirrors the experience shape on the degree ladder. A
// missing degree is harsh only when one is required; an unrecognized tier
// on the requirement side counts as met.
func scoreEducation(edu profile.Education, required, preferred profile.EducationLevel) float64 {
	if !edu.HasDegree {
		if required != "" {
			return 0.2
		}
		return 0.6
	}
	if edu.Level == "" {
		return 0.5
	}
	current := hierarchyRank(edu.Level, 1)

	if required == "" && preferred == "" {
		return math.Min(float64(current)/4.0, 1.0)
	}
	requiredRank := 0
	if required != "" {
		requiredRank = hierarchyRank(required, 0)
	}
	preferredRank := 0
	if preferred != "" {
		preferredRank = hierarchyRank(preferred, 0)
	}

	if current >= requiredRank {
		base := 0.7
		switch {
		case preferredRank > 0 && current >= preferredRank:
			base = 1.0
		case current > requiredRank:
			base = math.Min(1.0, base+math.Min(0.3, float64(current-requiredRank)*0.15))
		}
		return base
	}
	if requiredRank < 1 {
		requiredRank = 1
	}
	return float64(current) / float64(requiredRank) * 0.6
}

func hierarchyRank(level profile.EducationLevel, fallback int) int {
	if r, ok := educationHierarchy[level]; ok {
		return r
	}
	return fallback
}

// scoreQuality is additive over completeness signals: contact details,
// skill count and diversity, detectable experience and employers.
func scoreQuality(p *profile.Profile) float64 {
	if p.TextLength < minQualityTextLength || p.WordCount < minQualityWordCount {
		return 0.1
	}

	score := 0.0
	if p.Contact.Email != "" {
		score += 0.25
	}
	if p.Contact.Phone != "" {
		score += 0.15
	}
	if p.Contact.LinkedIn != "" {
		score += 0.10
	}

	totalSkills := 0
	for _, list := range p.Skills {
		totalSkills += len(list)
	}
	if totalSkills > 0 {
		score += 0.15
		if len(p.Skills) > 2 {
			score += 0.10
		}
	}

	if p.Experience.TotalYears > 0 {
		score += 0.15
	}
	if len(p.Experience.Organizations) > 0 {
		score += 0.10
	}
	return math.Min(score, 1.0)
}

func feedbackFor(b Breakdown, p *profile.Profile, req Requirements) Feedback {
	var fb Feedback

	switch {
	case b.SkillsMatch < 0.5:
		fb.Skills = "Consider adding more relevant technical skills mentioned in the job description."
	case b.SkillsMatch < 0.8:
		fb.Skills = "Good skill match, but could be improved by learning additional required skills."
	default:
		fb.Skills = "Excellent skill match with job requirements."
	}

	years := p.Experience.TotalYears
	switch {
	case b.ExperienceYears < 0.5:
		fb.Experience = fmt.Sprintf("Experience (%d years) is below the required %d years.", years, req.MinExperienceYears)
	case b.ExperienceYears < 0.8:
		fb.Experience = fmt.Sprintf("Experience (%d years) meets basic requirements.", years)
	default:
		fb.Experience = fmt.Sprintf("Excellent experience level (%d years) for this role.", years)
	}

	level := string(p.Education.Level)
	if level == "" {
		level = "None"
	}
	if b.Education < 0.5 {
		fb.Education = fmt.Sprintf("Education level (%s) may not meet job requirements.", level)
	} else {
		fb.Education = fmt.Sprintf("Education level (%s) is appropriate for this role.", level)
	}

	switch {
	case b.ResumeQuality < 0.5:
		fb.Quality = "Resume could be improved with more complete contact information and better formatting."
	case b.ResumeQuality < 0.8:
		fb.Quality = "Resume quality is good but could be enhanced."
	default:
		fb.Quality = "Excellent resume quality and completeness."
	}
	return fb
}

func recommendationFor(overall float64) string {
	switch {
	case overall >= 0.8:
		return RecommendationStrong
	case overall >= 0.6:
		return RecommendationGood
	case overall >= 0.4:
		return RecommendationModerate
	}
	return RecommendationWeak
}
