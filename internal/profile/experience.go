package profile

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var explicitYearsRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s\-]*(?:years?|yrs?)[\s\-]*(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp)[\s\-]*(?:of\s+)?(\d+)[\s\-]*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`),
}

var (
	yearRangeRe  = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)
	openRangeRe  = regexp.MustCompile(`(\d{4})\s*[-–]\s*(?:present|current)`)
	monthRangeRe = regexp.MustCompile(`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\s*[-–]\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})`)
)

var (
	// Continuation tokens must end on an alphanumeric so a sentence break
	// like "at Google. Then" stops the capture at "Google".
	orgSuffixRe = regexp.MustCompile(`\b((?:[A-Z][A-Za-z0-9.\-]*[A-Za-z0-9]\s+){1,5}(?:Inc|LLC|Ltd|Corp|Corporation|Company|Technologies|Solutions|Systems|Labs|Group|GmbH))\b`)
	orgAtRe     = regexp.MustCompile(`\b(?:at|with)\s+([A-Z][A-Za-z0-9.\-]*[A-Za-z0-9](?:\s+[A-Z][A-Za-z0-9\-]*[A-Za-z0-9]){0,3})`)

	titleRe = regexp.MustCompile(`(?i)\b((?:senior|sr|junior|jr|lead|principal|staff|chief|head)\s+)?((?:software|data|backend|frontend|full[ -]?stack|devops|cloud|machine learning|ml|qa|security|systems?|platform|embedded|mobile|web|product|project|business|research)\s+)?(engineer|developer|programmer|analyst|scientist|architect|consultant|administrator|designer|specialist|manager|intern)s?\b`)
)

// Org candidates containing these words are education, not employers.
var orgExcludeWords = []string{"university", "college", "school", "degree"}

// ExtractExperience pulls total years worked plus employer and job title
// candidates out of cleaned text.
func ExtractExperience(text string) Experience {
	exp := Experience{
		TotalYears:    ExplicitYears(text),
		Organizations: extractOrganizations(text),
		JobTitles:     extractJobTitles(text),
	}
	if exp.TotalYears == 0 {
		exp.TotalYears = inferYearsFromRanges(text)
	}
	return exp
}

// ExplicitYears returns the largest "N years" style mention in text, or 0
// when none appears.
func ExplicitYears(text string) int {
	lower := strings.ToLower(text)
	best := 0
	for _, re := range explicitYearsRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n > best {
				best = n
			}
		}
	}
	return best
}

// inferYearsFromRanges estimates experience from employment date ranges
// like "2019-2023" or "Jan 2020 - present" when no explicit years figure
// exists. The widest single range wins; ranges are not summed because
// overlapping jobs would double count.
func inferYearsFromRanges(text string) int {
	lower := strings.ToLower(text)
	currentYear := time.Now().Year()
	best := 0

	span := func(start, end int) {
		if d := end - start; d > best {
			best = d
		}
	}
	for _, m := range yearRangeRe.FindAllStringSubmatch(lower, -1) {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		span(start, end)
	}
	for _, m := range openRangeRe.FindAllStringSubmatch(lower, -1) {
		start, _ := strconv.Atoi(m[1])
		span(start, currentYear)
	}
	for _, m := range monthRangeRe.FindAllStringSubmatch(lower, -1) {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		span(start, end)
	}
	return best
}

// extractOrganizations collects employer name candidates: capitalized runs
// ending in a company suffix, and capitalized runs following "at"/"with".
func extractOrganizations(text string) []string {
	var orgs []string
	for _, m := range orgSuffixRe.FindAllStringSubmatch(text, -1) {
		orgs = append(orgs, m[1])
	}
	for _, m := range orgAtRe.FindAllStringSubmatch(text, -1) {
		orgs = append(orgs, m[1])
	}

	seen := make(map[string]struct{})
	var out []string
	for _, org := range orgs {
		org = strings.TrimRight(strings.TrimSpace(org), ".")
		if len(org) <= 2 || isExcludedOrg(org) {
			continue
		}
		key := strings.ToLower(org)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, org)
	}
	return out
}

func isExcludedOrg(org string) bool {
	lower := strings.ToLower(org)
	for _, w := range orgExcludeWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// extractJobTitles collects role phrases such as "Senior Software
// Engineer". A bare role noun is not enough; at least one qualifier must
// precede it, otherwise every sentence containing "manager" would match.
func extractJobTitles(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range titleRe.FindAllStringSubmatch(text, -1) {
		if m[1] == "" && m[2] == "" {
			continue
		}
		title := strings.TrimSpace(m[0])
		key := strings.ToLower(title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, title)
		if len(out) == 10 {
			break
		}
	}
	return out
}
