package profile

import (
	"regexp"
	"strings"
)

// Ordered most to least specific. The first pattern that hits anything
// wins, so a formatted number is never shadowed by a looser match later
// in the list.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{3}\.\d{3}\.\d{4}`),
	regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`\+91[-.\s]?\d{5}[-.\s]?\d{5}`),
	regexp.MustCompile(`\+91[-.\s]?\d{10}`),
	regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
}

var (
	linkedinFullRe = regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/(?:in|pub)/[\w\-]+`)
	linkedinBareRe = regexp.MustCompile(`(?i)(?:www\.)?linkedin\.com/(?:in|pub)/[\w\-]+`)
	linkedinUserRe = regexp.MustCompile(`(?i)linkedin\.com/in/([\w\-]+)`)
)

// ExtractContact pulls email, phone and LinkedIn details out of cleaned
// text. Each field keeps the first match only.
func ExtractContact(text string) Contact {
	var c Contact
	c.Email = emailRe.FindString(text)
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			c.Phone = strings.Join(strings.Fields(m), " ")
			break
		}
	}
	c.LinkedIn = extractLinkedIn(text)
	return c
}

// extractLinkedIn normalizes whatever form the profile link takes into a
// full https URL: complete URLs first, then protocol-less ones, then a
// bare linkedin.com/in/<user> fragment.
func extractLinkedIn(text string) string {
	if m := linkedinFullRe.FindString(text); m != "" {
		return m
	}
	if m := linkedinBareRe.FindString(text); m != "" {
		return "https://" + m
	}
	if m := linkedinUserRe.FindStringSubmatch(text); m != nil {
		return "https://linkedin.com/in/" + m[1]
	}
	return ""
}
