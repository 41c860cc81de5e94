package profile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	urlRe          = regexp.MustCompile(`https?://[^\s]+`)
	bareLinkedinRe = regexp.MustCompile(`(?i)(?:www\.)?linkedin\.com/(?:in|pub)/[\w\-]+`)
	emailRe        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	whitespaceRe = regexp.MustCompile(`\s+`)
	specialsRe   = regexp.MustCompile(`[^\w\s@.\-_+()]`)
	multiSpaceRe = regexp.MustCompile(` +`)
)

// Phone shapes shielded during cleaning. contact.go walks a longer list
// when it actually extracts a number.
var phoneGuardRes = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{3}\.\d{3}\.\d{4}`),
	regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),
	regexp.MustCompile(`\b\d{10}\b`),
}

// Clean normalizes raw resume or job description text for extraction:
// Unicode compatibility folding, whitespace collapse, and a sweep of
// special characters. URLs, emails and phone numbers are shielded with
// placeholders so the sweep cannot mangle them.
func Clean(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = foldMarks(text)

	placeholders := make(map[string]string)
	shield := func(key, match string) {
		placeholders[key] = match
		text = strings.ReplaceAll(text, match, key)
	}

	for i, m := range urlRe.FindAllString(text, -1) {
		shield(fmt.Sprintf("__URL_%d__", i), m)
	}
	for i, m := range bareLinkedinRe.FindAllString(text, -1) {
		shield(fmt.Sprintf("__LINKEDIN_%d__", i), m)
	}
	for i, m := range emailRe.FindAllString(text, -1) {
		shield(fmt.Sprintf("__EMAIL_%d__", i), m)
	}
	for i, re := range phoneGuardRes {
		for j, m := range re.FindAllString(text, -1) {
			shield(fmt.Sprintf("__PHONE_%d_%d__", i, j), m)
		}
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialsRe.ReplaceAllString(text, " ")
	text = multiSpaceRe.ReplaceAllString(text, " ")

	for key, original := range placeholders {
		text = strings.ReplaceAll(text, key, original)
	}
	return strings.TrimSpace(text)
}

// foldMarks decomposes the text (NFKD, so ligatures and width variants
// flatten out too), drops combining marks, and recomposes. "résumé"
// becomes "resume".
func foldMarks(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
