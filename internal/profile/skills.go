package profile

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Skills maps a taxonomy category to the skill keywords found in a
// resume. Categories with no hits are omitted entirely.
type Skills map[string][]string

var skillCategories = []string{
	"programming", "frameworks", "tools", "databases", "cloud", "soft_skills",
}

var skillTaxonomy = map[string][]string{
	"programming": {
		"python", "java", "javascript", "c++", "c#", "php", "ruby", "go",
		"swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css",
		"typescript", "perl", "shell", "bash", "powershell",
	},
	"frameworks": {
		"react", "angular", "vue", "django", "flask", "spring", "nodejs",
		"express", "laravel", "rails", "tensorflow", "pytorch", "keras",
		"scikit-learn", "pandas", "numpy", "bootstrap", "jquery",
	},
	"tools": {
		"git", "docker", "kubernetes", "jenkins", "ansible", "terraform",
		"vagrant", "maven", "gradle", "npm", "yarn", "webpack", "jira",
		"confluence", "slack", "trello",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "oracle", "redis", "elasticsearch",
		"sqlite", "cassandra", "dynamodb", "neo4j", "influxdb",
	},
	"cloud": {
		"aws", "azure", "gcp", "heroku", "digital ocean", "linode",
		"s3", "ec2", "lambda", "cloudformation", "terraform",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving",
		"project management", "agile", "scrum", "kanban", "analytical",
		"creative", "innovative", "collaborative",
	},
}

// Compiled word-boundary patterns for the multi-word taxonomy entries.
// Single-word entries go through the token set instead, because \b fails
// after a symbol and would silently drop c++ and c#.
var multiWordSkillRes = map[string]*regexp.Regexp{}

func init() {
	for _, skills := range skillTaxonomy {
		for _, s := range skills {
			if strings.ContainsAny(s, " -") {
				multiWordSkillRes[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
			}
		}
	}
}

// ExtractSkills scans text for taxonomy keywords, grouped by category.
func ExtractSkills(text string) Skills {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)
	found := make(Skills)
	for _, cat := range skillCategories {
		var hits []string
		for _, skill := range skillTaxonomy[cat] {
			if matchSkill(skill, lower, tokens) {
				hits = append(hits, skill)
			}
		}
		if len(hits) > 0 {
			found[cat] = hits
		}
	}
	return found
}

func matchSkill(skill, lower string, tokens map[string]struct{}) bool {
	if re, ok := multiWordSkillRes[skill]; ok {
		return re.MatchString(lower)
	}
	_, ok := tokens[skill]
	return ok
}

// tokenize splits lowercased text into a token set. Symbols that are part
// of skill names (+, #, .) stay inside tokens; trailing dots are trimmed
// so "go." at the end of a sentence still counts as "go".
func tokenize(lower string) map[string]struct{} {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' && r != '.'
	})
	set := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		tok = strings.TrimRight(tok, ".")
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Flatten returns every found skill once, lowercased and sorted. Entries
// that appear under two categories (terraform) collapse to one.
func (s Skills) Flatten() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(s)*4)
	for _, list := range s {
		for _, sk := range list {
			k := strings.ToLower(strings.TrimSpace(sk))
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
