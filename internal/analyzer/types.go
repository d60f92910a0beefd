// Package analyzer implements the heuristic scoring pipeline that turns
// a public repository listing and an optional self-reported profile into
// structured portfolio assessments: domain detection, complexity
// classification, AI-vs-human attribution, task categorization, career
// stage, job readiness, skill tiers, and a learning-journey record.
//
// Every function in this package is deterministic: given the same
// repository list, profile, and commit data it produces the same output.
// All results are request-scoped value records; nothing is mutated after
// construction.
package analyzer

import "strings"

// ComplexityLevel classifies overall code sophistication.
type ComplexityLevel string

const (
	ComplexityBasic        ComplexityLevel = "basic"
	ComplexityIntermediate ComplexityLevel = "intermediate"
	ComplexityAdvanced     ComplexityLevel = "advanced"
)

// SelfProfile holds the free-text fields a developer volunteers about
// themselves. Every field is optional; absent fields degrade to defaults
// and never cause an error.
type SelfProfile struct {
	DeveloperRole     string `json:"developer_role"`
	CoreSkills        string `json:"core_skills"`
	Strengths         string `json:"strengths"`
	Weaknesses        string `json:"weaknesses"`
	ExpertiseArea     string `json:"expertise_area"`
	ExpertiseDetails  string `json:"expertise_details"`
	LearningJourney   string `json:"learning_journey"`
	AIUsageContext    string `json:"ai_usage_context"`
	NonExpertiseAreas string `json:"non_expertise_areas"`
}

// Attribution is the estimated AI-vs-human authorship split plus the
// qualitative signals that drove it. AIPercentage + HumanPercentage is
// always exactly 100.
type Attribution struct {
	AIPercentage    int             `json:"ai_percentage"`
	HumanPercentage int             `json:"human_percentage"`
	UsageSummary    []string        `json:"usage_summary"`
	Explanations    []string        `json:"explanations"`
	Improvements    []string        `json:"improvements"`
	SmartUsage      bool            `json:"smart_usage"`
	Domains         []string        `json:"domains"`
	ComplexityLevel ComplexityLevel `json:"complexity_level"`
}

// Project is a non-fork repository selected as portfolio-worthy by the
// stars/description/recency rule.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	URL         string `json:"url"`
}

// Summary is the full repository-summary record for one subject:
// language histogram, star totals, unique projects, and the attribution
// result, all with forked repositories excluded.
type Summary struct {
	Username       string         `json:"username"`
	PublicRepos    int            `json:"public_repos"`
	OriginalRepos  int            `json:"original_repos"`
	Followers      int            `json:"followers"`
	TotalStars     int            `json:"total_stars"`
	TotalForks     int            `json:"total_forks"`
	Languages      map[string]int `json:"languages"`
	Skills         []string       `json:"skills"`
	TopLanguage    string         `json:"top_language"`
	UniqueProjects []Project      `json:"unique_projects"`
	Attribution    Attribution    `json:"attribution"`
}

// containsAny reports whether the lower-cased haystack contains any of
// the given substrings. Matching is substring containment, not
// word-boundary matching; the keyword tables are tuned with that in mind.
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
