package analyzer

import (
	"math"
	"strings"
)

// TaskCategory identifies one of the five task buckets attribution is
// split into.
type TaskCategory string

const (
	CategoryCoreAlgorithms TaskCategory = "core_algorithms"
	CategoryAPIIntegration TaskCategory = "api_integration"
	CategoryUIUX           TaskCategory = "ui_ux"
	CategoryDocumentation  TaskCategory = "documentation"
	CategoryBoilerplate    TaskCategory = "boilerplate"
)

// CoreCategories are the buckets a developer is expected to write
// themselves; the rest are supporting work where AI assistance is
// considered appropriate.
var (
	CoreCategories       = []TaskCategory{CategoryCoreAlgorithms, CategoryAPIIntegration}
	SupportingCategories = []TaskCategory{CategoryUIUX, CategoryDocumentation, CategoryBoilerplate}
)

// Keyword vocabularies for category adjustment from the self-profile.
var (
	expertiseMLTerms = []string{"ml", "ai", "vision", "computer vision", "machine learning"}
	uiWeaknessTerms  = []string{"ui", "ux", "css", "styling", "streamlit", "frontend"}
	docWeaknessTerms = []string{"documentation", "readme"}
)

// CategoryShare is the attribution split for a single task category.
// AIPercentage + HumanPercentage is always exactly 100.
type CategoryShare struct {
	AIPercentage    int      `json:"ai_percentage"`
	HumanPercentage int      `json:"human_percentage"`
	Examples        []string `json:"examples"`
}

// TaskGroup aggregates either the core or the supporting categories.
type TaskGroup struct {
	Categories      []TaskCategory `json:"categories"`
	AIPercentage    int            `json:"ai_percentage"`
	HumanPercentage int            `json:"human_percentage"`
	Examples        []string       `json:"examples"`
}

// Categorization is the full task-type split: per-category shares plus
// the core and supporting aggregates.
type Categorization struct {
	Categories map[TaskCategory]CategoryShare `json:"categories"`
	Core       TaskGroup                      `json:"core"`
	Supporting TaskGroup                      `json:"supporting"`
}

// Categorize splits the overall AI percentage into five weighted task
// buckets using fixed rules adjusted by the self-profile. The detected
// domains only feed the core-example fallback chain. It is a pure
// function: same inputs, same output.
func Categorize(profile *SelfProfile, domains []string, overallAI int) Categorization {
	if profile == nil {
		profile = &SelfProfile{}
	}

	coreSkills := strings.ToLower(profile.CoreSkills)
	weaknesses := strings.ToLower(profile.Weaknesses)
	expertise := strings.ToLower(profile.ExpertiseArea)

	// Core algorithms: self-described ML/vision expertise implies the
	// subject writes these themselves; otherwise well below the overall.
	coreAI := 10
	if !containsAny(expertise, expertiseMLTerms) && !containsAny(coreSkills, expertiseMLTerms) {
		coreAI = maxInt(10, overallAI-30)
	}

	// UI/UX: a confessed weakness means heavy assistance.
	uiAI := 85
	if !containsAny(weaknesses, uiWeaknessTerms) {
		uiAI = maxInt(40, overallAI)
	}

	// Documentation: high assistance either way.
	docAI := 70
	if containsAny(weaknesses, docWeaknessTerms) {
		docAI = 90
	}

	apiAI := clampInt(overallAI, 30, 70)
	boilerplateAI := clampInt(overallAI+10, 60, 80)

	coreExamples := extractCoreExamples(profile, domains)
	uiExamples := extractSupportingExamples(profile)

	categories := map[TaskCategory]CategoryShare{
		CategoryCoreAlgorithms: newShare(coreAI, coreExamples),
		CategoryAPIIntegration: newShare(apiAI, []string{"Model integration", "Pipeline setup", "API endpoints"}),
		CategoryUIUX:           newShare(uiAI, uiExamples),
		CategoryDocumentation:  newShare(docAI, []string{"README files", "Code comments", "Documentation"}),
		CategoryBoilerplate:    newShare(boilerplateAI, []string{"Project setup", "Configuration files", "Boilerplate code"}),
	}

	return Categorization{
		Categories: categories,
		Core:       buildGroup(categories, CoreCategories, coreExamples),
		Supporting: buildGroup(categories, SupportingCategories, uiExamples),
	}
}

// newShare builds a category share with the human side as the exact
// complement of the AI side.
func newShare(ai int, examples []string) CategoryShare {
	return CategoryShare{
		AIPercentage:    ai,
		HumanPercentage: 100 - ai,
		Examples:        examples,
	}
}

// buildGroup averages the member categories' AI shares into one group
// record.
func buildGroup(categories map[TaskCategory]CategoryShare, members []TaskCategory, examples []string) TaskGroup {
	sum := 0
	for _, cat := range members {
		sum += categories[cat].AIPercentage
	}
	ai := int(math.Round(float64(sum) / float64(len(members))))
	return TaskGroup{
		Categories:      members,
		AIPercentage:    ai,
		HumanPercentage: 100 - ai,
		Examples:        examples,
	}
}

// extractCoreExamples pulls core-skill examples from the profile,
// falling back to expertise details, then the first detected domain,
// then a fixed default.
func extractCoreExamples(profile *SelfProfile, domains []string) []string {
	var examples []string

	if profile.CoreSkills != "" {
		examples = appendSplit(examples, profile.CoreSkills, 5)
	}
	if len(examples) == 0 && profile.ExpertiseDetails != "" {
		examples = appendSplit(examples, profile.ExpertiseDetails, 3)
	}
	if len(examples) == 0 && len(domains) > 0 {
		examples = []string{domains[0]}
	}
	if len(examples) == 0 {
		return []string{"Core development"}
	}
	return firstN(examples, 5)
}

// extractSupportingExamples pulls supporting-task examples from the
// confessed weaknesses and non-expertise areas.
func extractSupportingExamples(profile *SelfProfile) []string {
	var examples []string

	if profile.Weaknesses != "" {
		examples = appendSplit(examples, profile.Weaknesses, 5)
	}
	if len(examples) < 3 && profile.NonExpertiseAreas != "" {
		examples = appendSplit(examples, profile.NonExpertiseAreas, 3)
	}
	if len(examples) == 0 {
		return []string{"UI/UX", "Styling", "Documentation"}
	}
	return firstN(examples, 5)
}

// appendSplit appends up to limit comma-separated trimmed entries from
// raw onto dst.
func appendSplit(dst []string, raw string, limit int) []string {
	added := 0
	for _, part := range strings.Split(raw, ",") {
		if added >= limit {
			break
		}
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		dst = append(dst, trimmed)
		added++
	}
	return dst
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
