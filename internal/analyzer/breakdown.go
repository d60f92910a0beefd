package analyzer

// CategoryBreakdown is one display row of the employer-facing breakdown.
type CategoryBreakdown struct {
	Name            string       `json:"name"`
	Category        TaskCategory `json:"category"`
	AIPercentage    int          `json:"ai_percentage"`
	HumanPercentage int          `json:"human_percentage"`
	IsCore          bool         `json:"is_core"`
	Status          string       `json:"status"`
	Examples        []string     `json:"examples"`
	Message         string       `json:"message"`
}

// Breakdown is the employer-facing view of the categorization: a fixed
// ordered list of display categories plus an overall assessment.
type Breakdown struct {
	Categories            []CategoryBreakdown `json:"categories"`
	OverallAssessment     string              `json:"overall_assessment"`
	CoreIndependenceScore int                 `json:"core_independence_score"`
}

// Breakdown status values.
const (
	StatusExcellent        = "excellent"
	StatusGood             = "good"
	StatusSmart            = "smart"
	StatusNeedsImprovement = "needs_improvement"
)

// Overall assessment values.
const (
	AssessmentExcellent        = "excellent"
	AssessmentSmartAIUser      = "smart_ai_user"
	AssessmentNeedsImprovement = "needs_improvement"
)

// displayCategory fixes the presentation order and labels of the five
// task buckets.
type displayCategory struct {
	name     string
	category TaskCategory
	isCore   bool
}

var displayCategories = []displayCategory{
	{"Core Algorithms", CategoryCoreAlgorithms, true},
	{"API & Integration", CategoryAPIIntegration, true},
	{"UI/UX & Styling", CategoryUIUX, false},
	{"Documentation", CategoryDocumentation, false},
	{"Boilerplate & Setup", CategoryBoilerplate, false},
}

// CalculateBreakdown renders a Categorization into the display
// breakdown. Core categories are judged on human share; supporting
// categories always read as smart delegation.
func CalculateBreakdown(c Categorization) Breakdown {
	rows := make([]CategoryBreakdown, 0, len(displayCategories))
	for _, dc := range displayCategories {
		share := c.Categories[dc.category]
		row := CategoryBreakdown{
			Name:            dc.name,
			Category:        dc.category,
			AIPercentage:    share.AIPercentage,
			HumanPercentage: share.HumanPercentage,
			IsCore:          dc.isCore,
			Examples:        share.Examples,
		}
		if dc.isCore {
			row.Status, row.Message = coreStatus(share.HumanPercentage)
		} else {
			row.Status = StatusSmart
			row.Message = "Smart use of AI for supporting tasks"
		}
		rows = append(rows, row)
	}

	coreIndependence := c.Core.HumanPercentage

	var assessment string
	switch {
	case coreIndependence >= 80:
		assessment = AssessmentExcellent
	case coreIndependence >= 60:
		assessment = AssessmentSmartAIUser
	default:
		assessment = AssessmentNeedsImprovement
	}

	return Breakdown{
		Categories:            rows,
		OverallAssessment:     assessment,
		CoreIndependenceScore: coreIndependence,
	}
}

// coreStatus grades a core category by its human share.
func coreStatus(humanPct int) (status, message string) {
	switch {
	case humanPct >= 80:
		return StatusExcellent, "Strong independent work in core skills"
	case humanPct >= 60:
		return StatusGood, "Solid ownership of core work with some AI support"
	default:
		return StatusNeedsImprovement, "Consider writing more core logic yourself"
	}
}

// SelfAwareness scores how honestly and completely the subject filled
// out the self-profile.
type SelfAwareness struct {
	Score      int      `json:"score"`
	Level      string   `json:"level"`
	Indicators []string `json:"indicators"`
}

// Self-awareness levels.
const (
	LevelHighlySelfAware = "highly_self_aware"
	LevelSelfAware       = "self_aware"
	LevelSomewhatAware   = "somewhat_aware"
	LevelNeedsReflection = "needs_reflection"
)

// CalculateSelfAwareness grades profile completeness. Each filled field
// contributes a fixed number of points; a nil profile scores zero.
func CalculateSelfAwareness(profile *SelfProfile) SelfAwareness {
	var sa SelfAwareness
	if profile == nil {
		sa.Level = LevelNeedsReflection
		return sa
	}

	if profile.DeveloperRole != "" {
		sa.Score += 20
		sa.Indicators = append(sa.Indicators, "clear_role_definition")
	}
	if profile.CoreSkills != "" {
		sa.Score += 20
		sa.Indicators = append(sa.Indicators, "clear_expertise")
	}
	if profile.Weaknesses != "" {
		sa.Score += 25
		sa.Indicators = append(sa.Indicators, "honest_about_weaknesses")
	}
	if profile.ExpertiseArea != "" {
		sa.Score += 15
		sa.Indicators = append(sa.Indicators, "domain_awareness")
	}
	if profile.AIUsageContext != "" {
		sa.Score += 20
		sa.Indicators = append(sa.Indicators, "strategic_ai_use")
	}

	switch {
	case sa.Score >= 80:
		sa.Level = LevelHighlySelfAware
	case sa.Score >= 60:
		sa.Level = LevelSelfAware
	case sa.Score >= 40:
		sa.Level = LevelSomewhatAware
	default:
		sa.Level = LevelNeedsReflection
	}
	return sa
}
