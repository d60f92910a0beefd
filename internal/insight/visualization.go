// Package insight renders the analyzer's breakdown results into
// presentation-ready payloads: chart data, per-category cards, an
// employer-facing summary, and motivational messaging. Everything here
// is pure data shaping; no I/O.
package insight

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/devgauge/internal/analyzer"
)

// Chart colors shared by every visualization payload.
const (
	ColorHuman = "#39FF14" // neon green
	ColorAI    = "#9D4EDD" // neon purple
)

// StackedBarData is the two-segment stacked bar comparing core and
// supporting work.
type StackedBarData struct {
	Labels    []string          `json:"labels"`
	HumanData []int             `json:"human_data"`
	AIData    []int             `json:"ai_data"`
	Colors    map[string]string `json:"colors"`
}

// GenerateStackedBarData derives the chart from the core independence
// score. The supporting-tasks human share is a fixed offset below the
// core share, floored at 10.
func GenerateStackedBarData(b analyzer.Breakdown) StackedBarData {
	core := b.CoreIndependenceScore
	supporting := core + 30
	supportingHuman := 100 - supporting
	if supportingHuman < 10 {
		supportingHuman = 10
	}

	return StackedBarData{
		Labels:    []string{"Core Skills", "Supporting Tasks"},
		HumanData: []int{core, supportingHuman},
		AIData:    []int{100 - core, 100 - supportingHuman},
		Colors: map[string]string{
			"human": ColorHuman,
			"ai":    ColorAI,
		},
	}
}

// CategoryCard is one renderable card per breakdown category.
type CategoryCard struct {
	Title           string   `json:"title"`
	Icon            string   `json:"icon"`
	HumanPercentage int      `json:"human_percentage"`
	AIPercentage    int      `json:"ai_percentage"`
	Status          string   `json:"status"`
	Color           string   `json:"color"`
	Examples        []string `json:"examples"`
	Message         string   `json:"message"`
}

// GenerateCategoryCards maps each breakdown row onto a card with a
// status-driven icon and color.
func GenerateCategoryCards(b analyzer.Breakdown) []CategoryCard {
	cards := make([]CategoryCard, 0, len(b.Categories))
	for _, cat := range b.Categories {
		icon, color := statusBadge(cat.Status)
		cards = append(cards, CategoryCard{
			Title:           cat.Name,
			Icon:            icon,
			HumanPercentage: cat.HumanPercentage,
			AIPercentage:    cat.AIPercentage,
			Status:          cat.Status,
			Color:           color,
			Examples:        cat.Examples,
			Message:         cat.Message,
		})
	}
	return cards
}

// statusBadge maps a category status onto its icon and color.
func statusBadge(status string) (icon, color string) {
	switch status {
	case analyzer.StatusExcellent:
		return "🔥", "green"
	case analyzer.StatusGood:
		return "✅", "green"
	case analyzer.StatusSmart:
		return "✅", "purple"
	default:
		return "📈", "orange"
	}
}

// EmployerSummary is the recruiter-facing digest of the breakdown.
type EmployerSummary struct {
	Headline       string   `json:"headline"`
	KeyPoints      []string `json:"key_points"`
	TechnicalDepth string   `json:"technical_depth"`
	Recommendation string   `json:"recommendation"`
}

// GenerateEmployerSummary condenses the breakdown into a headline, key
// points, and a hiring recommendation.
func GenerateEmployerSummary(b analyzer.Breakdown) EmployerSummary {
	core := firstCategory(b.Categories, true)
	supporting := firstCategory(b.Categories, false)
	independence := b.CoreIndependenceScore

	headline := "Developer - Writes Code Independently"
	if core != nil && core.HumanPercentage >= 80 {
		headline = core.Name + " Developer - Writes Core Algorithms Independently"
	}

	var keyPoints []string
	switch {
	case independence >= 80:
		keyPoints = append(keyPoints, fmt.Sprintf("Independently develops core algorithms (%d%% human-written)", independence))
	case independence >= 60:
		keyPoints = append(keyPoints, fmt.Sprintf("Develops core algorithms with some AI assistance (%d%% human-written)", independence))
	}
	if core != nil && len(core.Examples) > 0 {
		examples := core.Examples
		if len(examples) > 3 {
			examples = examples[:3]
		}
		keyPoints = append(keyPoints, "Proficient in "+strings.Join(examples, ", "))
	}
	if supporting != nil {
		keyPoints = append(keyPoints, "Efficiently uses AI for "+strings.ToLower(supporting.Name)+" (smart workflow)")
	}

	depth := "Intermediate level"
	switch {
	case independence >= 80:
		depth = "Advanced - Strong technical foundation"
	case independence >= 60:
		depth = "Intermediate - Growing technical skills"
	}

	var recommendation string
	switch b.OverallAssessment {
	case analyzer.AssessmentExcellent:
		recommendation = "Strong technical foundation with strategic AI usage"
	case analyzer.AssessmentSmartAIUser:
		recommendation = "Good technical skills with smart AI assistance"
	default:
		recommendation = "Building technical foundation, consider more hands-on coding"
	}

	return EmployerSummary{
		Headline:       headline,
		KeyPoints:      keyPoints,
		TechnicalDepth: depth,
		Recommendation: recommendation,
	}
}

// firstCategory returns the first breakdown row matching the core flag,
// or nil.
func firstCategory(categories []analyzer.CategoryBreakdown, isCore bool) *analyzer.CategoryBreakdown {
	for i := range categories {
		if categories[i].IsCore == isCore {
			return &categories[i]
		}
	}
	return nil
}
