package insight

import "github.com/blackwell-systems/devgauge/internal/analyzer"

// MotivationalMessage is the headline message shown with the breakdown.
type MotivationalMessage struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

// Message tones.
const (
	ToneCelebrating  = "celebrating"
	ToneEncouraging  = "encouraging"
	ToneConstructive = "constructive"
)

// GenerateMotivationalMessage picks the headline message for the
// overall assessment. The framing is deliberately positive: even the
// lowest tier reads as a level-up prompt, not a failure notice.
func GenerateMotivationalMessage(b analyzer.Breakdown) MotivationalMessage {
	switch b.OverallAssessment {
	case analyzer.AssessmentExcellent:
		return MotivationalMessage{
			Title:   "AI Strategy Analysis - You're doing it RIGHT",
			Message: "You write your core algorithms independently and use AI strategically for supporting tasks. This is exactly how professional developers work!",
			Tone:    ToneCelebrating,
		}
	case analyzer.AssessmentSmartAIUser:
		return MotivationalMessage{
			Title:   "AI Strategy Analysis - You're doing it RIGHT",
			Message: "Strategic AI usage - You write your core code yourself and use AI for efficiency on supporting tasks. This is the smart way to work!",
			Tone:    ToneEncouraging,
		}
	default:
		return MotivationalMessage{
			Title:   "Level Up Your Skills",
			Message: "Build more complex projects to sharpen your craft! Focus on writing core algorithms yourself while using AI for supporting tasks.",
			Tone:    ToneConstructive,
		}
	}
}

// Suggestion is one actionable improvement item.
type Suggestion struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
	Icon       string `json:"icon"`
}

// Suggestion priorities.
const (
	PriorityMaintain = "maintain"
	PriorityImprove  = "improve"
	PriorityCritical = "critical"
)

// GenerateImprovementSuggestions builds the suggestion list: one
// tiered core-skills item, two fixed items, and a bonus open-source
// item once core independence clears 70.
func GenerateImprovementSuggestions(b analyzer.Breakdown) []Suggestion {
	var suggestions []Suggestion
	independence := b.CoreIndependenceScore

	switch {
	case independence >= 80:
		suggestions = append(suggestions, Suggestion{
			Area:       "Core Skills Mastery",
			Suggestion: "You're crushing it! Keep writing your core algorithms yourself. Next: Mentor others!",
			Priority:   PriorityMaintain,
			Icon:       "🏆",
		})
	case independence >= 60:
		suggestions = append(suggestions, Suggestion{
			Area:       "Level Up Core Skills",
			Suggestion: "Try implementing more complex features from scratch. You're almost there!",
			Priority:   PriorityImprove,
			Icon:       "⭐",
		})
	default:
		suggestions = append(suggestions, Suggestion{
			Area:       "Build Core Foundation",
			Suggestion: "Focus on writing core algorithms yourself - start with smaller features and level up!",
			Priority:   PriorityCritical,
			Icon:       "🚀",
		})
	}

	suggestions = append(suggestions,
		Suggestion{
			Area:       "Better Documentation",
			Suggestion: "Write detailed commit messages explaining your technical decisions.",
			Priority:   PriorityImprove,
			Icon:       "📝",
		},
		Suggestion{
			Area:       "Showcase Projects",
			Suggestion: "Build 2-3 projects that showcase your core skills without AI.",
			Priority:   PriorityImprove,
			Icon:       "💎",
		},
	)

	if independence >= 70 {
		suggestions = append(suggestions, Suggestion{
			Area:       "Open Source Contribution",
			Suggestion: "Contribute to open source projects in your domain.",
			Priority:   PriorityImprove,
			Icon:       "🎯",
		})
	}

	return suggestions
}
