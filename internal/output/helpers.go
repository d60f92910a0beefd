package output

import (
	"fmt"
	"strings"
)

// Section renders a styled section header with an underline.
func Section(title string) string {
	return StyleHeader.Render(title) + "\n" +
		StyleMuted.Render(strings.Repeat("─", len(title))) + "\n"
}

// ScoreBar renders a 0-100 score as a filled bar with the value
// appended, colored by the usual traffic-light bands.
func ScoreBar(score, width int) string {
	if width <= 0 {
		width = 20
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf(" %d/100", score)

	switch {
	case score >= 80:
		return StyleSuccess.Render(bar) + label
	case score >= 50:
		return StyleWarning.Render(bar) + label
	default:
		return StyleError.Render(bar) + label
	}
}

// PercentSplit renders a two-tone human/AI bar: the human share in
// green on the left, the AI share in purple on the right.
func PercentSplit(humanPct, width int) string {
	if width <= 0 {
		width = 20
	}
	if humanPct < 0 {
		humanPct = 0
	}
	if humanPct > 100 {
		humanPct = 100
	}
	humanWidth := humanPct * width / 100

	return StyleHuman.Render(strings.Repeat("█", humanWidth)) +
		StyleAI.Render(strings.Repeat("█", width-humanWidth)) +
		fmt.Sprintf(" %d%% human / %d%% AI", humanPct, 100-humanPct)
}

// TrendArrow renders a delta between two scores: green up, red down,
// muted dash on no change.
func TrendArrow(current, previous int) string {
	switch {
	case current > previous:
		return StyleSuccess.Render(fmt.Sprintf("↑ +%d", current-previous))
	case current < previous:
		return StyleError.Render(fmt.Sprintf("↓ %d", current-previous))
	default:
		return StyleMuted.Render("→ 0")
	}
}
