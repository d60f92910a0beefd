package analyzer

import (
	"strings"

	"github.com/blackwell-systems/devgauge/internal/github"
)

// complexityRepoLimit bounds how many repositories the classifier inspects.
const complexityRepoLimit = 20

// Complexity keyword tables. Each repository is classified into exactly
// one bucket: advanced keywords are tested first, then intermediate,
// then basic. First match wins, so a repo mentioning both "algorithm"
// and "tutorial" counts as advanced.
var (
	advancedKeywords     = []string{"algorithm", "optimization", "neural", "model", "architecture", "pipeline", "framework", "engine", "compiler", "parser"}
	intermediateKeywords = []string{"api", "database", "authentication", "integration", "service", "module", "component"}
	basicKeywords        = []string{"todo", "simple", "basic", "tutorial", "practice", "learning", "test"}
)

// ComplexityCounts holds the per-bucket repository counts behind a
// classification.
type ComplexityCounts struct {
	Advanced     int `json:"advanced"`
	Intermediate int `json:"intermediate"`
	Basic        int `json:"basic"`
}

// ClassifyComplexity classifies overall code sophistication from keyword
// signals in repository names and descriptions. Forked repositories are
// skipped; repositories matching no bucket are uncounted. With no
// counted repositories at all, the level defaults to intermediate.
func ClassifyComplexity(repos []github.Repository) (ComplexityLevel, ComplexityCounts) {
	var counts ComplexityCounts

	considered := 0
	for _, repo := range repos {
		if considered >= complexityRepoLimit {
			break
		}
		considered++

		if repo.Fork {
			continue
		}

		text := strings.ToLower(repo.Name + " " + repo.Description)
		switch {
		case containsAny(text, advancedKeywords):
			counts.Advanced++
		case containsAny(text, intermediateKeywords):
			counts.Intermediate++
		case containsAny(text, basicKeywords):
			counts.Basic++
		}
	}

	total := counts.Advanced + counts.Intermediate + counts.Basic
	if total == 0 {
		return ComplexityIntermediate, counts
	}

	switch {
	case counts.Advanced > counts.Intermediate:
		return ComplexityAdvanced, counts
	case counts.Intermediate > counts.Basic:
		return ComplexityIntermediate, counts
	default:
		return ComplexityBasic, counts
	}
}
