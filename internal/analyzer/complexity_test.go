package analyzer

import (
	"testing"

	"github.com/blackwell-systems/devgauge/internal/github"
)

func TestClassifyComplexity_EmptyDefaultsIntermediate(t *testing.T) {
	level, counts := ClassifyComplexity(nil)
	if level != ComplexityIntermediate {
		t.Errorf("expected intermediate, got %s", level)
	}
	if counts.Advanced != 0 || counts.Intermediate != 0 || counts.Basic != 0 {
		t.Errorf("expected zero counts, got %+v", counts)
	}
}

func TestClassifyComplexity_FirstMatchWins(t *testing.T) {
	// Mentions both "algorithm" (advanced) and "tutorial" (basic); the
	// repo counts only as advanced.
	repos := []github.Repository{
		{Name: "algorithm-tutorial", Description: ""},
	}
	level, counts := ClassifyComplexity(repos)
	if level != ComplexityAdvanced {
		t.Errorf("expected advanced, got %s", level)
	}
	if counts.Advanced != 1 || counts.Basic != 0 {
		t.Errorf("expected advanced=1 basic=0, got %+v", counts)
	}
}

func TestClassifyComplexity_MajorityRules(t *testing.T) {
	repos := []github.Repository{
		{Name: "api-service", Description: ""},
		{Name: "auth-module", Description: "authentication component"},
		{Name: "simple-practice", Description: "learning"},
	}
	level, counts := ClassifyComplexity(repos)
	if level != ComplexityIntermediate {
		t.Errorf("expected intermediate, got %s (counts %+v)", level, counts)
	}
}

func TestClassifyComplexity_BasicWhenNothingOutranks(t *testing.T) {
	repos := []github.Repository{
		{Name: "practice-repo", Description: "simple tutorial"},
	}
	level, _ := ClassifyComplexity(repos)
	if level != ComplexityBasic {
		t.Errorf("expected basic, got %s", level)
	}
}

func TestClassifyComplexity_ForksSkipped(t *testing.T) {
	repos := []github.Repository{
		{Name: "neural-engine", Description: "optimization framework", Fork: true},
	}
	level, counts := ClassifyComplexity(repos)
	if level != ComplexityIntermediate {
		t.Errorf("expected intermediate default, got %s", level)
	}
	if counts.Advanced != 0 {
		t.Errorf("forked repo must not count, got %+v", counts)
	}
}

func TestClassifyComplexity_LimitTwentyRepos(t *testing.T) {
	// 20 unmatched repos fill the window; the advanced repo at index 20
	// is never inspected.
	var repos []github.Repository
	for i := 0; i < 20; i++ {
		repos = append(repos, github.Repository{Name: "misc", Description: "stuff"})
	}
	repos = append(repos, github.Repository{Name: "neural-pipeline", Description: "algorithm"})

	level, counts := ClassifyComplexity(repos)
	if counts.Advanced != 0 {
		t.Errorf("repo beyond the window counted: %+v", counts)
	}
	if level != ComplexityIntermediate {
		t.Errorf("expected intermediate default, got %s", level)
	}
}
