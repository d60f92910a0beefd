package analyzer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/blackwell-systems/devgauge/internal/github"
)

// fakeCommits returns canned commit lists per repository name.
type fakeCommits struct {
	mu      sync.Mutex
	byRepo  map[string][]github.Commit
	err     error
	calls   int
	maxSeen int
	active  int
}

func (f *fakeCommits) Commits(ctx context.Context, owner, repo string) ([]github.Commit, error) {
	f.mu.Lock()
	f.calls++
	f.active++
	if f.active > f.maxSeen {
		f.maxSeen = f.active
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if f.err != nil {
		return nil, f.err
	}
	return f.byRepo[repo], nil
}

func TestScore_NoEvidenceUsesDefaults(t *testing.T) {
	scorer := NewAttributionScorer(&fakeCommits{}, 2)
	attr := scorer.Score(context.Background(), nil, "ghost", nil)

	if attr.AIPercentage != 30 || attr.HumanPercentage != 70 {
		t.Errorf("expected default 30/70, got %d/%d", attr.AIPercentage, attr.HumanPercentage)
	}
	if attr.SmartUsage {
		t.Error("expected no smart usage with no signals")
	}
	if attr.ComplexityLevel != ComplexityIntermediate {
		t.Errorf("expected intermediate, got %s", attr.ComplexityLevel)
	}
	if len(attr.Domains) != 1 || attr.Domains[0] != GeneralDevelopment {
		t.Errorf("expected general development, got %v", attr.Domains)
	}
}

func TestScore_PercentagesAlwaysSumTo100(t *testing.T) {
	commits := &fakeCommits{byRepo: map[string][]github.Commit{
		"proj": {
			{Message: "implement new training algorithm for the model"},
			{Message: "update"},
			{Message: "fix"},
		},
	}}
	scorer := NewAttributionScorer(commits, 2)
	repos := []github.Repository{{Name: "proj"}}

	attr := scorer.Score(context.Background(), repos, "ghost", nil)
	if attr.AIPercentage+attr.HumanPercentage != 100 {
		t.Errorf("percentages must sum to 100, got %d + %d", attr.AIPercentage, attr.HumanPercentage)
	}
}

func TestScore_TechnicalCommitsLeanHuman(t *testing.T) {
	commits := &fakeCommits{byRepo: map[string][]github.Commit{
		"proj": {
			{Message: "refactor pipeline architecture"},
			{Message: "optimize inference speed"},
			{Message: "debug training loop divergence"},
		},
	}}
	scorer := NewAttributionScorer(commits, 2)
	repos := []github.Repository{{Name: "proj"}}

	attr := scorer.Score(context.Background(), repos, "ghost", nil)
	if attr.HumanPercentage <= attr.AIPercentage {
		t.Errorf("technical commits should favor human, got %d/%d", attr.AIPercentage, attr.HumanPercentage)
	}
}

func TestScore_GenericShortCommitsLeanAI(t *testing.T) {
	commits := &fakeCommits{byRepo: map[string][]github.Commit{
		"proj": {
			{Message: "update"},
			{Message: "fix"},
			{Message: "initial commit"},
		},
	}}
	scorer := NewAttributionScorer(commits, 2)
	repos := []github.Repository{{Name: "proj"}}

	attr := scorer.Score(context.Background(), repos, "ghost", nil)
	if attr.AIPercentage != 100 {
		t.Errorf("only AI signals present, expected 100%% AI, got %d", attr.AIPercentage)
	}
}

func TestScore_FetchFailureContributesNothing(t *testing.T) {
	commits := &fakeCommits{err: errors.New("rate limited")}
	scorer := NewAttributionScorer(commits, 2)
	repos := []github.Repository{{Name: "a"}, {Name: "b"}}

	attr := scorer.Score(context.Background(), repos, "ghost", nil)
	if attr.AIPercentage != 30 || attr.HumanPercentage != 70 {
		t.Errorf("failed fetches should fall back to defaults, got %d/%d", attr.AIPercentage, attr.HumanPercentage)
	}
}

func TestScore_ConcurrencyBounded(t *testing.T) {
	commits := &fakeCommits{}
	scorer := NewAttributionScorer(commits, 3)

	var repos []github.Repository
	for i := 0; i < 15; i++ {
		repos = append(repos, github.Repository{Name: "repo"})
	}
	scorer.Score(context.Background(), repos, "ghost", nil)

	if commits.calls != 15 {
		t.Errorf("expected 15 fetches, got %d", commits.calls)
	}
	if commits.maxSeen > 3 {
		t.Errorf("expected at most 3 concurrent fetches, saw %d", commits.maxSeen)
	}
}

func TestScore_RepoLimitAndForkSkip(t *testing.T) {
	commits := &fakeCommits{}
	scorer := NewAttributionScorer(commits, 4)

	var repos []github.Repository
	for i := 0; i < 30; i++ {
		repos = append(repos, github.Repository{Name: "r", Fork: i%2 == 0})
	}
	scorer.Score(context.Background(), repos, "ghost", nil)

	if commits.calls != 15 {
		t.Errorf("expected 15 non-fork fetches, got %d", commits.calls)
	}
}

func TestScore_ProfileWeaknessesGrantSelfAwareTag(t *testing.T) {
	scorer := NewAttributionScorer(&fakeCommits{}, 2)
	profile := &SelfProfile{
		DeveloperRole: "ML engineer",
		Weaknesses:    "CSS and frontend styling",
	}

	attr := scorer.Score(context.Background(), nil, "ghost", profile)

	// ML role prepends the vision domains.
	if len(attr.Domains) < 2 || attr.Domains[0] != "ML/AI" || attr.Domains[1] != "Computer Vision" {
		t.Errorf("expected ML domains prepended, got %v", attr.Domains)
	}
	// self_aware alone is one distinct tag: not yet smart usage.
	if attr.SmartUsage {
		t.Error("one tag should not count as smart usage")
	}
	// Honesty bonus pushes human indicators above zero.
	if attr.HumanPercentage != 100 {
		t.Errorf("only human indicators present, expected 100%% human, got %d", attr.HumanPercentage)
	}
}

func TestScore_SmartUsageNeedsTwoDistinctSignals(t *testing.T) {
	commits := &fakeCommits{byRepo: map[string][]github.Commit{
		"proj": {
			{Message: "implement attention mechanism in the decoder stack"},
		},
	}}
	scorer := NewAttributionScorer(commits, 2)
	repos := []github.Repository{{Name: "proj"}}
	profile := &SelfProfile{Weaknesses: "docs"}

	attr := scorer.Score(context.Background(), repos, "ghost", profile)
	if !attr.SmartUsage {
		t.Error("self_aware + technical_commits should fire smart usage")
	}
}

func TestScore_ImprovementsForLowHumanShare(t *testing.T) {
	commits := &fakeCommits{byRepo: map[string][]github.Commit{
		"proj": {{Message: "update"}},
	}}
	scorer := NewAttributionScorer(commits, 1)
	repos := []github.Repository{{Name: "proj", Description: "simple tutorial practice"}}

	attr := scorer.Score(context.Background(), repos, "ghost", nil)
	if len(attr.Improvements) != 3 {
		t.Errorf("expected 2 low-human + 1 basic-complexity improvements, got %v", attr.Improvements)
	}
}
