package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/blackwell-systems/devgauge/internal/github"
)

// fakeProfiles is an in-memory ProfileProvider.
type fakeProfiles struct {
	user     *github.User
	userErr  error
	repos    []github.Repository
	reposErr error
}

func (f *fakeProfiles) User(ctx context.Context, login string) (*github.User, error) {
	return f.user, f.userErr
}

func (f *fakeProfiles) Repositories(ctx context.Context, login string) ([]github.Repository, error) {
	return f.repos, f.reposErr
}

func newTestAnalyzer(profiles *fakeProfiles) *RepositoryAnalyzer {
	scorer := NewAttributionScorer(&fakeCommits{}, 2)
	return NewRepositoryAnalyzer(profiles, scorer)
}

func TestAnalyze_UserLookupFailureIsTerminal(t *testing.T) {
	profiles := &fakeProfiles{userErr: github.ErrNotFound}
	_, err := newTestAnalyzer(profiles).Analyze(context.Background(), "ghost", nil)
	if err == nil {
		t.Fatal("expected error for missing user")
	}
	if !errors.Is(err, github.ErrNotFound) {
		t.Errorf("expected ErrNotFound in chain, got %v", err)
	}
}

func TestAnalyze_RepoListFailureDegrades(t *testing.T) {
	profiles := &fakeProfiles{
		user:     &github.User{Login: "ghost", PublicRepos: 3},
		reposErr: errors.New("rate limited"),
	}
	summary, err := newTestAnalyzer(profiles).Analyze(context.Background(), "ghost", nil)
	if err != nil {
		t.Fatalf("repo listing failure must not be terminal: %v", err)
	}
	if summary.OriginalRepos != 0 || summary.PublicRepos != 3 {
		t.Errorf("summary = %+v", summary)
	}
	// The attribution still runs on the empty list.
	if summary.Attribution.AIPercentage != 30 {
		t.Errorf("attribution ai = %d, want default 30", summary.Attribution.AIPercentage)
	}
}

func TestAnalyze_ForksExcludedEverywhere(t *testing.T) {
	profiles := &fakeProfiles{
		user: &github.User{Login: "ghost", PublicRepos: 4},
		repos: []github.Repository{
			{Name: "mine", Language: "Go", StargazersCount: 3, ForksCount: 1},
			{Name: "theirs", Language: "Python", StargazersCount: 500, ForksCount: 90, Fork: true},
		},
	}
	summary, err := newTestAnalyzer(profiles).Analyze(context.Background(), "ghost", nil)
	if err != nil {
		t.Fatal(err)
	}
	if summary.OriginalRepos != 1 {
		t.Errorf("original repos = %d, want 1", summary.OriginalRepos)
	}
	if summary.TotalStars != 3 || summary.TotalForks != 1 {
		t.Errorf("stars/forks = %d/%d, want 3/1", summary.TotalStars, summary.TotalForks)
	}
	if len(summary.Languages) != 1 || summary.Languages["Go"] != 1 {
		t.Errorf("languages = %v", summary.Languages)
	}
}

func TestAnalyze_UniqueProjectRules(t *testing.T) {
	profiles := &fakeProfiles{
		user: &github.User{Login: "ghost"},
		repos: []github.Repository{
			// Stars qualify regardless of description or recency.
			{Name: "starred", StargazersCount: 7, UpdatedAt: "2020-01-01T00:00:00Z"},
			// Description plus a recent update qualifies.
			{Name: "recent", Description: "a tool", UpdatedAt: "2025-03-01T00:00:00Z"},
			// Description but stale: excluded.
			{Name: "stale", Description: "old tool", UpdatedAt: "2019-06-01T00:00:00Z"},
			// Recent but undescribed: excluded.
			{Name: "bare", UpdatedAt: "2025-03-01T00:00:00Z"},
		},
	}
	summary, err := newTestAnalyzer(profiles).Analyze(context.Background(), "ghost", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(summary.UniqueProjects) != 2 {
		t.Fatalf("unique projects = %+v, want 2", summary.UniqueProjects)
	}
	// Sorted by stars descending.
	if summary.UniqueProjects[0].Name != "starred" || summary.UniqueProjects[1].Name != "recent" {
		t.Errorf("order = %s, %s", summary.UniqueProjects[0].Name, summary.UniqueProjects[1].Name)
	}
	// Fallback fields.
	if summary.UniqueProjects[0].Description != "No description" {
		t.Errorf("description = %q", summary.UniqueProjects[0].Description)
	}
	if summary.UniqueProjects[0].Language != "Unknown" {
		t.Errorf("language = %q", summary.UniqueProjects[0].Language)
	}
}

func TestAnalyze_SkillsRankedByUsage(t *testing.T) {
	profiles := &fakeProfiles{
		user: &github.User{Login: "ghost"},
		repos: []github.Repository{
			{Name: "a", Language: "Python"},
			{Name: "b", Language: "Python"},
			{Name: "c", Language: "Go"},
			{Name: "d", Language: "Go"},
			{Name: "e", Language: "Go"},
			{Name: "f", Language: "Rust"},
		},
	}
	summary, err := newTestAnalyzer(profiles).Analyze(context.Background(), "ghost", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Go", "Python", "Rust"}
	if len(summary.Skills) != len(want) {
		t.Fatalf("skills = %v", summary.Skills)
	}
	for i := range want {
		if summary.Skills[i] != want[i] {
			t.Errorf("skills[%d] = %s, want %s", i, summary.Skills[i], want[i])
		}
	}
	if summary.TopLanguage != "Go" {
		t.Errorf("top language = %s, want Go", summary.TopLanguage)
	}
}
