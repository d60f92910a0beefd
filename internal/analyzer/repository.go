package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/blackwell-systems/devgauge/internal/github"
)

// maxSkills is the number of top languages surfaced as skills.
const maxSkills = 5

// maxUniqueProjects caps the portfolio-worthy project selection.
const maxUniqueProjects = 5

// recentYears is the recency window for the unique-project rule: a
// described repository counts as portfolio-worthy only if it was updated
// within these years.
var recentYears = []string{"2024", "2025"}

// ProfileProvider supplies the subject lookup and repository listing.
// User must distinguish "not found" (github.ErrNotFound, terminal for
// the whole pipeline) from an empty repository list (valid).
type ProfileProvider interface {
	User(ctx context.Context, login string) (*github.User, error)
	Repositories(ctx context.Context, login string) ([]github.Repository, error)
}

// RepositoryAnalyzer turns a raw repository listing into the full
// Summary record by composing domain detection, complexity
// classification, and attribution scoring.
type RepositoryAnalyzer struct {
	profiles ProfileProvider
	scorer   *AttributionScorer
}

// NewRepositoryAnalyzer creates an analyzer over the given providers.
func NewRepositoryAnalyzer(profiles ProfileProvider, scorer *AttributionScorer) *RepositoryAnalyzer {
	return &RepositoryAnalyzer{profiles: profiles, scorer: scorer}
}

// Analyze builds the Summary for one subject. A failed subject lookup is
// terminal and returns an error; every downstream field degrades
// gracefully instead of failing.
func (a *RepositoryAnalyzer) Analyze(ctx context.Context, login string, profile *SelfProfile) (*Summary, error) {
	user, err := a.profiles.User(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", login, err)
	}

	// A repository listing failure degrades to an empty list; only the
	// subject lookup is terminal.
	repos, err := a.profiles.Repositories(ctx, login)
	if err != nil {
		repos = nil
	}

	summary := &Summary{
		Username:    user.Login,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Languages:   make(map[string]int),
	}
	if summary.Username == "" {
		summary.Username = login
	}

	for _, repo := range repos {
		// Forked repositories never contribute to any score.
		if repo.Fork {
			continue
		}
		summary.OriginalRepos++

		if repo.Language != "" {
			summary.Languages[repo.Language]++
		}
		summary.TotalStars += repo.StargazersCount
		summary.TotalForks += repo.ForksCount

		if isUniqueProject(repo) {
			summary.UniqueProjects = append(summary.UniqueProjects, Project{
				Name:        repo.Name,
				Description: projectDescription(repo.Description),
				Stars:       repo.StargazersCount,
				Language:    projectLanguage(repo.Language),
				URL:         repo.HTMLURL,
			})
		}
	}

	// Most-starred projects first; provider order breaks ties.
	sort.SliceStable(summary.UniqueProjects, func(i, j int) bool {
		return summary.UniqueProjects[i].Stars > summary.UniqueProjects[j].Stars
	})
	if len(summary.UniqueProjects) > maxUniqueProjects {
		summary.UniqueProjects = summary.UniqueProjects[:maxUniqueProjects]
	}

	summary.Skills = rankLanguages(summary.Languages, maxSkills)
	if len(summary.Skills) > 0 {
		summary.TopLanguage = summary.Skills[0]
	}

	summary.Attribution = a.scorer.Score(ctx, repos, login, profile)

	return summary, nil
}

// isUniqueProject applies the portfolio-worthy rule: any stars, or a
// description plus a recent update.
func isUniqueProject(repo github.Repository) bool {
	if repo.StargazersCount > 0 {
		return true
	}
	if repo.Description == "" {
		return false
	}
	for _, year := range recentYears {
		if strings.HasPrefix(repo.UpdatedAt, year) {
			return true
		}
	}
	return false
}

func projectDescription(desc string) string {
	if desc == "" {
		return "No description"
	}
	return desc
}

func projectLanguage(lang string) string {
	if lang == "" {
		return "Unknown"
	}
	return lang
}

// rankLanguages returns up to n language names ordered by usage count
// descending, with name ascending breaking ties so the ranking is
// deterministic.
func rankLanguages(languages map[string]int, n int) []string {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(languages))
	for name, count := range languages {
		entries = append(entries, entry{name: name, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}
