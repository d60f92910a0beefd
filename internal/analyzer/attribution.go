package analyzer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/devgauge/internal/github"
)

// attributionRepoLimit bounds how many non-fork repositories the scorer
// fetches commit history for.
const attributionRepoLimit = 20

// defaultFetchConcurrency is the worker-pool size for commit fetches.
const defaultFetchConcurrency = 5

// Default split when no evidence is available at all.
const (
	defaultAIPercentage    = 30
	defaultHumanPercentage = 70
)

// Commit-message vocabulary. Technical terms are strong human signals;
// short generic phrases lean toward assisted or low-effort commits.
var (
	technicalCommitTerms = []string{"implement", "refactor", "optimize", "debug", "algorithm", "model", "train", "architecture", "pipeline", "fix bug", "improve performance"}
	genericCommitPhrases = []string{"initial commit", "update", "fix"}
	mlRoleTerms          = []string{"ml", "ai", "vision", "computer vision", "machine learning", "data science"}
	complexDomains       = []string{"ML/AI", "Computer Vision", "Data Science"}
)

// Signal tags recorded while scoring. SmartUsage fires when at least two
// distinct tags are present.
const (
	signalSelfAware            = "self_aware"
	signalTechnicalCommits     = "technical_commits"
	signalDetailedCommits      = "detailed_commits"
	signalIterativeDevelopment = "iterative_development"
	signalConsistentActivity   = "consistent_activity"
)

// CommitProvider supplies recent commit history for one repository. A
// per-repository failure is treated as "contributes zero signal" and
// never aborts the batch.
type CommitProvider interface {
	Commits(ctx context.Context, owner, repo string) ([]github.Commit, error)
}

// AttributionScorer combines commit-message heuristics, activity
// patterns, a domain bonus, and self-reported honesty signals into an
// AI-vs-human split.
type AttributionScorer struct {
	commits     CommitProvider
	concurrency int
}

// NewAttributionScorer creates a scorer that fetches commit histories
// through the given provider with at most concurrency parallel fetches.
// A concurrency of zero or less falls back to the default pool size.
func NewAttributionScorer(commits CommitProvider, concurrency int) *AttributionScorer {
	if concurrency <= 0 {
		concurrency = defaultFetchConcurrency
	}
	return &AttributionScorer{commits: commits, concurrency: concurrency}
}

// repoSignal is the per-repository contribution to the overall counters.
// Counters merge by commutative addition and tags by set union, so the
// merge order does not affect the result.
type repoSignal struct {
	ai    int
	human int
	tags  []string
}

// Score produces the attribution split for a subject. The repository
// list is the provider-given "recently updated" order; profile may be
// nil.
func (s *AttributionScorer) Score(ctx context.Context, repos []github.Repository, username string, profile *SelfProfile) Attribution {
	var explanations []string
	tagSet := make(map[string]bool)

	domains := DetectDomains(repos)

	// A self-described ML/vision/data role prepends those domains rather
	// than replacing the detected list.
	if profile != nil && profile.DeveloperRole != "" {
		explanations = append(explanations, "Self-described: "+profile.DeveloperRole)
		if containsAny(strings.ToLower(profile.DeveloperRole), mlRoleTerms) {
			domains = append([]string{"ML/AI", "Computer Vision"}, domains...)
		}
	}

	complexity, counts := ClassifyComplexity(repos)

	domainBonus := 0
	if intersects(domains, complexDomains) {
		domainBonus += 3
		explanations = append(explanations, fmt.Sprintf("Domain: %s - complex technical work", strings.Join(firstN(domains, 2), ", ")))
	}
	if complexity == ComplexityAdvanced {
		domainBonus += 2
		explanations = append(explanations, fmt.Sprintf("Advanced code complexity - %d advanced projects", counts.Advanced))
	}

	if profile != nil {
		if profile.CoreSkills != "" {
			explanations = append(explanations, "Core skills: "+truncate(profile.CoreSkills, 100))
		}
		if profile.Weaknesses != "" {
			explanations = append(explanations, "Uses AI help for: "+truncate(profile.Weaknesses, 100))
			// Honesty about weaknesses earns a small bonus.
			domainBonus++
			tagSet[signalSelfAware] = true
		}
	}

	ai, human := s.scoreCommitActivity(ctx, repos, username, tagSet)

	human += domainBonus

	aiPct, humanPct := splitPercentages(ai, human)

	summary := buildUsageSummary(profile, domains, complexity, tagSet, humanPct)
	explanations = append(explanations, bandExplanation(humanPct))
	improvements := buildImprovements(humanPct, complexity)

	return Attribution{
		AIPercentage:    aiPct,
		HumanPercentage: humanPct,
		UsageSummary:    summary,
		Explanations:    explanations,
		Improvements:    improvements,
		SmartUsage:      len(tagSet) >= 2,
		Domains:         domains,
		ComplexityLevel: complexity,
	}
}

// scoreCommitActivity fetches commit histories for up to 20 non-fork
// repositories in parallel and merges per-repository signals. Fetch
// failures contribute zero signal.
func (s *AttributionScorer) scoreCommitActivity(ctx context.Context, repos []github.Repository, username string, tagSet map[string]bool) (ai, human int) {
	var targets []github.Repository
	for _, repo := range repos {
		if len(targets) >= attributionRepoLimit {
			break
		}
		if repo.Fork {
			continue
		}
		targets = append(targets, repo)
	}

	signals := make([]repoSignal, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, repo := range targets {
		i, repo := i, repo
		g.Go(func() error {
			commits, err := s.commits.Commits(gctx, username, repo.Name)
			if err != nil {
				// Skipped repo; the rest of the batch proceeds.
				return nil
			}
			signals[i] = scoreRepoCommits(commits)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes the pool.
	_ = g.Wait()

	for _, sig := range signals {
		ai += sig.ai
		human += sig.human
		for _, tag := range sig.tags {
			tagSet[tag] = true
		}
	}
	return ai, human
}

// scoreRepoCommits scores one repository's recent commit history.
func scoreRepoCommits(commits []github.Commit) repoSignal {
	var sig repoSignal

	for _, c := range commits {
		msg := strings.ToLower(c.Message)
		switch {
		case containsAny(msg, technicalCommitTerms):
			sig.human += 2
			sig.tags = append(sig.tags, signalTechnicalCommits)
		case len(c.Message) < 20 && containsAny(msg, genericCommitPhrases):
			sig.ai++
		case len(c.Message) > 30:
			sig.human++
			sig.tags = append(sig.tags, signalDetailedCommits)
		}
	}

	// Iterative development: many commits in the recent window.
	if len(commits) > 10 {
		sig.human += 3
		sig.tags = append(sig.tags, signalIterativeDevelopment)
	}

	// Consistent activity: commits spread over distinct timestamps.
	distinct := make(map[string]bool)
	for i, c := range commits {
		if i >= 10 {
			break
		}
		distinct[c.AuthorDate] = true
	}
	if len(distinct) > 5 {
		sig.human += 2
		sig.tags = append(sig.tags, signalConsistentActivity)
	}

	return sig
}

// splitPercentages converts raw indicator counts into a percentage split.
// The AI share is rounded and the human share is its complement, so the
// two always sum to exactly 100.
func splitPercentages(ai, human int) (aiPct, humanPct int) {
	total := ai + human
	if total == 0 {
		return defaultAIPercentage, defaultHumanPercentage
	}
	aiPct = int(math.Round(float64(ai) / float64(total) * 100))
	return aiPct, 100 - aiPct
}

// buildUsageSummary assembles the ordered human-readable summary lines.
func buildUsageSummary(profile *SelfProfile, domains []string, complexity ComplexityLevel, tagSet map[string]bool, humanPct int) []string {
	var summary []string

	if profile != nil && profile.DeveloperRole != "" {
		summary = append(summary, profile.DeveloperRole)
	}
	if len(domains) > 0 {
		summary = append(summary, "Specializes in: "+strings.Join(firstN(domains, 2), ", "))
	}
	if complexity == ComplexityAdvanced {
		summary = append(summary, "Writes advanced/complex code - not simple copy-paste")
	}
	if tagSet[signalSelfAware] {
		summary = append(summary, "Self-aware about strengths and areas using AI help")
	}
	if tagSet[signalTechnicalCommits] {
		summary = append(summary, "Technical commit messages - understands implementation details")
	}
	if tagSet[signalIterativeDevelopment] {
		summary = append(summary, "Iterative development - builds and improves over time")
	}
	if tagSet[signalConsistentActivity] {
		summary = append(summary, "Consistent coding activity - regular development")
	}

	switch {
	case humanPct > 70:
		summary = append(summary, "Strong original work - writes own code, uses AI as helper")
	case humanPct > 50:
		summary = append(summary, "Balanced AI usage - uses AI smartly as coding assistant")
	default:
		summary = append(summary, "High AI assistance detected - may benefit from more hands-on coding")
	}

	return summary
}

// bandExplanation returns the explanation line for a human-share band.
func bandExplanation(humanPct int) string {
	switch {
	case humanPct > 70:
		return "Uses AI for: syntax help, debugging, optimization suggestions"
	case humanPct > 50:
		return "Uses AI for: code suggestions, refactoring, problem-solving"
	default:
		return "Suggestion: try implementing more features from scratch"
	}
}

// buildImprovements returns improvement suggestions for low human share
// or basic complexity.
func buildImprovements(humanPct int, complexity ComplexityLevel) []string {
	var improvements []string
	if humanPct < 60 {
		improvements = append(improvements,
			"Write more detailed commit messages explaining your changes",
			"Break large changes into smaller, incremental commits",
		)
	}
	if complexity == ComplexityBasic {
		improvements = append(improvements, "Take on more complex projects in your domain")
	}
	return improvements
}

// intersects reports whether the two string slices share any element.
func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// firstN returns at most the first n elements of s.
func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
