// Package portfolio orchestrates the full analysis pipeline: GitHub
// repository analysis, the derived career and skill assessments, the
// AI-usage breakdown, and the optional LinkedIn and Devpost sections,
// assembled into one Result record.
package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/devgauge/internal/analyzer"
	"github.com/blackwell-systems/devgauge/internal/devpost"
	"github.com/blackwell-systems/devgauge/internal/github"
	"github.com/blackwell-systems/devgauge/internal/insight"
)

// GitHubProvider is the full GitHub surface the pipeline needs.
type GitHubProvider interface {
	User(ctx context.Context, login string) (*github.User, error)
	Repositories(ctx context.Context, login string) ([]github.Repository, error)
	Commits(ctx context.Context, owner, repo string) ([]github.Commit, error)
}

// DevpostProvider fetches hackathon stats for a profile URL.
type DevpostProvider interface {
	Profile(ctx context.Context, url string) (*devpost.Stats, error)
}

// Request names the profiles to analyze. GitHubURL is required and may
// be a full profile URL or a bare username; the other URLs and the
// self-profile are optional.
type Request struct {
	GitHubURL   string                `json:"github_url"`
	LinkedInURL string                `json:"linkedin_url,omitempty"`
	DevpostURL  string                `json:"devpost_url,omitempty"`
	Profile     *analyzer.SelfProfile `json:"profile,omitempty"`
}

// LinkedIn is the stored-not-scraped LinkedIn section. Scraping
// LinkedIn violates their terms of service, so the URL is only
// validated and recorded.
type LinkedIn struct {
	ProfileURL string `json:"profile_url"`
	Note       string `json:"note"`
	Valid      bool   `json:"valid"`
}

// AIUsageOverall is the top-line attribution split with its assessment.
type AIUsageOverall struct {
	AIPercentage    int    `json:"ai_percentage"`
	HumanPercentage int    `json:"human_percentage"`
	Assessment      string `json:"assessment"`
}

// AIUsageBreakdown bundles every view of the attribution split: the
// raw categorization, the display breakdown, and the presentation
// payloads.
type AIUsageBreakdown struct {
	Overall                AIUsageOverall               `json:"overall"`
	Core                   analyzer.TaskGroup           `json:"core"`
	Supporting             analyzer.TaskGroup           `json:"supporting"`
	Categories             []analyzer.CategoryBreakdown `json:"categories"`
	CategoryCards          []insight.CategoryCard       `json:"category_cards"`
	StackedBar             insight.StackedBarData       `json:"stacked_bar_data"`
	SelfAwareness          analyzer.SelfAwareness       `json:"self_awareness"`
	EmployerSummary        insight.EmployerSummary      `json:"employer_summary"`
	MotivationalMessage    insight.MotivationalMessage  `json:"motivational_message"`
	ImprovementSuggestions []insight.Suggestion         `json:"improvement_suggestions"`
}

// Result is the complete portfolio analysis for one subject.
type Result struct {
	AnalyzedAt       time.Time                 `json:"analyzed_at"`
	Profile          *analyzer.SelfProfile     `json:"user_profile,omitempty"`
	GitHub           *analyzer.Summary         `json:"github"`
	LinkedIn         *LinkedIn                 `json:"linkedin,omitempty"`
	Devpost          *devpost.Stats            `json:"devpost,omitempty"`
	CareerAssessment analyzer.CareerAssessment `json:"career_assessment"`
	JobReadiness     analyzer.JobReadiness     `json:"job_readiness"`
	Skills           analyzer.SkillBuckets     `json:"skills_analysis"`
	Journey          analyzer.Journey          `json:"journey"`
	AIUsage          AIUsageBreakdown          `json:"ai_usage_breakdown"`
	OverallScore     int                       `json:"overall_score"`
}

// Analyzer runs the full pipeline.
type Analyzer struct {
	gh          GitHubProvider
	devpost     DevpostProvider
	clock       func() time.Time
	concurrency int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock replaces the timestamp source; tests use this for
// deterministic output.
func WithClock(clock func() time.Time) Option {
	return func(a *Analyzer) {
		a.clock = clock
	}
}

// WithFetchConcurrency bounds the parallel commit-history fetches.
// Zero or less keeps the attribution scorer's default pool size.
func WithFetchConcurrency(n int) Option {
	return func(a *Analyzer) {
		a.concurrency = n
	}
}

// New creates the pipeline over the given providers. dp may be nil
// when Devpost analysis is not wanted.
func New(gh GitHubProvider, dp DevpostProvider, opts ...Option) *Analyzer {
	a := &Analyzer{gh: gh, devpost: dp, clock: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the pipeline for one request. A missing GitHub subject
// is the only terminal failure; LinkedIn validation and Devpost
// fetches degrade to absent sections.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Result, error) {
	login, err := github.ParseProfileURL(req.GitHubURL)
	if err != nil {
		return nil, fmt.Errorf("parsing github url: %w", err)
	}

	scorer := analyzer.NewAttributionScorer(a.gh, a.concurrency)
	repoAnalyzer := analyzer.NewRepositoryAnalyzer(a.gh, scorer)

	summary, err := repoAnalyzer.Analyze(ctx, login, req.Profile)
	if err != nil {
		return nil, err
	}

	result := &Result{
		AnalyzedAt: a.clock().UTC(),
		Profile:    req.Profile,
		GitHub:     summary,
	}

	result.CareerAssessment = analyzer.AssessCareerStage(summary, req.Profile)
	result.JobReadiness = analyzer.CalculateJobReadiness(summary)
	result.Skills = analyzer.AnalyzeSkillProficiency(summary, req.Profile)
	result.Journey = analyzer.ExtractJourney(summary, req.Profile)

	categorization := analyzer.Categorize(req.Profile, summary.Attribution.Domains, summary.Attribution.AIPercentage)
	breakdown := analyzer.CalculateBreakdown(categorization)

	result.AIUsage = AIUsageBreakdown{
		Overall: AIUsageOverall{
			AIPercentage:    summary.Attribution.AIPercentage,
			HumanPercentage: summary.Attribution.HumanPercentage,
			Assessment:      breakdown.OverallAssessment,
		},
		Core:                   categorization.Core,
		Supporting:             categorization.Supporting,
		Categories:             breakdown.Categories,
		CategoryCards:          insight.GenerateCategoryCards(breakdown),
		StackedBar:             insight.GenerateStackedBarData(breakdown),
		SelfAwareness:          analyzer.CalculateSelfAwareness(req.Profile),
		EmployerSummary:        insight.GenerateEmployerSummary(breakdown),
		MotivationalMessage:    insight.GenerateMotivationalMessage(breakdown),
		ImprovementSuggestions: insight.GenerateImprovementSuggestions(breakdown),
	}

	if req.LinkedInURL != "" {
		result.LinkedIn = validateLinkedIn(req.LinkedInURL)
	}

	if req.DevpostURL != "" && a.devpost != nil {
		// A Devpost failure drops the section rather than the analysis.
		if stats, err := a.devpost.Profile(ctx, req.DevpostURL); err == nil {
			result.Devpost = stats
		}
	}

	result.OverallScore = overallScore(result)

	return result, nil
}

// validateLinkedIn records the URL without fetching it.
func validateLinkedIn(url string) *LinkedIn {
	li := &LinkedIn{ProfileURL: url}
	if strings.Contains(url, "linkedin.com") {
		li.Valid = true
		li.Note = "LinkedIn profile link (not scraped - respecting TOS)"
	} else {
		li.Note = "Invalid LinkedIn URL"
	}
	return li
}

// overallScore prefers the job-readiness score; the fallback formula
// only applies when readiness produced nothing, which cannot happen
// with a successful GitHub analysis but keeps the scoring total when
// sections are added independently.
func overallScore(result *Result) int {
	if result.JobReadiness.OverallScore > 0 {
		return minInt(result.JobReadiness.OverallScore, 100)
	}

	score := 0
	if result.GitHub != nil {
		score += minInt(result.GitHub.PublicRepos*2, 50)
		score += minInt(result.GitHub.TotalStars*5, 30)
	}
	if result.Devpost != nil {
		score += result.Devpost.Wins * 10
	}
	return minInt(score, 100)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
