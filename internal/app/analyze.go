package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devgauge/internal/analyzer"
	"github.com/blackwell-systems/devgauge/internal/config"
	"github.com/blackwell-systems/devgauge/internal/devpost"
	"github.com/blackwell-systems/devgauge/internal/github"
	"github.com/blackwell-systems/devgauge/internal/output"
	"github.com/blackwell-systems/devgauge/internal/portfolio"
	"github.com/blackwell-systems/devgauge/internal/store"
)

var (
	analyzeFlagLinkedIn string
	analyzeFlagDevpost  string
	analyzeFlagProfile  string
	analyzeFlagJSON     bool
	analyzeFlagNoSave   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <github-url-or-username>",
	Short: "Analyze a GitHub profile and build the portfolio report",
	Long: `Analyze fetches the subject's public GitHub profile, repositories,
and recent commit history, then runs the full assessment pipeline:
AI-vs-human attribution, career stage, job readiness, skill tiers,
learning journey, and the employer-facing AI usage breakdown.

An optional self-profile JSON file sharpens the attribution: honest
answers about strengths and weaknesses are rewarded, not penalized.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlagLinkedIn, "linkedin", "", "LinkedIn profile URL (validated and stored, never scraped)")
	analyzeCmd.Flags().StringVar(&analyzeFlagDevpost, "devpost", "", "Devpost profile URL")
	analyzeCmd.Flags().StringVar(&analyzeFlagProfile, "profile", "", "Path to self-profile JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeFlagJSON, "json", false, "Output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeFlagNoSave, "no-save", false, "Skip saving the run to the local database")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	profile, err := loadSelfProfile(analyzeFlagProfile)
	if err != nil {
		return err
	}

	ghOpts := []github.Option{
		github.WithBaseURL(cfg.GitHubAPIURL),
		github.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	}
	if cfg.GitHubToken != "" {
		ghOpts = append(ghOpts, github.WithToken(cfg.GitHubToken))
	}
	gh := github.NewClient(ghOpts...)
	dp := devpost.NewClient()

	pipeline := portfolio.New(gh, dp, portfolio.WithFetchConcurrency(cfg.Fetch.Concurrency))

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second)
	defer cancel()

	result, err := pipeline.Analyze(ctx, portfolio.Request{
		GitHubURL:   args[0],
		LinkedInURL: analyzeFlagLinkedIn,
		DevpostURL:  analyzeFlagDevpost,
		Profile:     profile,
	})
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			return fmt.Errorf("GitHub profile not found: %s", args[0])
		}
		return err
	}

	if !analyzeFlagNoSave {
		if err := saveRun(result); err != nil && flagVerbose {
			fmt.Fprintln(os.Stderr, "warning: saving run:", err)
		}
	}

	if analyzeFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderResult(result)
	return nil
}

// loadSelfProfile reads the optional self-profile JSON file.
func loadSelfProfile(path string) (*analyzer.SelfProfile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var profile analyzer.SelfProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return &profile, nil
}

// saveRun persists the result to the local run database.
func saveRun(result *portfolio.Result) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.InsertRun(result, appVersion)
	return err
}

func renderResult(result *portfolio.Result) {
	gh := result.GitHub

	fmt.Println(output.Section("Profile: " + gh.Username))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Public repos:"),
		output.StyleValue.Render(fmt.Sprintf("%d (%d original)", gh.PublicRepos, gh.OriginalRepos)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Stars / forks:"),
		output.StyleValue.Render(fmt.Sprintf("%d / %d", gh.TotalStars, gh.TotalForks)))
	if len(gh.Skills) > 0 {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Top languages:"),
			strings.Join(gh.Skills, ", "))
	}
	if len(gh.Attribution.Domains) > 0 {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Domains:"),
			strings.Join(gh.Attribution.Domains, ", "))
	}
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Complexity:"),
		string(gh.Attribution.ComplexityLevel))
	fmt.Println()

	fmt.Println(output.Section("AI vs Human Attribution"))
	fmt.Println(" " + output.PercentSplit(gh.Attribution.HumanPercentage, 30))
	for _, line := range gh.Attribution.UsageSummary {
		fmt.Println("   " + line)
	}
	fmt.Println()

	fmt.Println(output.Section("Career"))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Stage:"),
		output.StyleValue.Render(fmt.Sprintf("%s (%.0f%%)", result.CareerAssessment.Stage, result.CareerAssessment.Confidence*100)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Job readiness:"),
		result.JobReadiness.ReadinessLevel)
	fmt.Println(" " + output.ScoreBar(result.JobReadiness.OverallScore, 30))
	fmt.Println(" " + output.StyleMuted.Render(result.JobReadiness.ReadinessDescription))
	fmt.Println()

	renderBreakdownTable(result)
	renderSkills(result)
	renderProjects(result)
	renderDevpost(result)

	fmt.Println(output.Section("Summary for Employers"))
	fmt.Println(" " + output.StyleBold.Render(result.AIUsage.EmployerSummary.Headline))
	for _, point := range result.AIUsage.EmployerSummary.KeyPoints {
		fmt.Println("   - " + point)
	}
	fmt.Println(" " + output.StyleMuted.Render(result.AIUsage.EmployerSummary.Recommendation))
	fmt.Println()

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall score:"),
		output.ScoreBar(result.OverallScore, 30))
	fmt.Println()
}

func renderBreakdownTable(result *portfolio.Result) {
	fmt.Println(output.Section("Task Breakdown"))

	tbl := output.NewTable("Category", "Human", "AI", "Status").AlignRight(1, 2)
	for _, cat := range result.AIUsage.Categories {
		status := cat.Status
		switch cat.Status {
		case analyzer.StatusExcellent, analyzer.StatusGood:
			status = output.StyleSuccess.Render(cat.Status)
		case analyzer.StatusNeedsImprovement:
			status = output.StyleWarning.Render(cat.Status)
		}
		tbl.AddRow(cat.Name,
			fmt.Sprintf("%d%%", cat.HumanPercentage),
			fmt.Sprintf("%d%%", cat.AIPercentage),
			status)
	}
	tbl.Print()
	fmt.Println()
}

func renderSkills(result *portfolio.Result) {
	if len(result.Skills.Core) == 0 && len(result.Skills.Supporting) == 0 {
		return
	}
	fmt.Println(output.Section("Skills"))

	tbl := output.NewTable("Skill", "Tier", "Proficiency", "Uses").AlignRight(2, 3)
	for _, s := range result.Skills.Core {
		tbl.AddRow(s.Name, "core", fmt.Sprintf("%d", s.Proficiency), fmt.Sprintf("%d", s.UsageCount))
	}
	for _, s := range result.Skills.Supporting {
		tbl.AddRow(s.Name, "supporting", fmt.Sprintf("%d", s.Proficiency), fmt.Sprintf("%d", s.UsageCount))
	}
	for _, s := range result.Skills.Exploratory {
		tbl.AddRow(s.Name, "exploratory", fmt.Sprintf("%d", s.Proficiency), fmt.Sprintf("%d", s.UsageCount))
	}
	tbl.Print()
	fmt.Println()
}

func renderProjects(result *portfolio.Result) {
	if len(result.GitHub.UniqueProjects) == 0 {
		return
	}
	fmt.Println(output.Section("Notable Projects"))

	tbl := output.NewTable("Project", "Stars", "Language", "Description").AlignRight(1)
	for _, p := range result.GitHub.UniqueProjects {
		desc := p.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		tbl.AddRow(p.Name, fmt.Sprintf("%d", p.Stars), p.Language, desc)
	}
	tbl.Print()
	fmt.Println()
}

func renderDevpost(result *portfolio.Result) {
	if result.Devpost == nil {
		return
	}
	fmt.Println(output.Section("Hackathons"))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Participated:"),
		output.StyleValue.Render(fmt.Sprintf("%d", result.Devpost.HackathonsParticipated)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Wins:"),
		output.StyleValue.Render(fmt.Sprintf("%d (%.1f%%)", result.Devpost.Wins, result.Devpost.WinRate)))
	fmt.Println()
}
