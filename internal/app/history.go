package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devgauge/internal/config"
	"github.com/blackwell-systems/devgauge/internal/output"
	"github.com/blackwell-systems/devgauge/internal/store"
)

var (
	historyFlagUser  string
	historyFlagLimit int
	historyFlagJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past analysis runs and score trends",
	Long: `History lists saved analysis runs, newest first, with the change in
overall score and human-code share since the previous run for the same
subject.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyFlagUser, "user", "", "Only show runs for this username")
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	runs, err := db.GetRecentRuns(historyFlagUser, historyFlagLimit)
	if err != nil {
		return fmt.Errorf("loading runs: %w", err)
	}

	if historyFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println(output.StyleMuted.Render("No saved runs. Analyze a profile first."))
		return nil
	}

	fmt.Println(output.Section("Analysis History"))

	tbl := output.NewTable("When", "User", "Stage", "Score", "Trend", "Human%").AlignRight(3, 5)
	for i, r := range runs {
		trend := output.StyleMuted.Render("—")
		// Runs are newest first, so the next same-user row is the
		// previous run.
		for _, prev := range runs[i+1:] {
			if prev.Username == r.Username {
				trend = output.TrendArrow(r.OverallScore, prev.OverallScore)
				break
			}
		}
		tbl.AddRow(
			r.AnalyzedAt.Format("2006-01-02 15:04"),
			r.Username,
			r.CareerStage,
			fmt.Sprintf("%d", r.OverallScore),
			trend,
			fmt.Sprintf("%d%%", r.HumanPercentage),
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}
