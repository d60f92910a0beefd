package store

import (
	"testing"
	"time"

	"github.com/blackwell-systems/devgauge/internal/analyzer"
	"github.com/blackwell-systems/devgauge/internal/portfolio"
)

func testResult(username string, score int, analyzedAt time.Time) *portfolio.Result {
	return &portfolio.Result{
		AnalyzedAt: analyzedAt,
		GitHub: &analyzer.Summary{
			Username:      username,
			OriginalRepos: 5,
			TotalStars:    12,
			Languages:     map[string]int{"Python": 5},
			Attribution: analyzer.Attribution{
				AIPercentage:    35,
				HumanPercentage: 65,
				ComplexityLevel: analyzer.ComplexityIntermediate,
			},
		},
		CareerAssessment: analyzer.CareerAssessment{Stage: analyzer.StageIntermediate},
		JobReadiness:     analyzer.JobReadiness{OverallScore: score},
		OverallScore:     score,
	}
}

func TestInsertAndGetRuns(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if _, err := db.InsertRun(testResult("ghost", 60, base), "test"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.InsertRun(testResult("ghost", 72, base.Add(time.Hour)), "test"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.InsertRun(testResult("other", 40, base.Add(2*time.Hour)), "test"); err != nil {
		t.Fatal(err)
	}

	runs, err := db.GetRecentRuns("ghost", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs for ghost, got %d", len(runs))
	}
	// Newest first.
	if runs[0].OverallScore != 72 || runs[1].OverallScore != 60 {
		t.Errorf("order = %d, %d", runs[0].OverallScore, runs[1].OverallScore)
	}
	if runs[0].CareerStage != "intermediate" || runs[0].HumanPercentage != 65 {
		t.Errorf("run = %+v", runs[0])
	}
	if runs[0].ResultJSON == "" {
		t.Error("expected full result JSON stored")
	}
}

func TestGetRecentRuns_AllUsersAndLimit(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := db.InsertRun(testResult("ghost", 50+i, base.Add(time.Duration(i)*time.Hour)), "test"); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := db.GetRecentRuns("", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected limit of 3, got %d", len(runs))
	}
}

func TestGetLatestRun(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	latest, err := db.GetLatestRun("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Errorf("expected nil for empty database, got %+v", latest)
	}

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if _, err := db.InsertRun(testResult("ghost", 55, base), "test"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.InsertRun(testResult("ghost", 80, base.Add(time.Hour)), "test"); err != nil {
		t.Fatal(err)
	}

	latest, err = db.GetLatestRun("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.OverallScore != 80 {
		t.Errorf("latest = %+v, want score 80", latest)
	}
}
