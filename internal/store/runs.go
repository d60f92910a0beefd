package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/blackwell-systems/devgauge/internal/portfolio"
)

// Run is one persisted analysis run: the headline numbers as columns
// for cheap history queries, plus the full result as JSON.
type Run struct {
	ID              int64     `json:"id"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
	Username        string    `json:"username"`
	Version         string    `json:"version"`
	OverallScore    int       `json:"overall_score"`
	ReadinessScore  int       `json:"readiness_score"`
	CareerStage     string    `json:"career_stage"`
	AIPercentage    int       `json:"ai_percentage"`
	HumanPercentage int       `json:"human_percentage"`
	ComplexityLevel string    `json:"complexity_level"`
	OriginalRepos   int       `json:"original_repos"`
	TotalStars      int       `json:"total_stars"`
	ResultJSON      string    `json:"-"`
}

// InsertRun persists one analysis result and returns the row ID.
func (db *DB) InsertRun(result *portfolio.Result, version string) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("encoding result: %w", err)
	}

	res, err := db.conn.Exec(`
		INSERT INTO runs (
			analyzed_at, username, version, overall_score, readiness_score,
			career_stage, ai_percentage, human_percentage, complexity_level,
			original_repos, total_stars, result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.AnalyzedAt.Format(time.RFC3339),
		result.GitHub.Username,
		version,
		result.OverallScore,
		result.JobReadiness.OverallScore,
		string(result.CareerAssessment.Stage),
		result.GitHub.Attribution.AIPercentage,
		result.GitHub.Attribution.HumanPercentage,
		string(result.GitHub.Attribution.ComplexityLevel),
		result.GitHub.OriginalRepos,
		result.GitHub.TotalStars,
		string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	return res.LastInsertId()
}

// GetRecentRuns returns up to limit runs for the username, newest
// first. An empty username returns runs for every subject.
func (db *DB) GetRecentRuns(username string, limit int) ([]Run, error) {
	query := `
		SELECT id, analyzed_at, username, version, overall_score,
		       readiness_score, career_stage, ai_percentage, human_percentage,
		       complexity_level, original_repos, total_stars, result_json
		FROM runs`
	args := []any{}
	if username != "" {
		query += " WHERE username = ?"
		args = append(args, username)
	}
	query += " ORDER BY analyzed_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var analyzedAt string
		if err := rows.Scan(
			&r.ID, &analyzedAt, &r.Username, &r.Version, &r.OverallScore,
			&r.ReadinessScore, &r.CareerStage, &r.AIPercentage, &r.HumanPercentage,
			&r.ComplexityLevel, &r.OriginalRepos, &r.TotalStars, &r.ResultJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, analyzedAt); err == nil {
			r.AnalyzedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetLatestRun returns the most recent run for the username, or nil
// when none exists.
func (db *DB) GetLatestRun(username string) (*Run, error) {
	runs, err := db.GetRecentRuns(username, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
