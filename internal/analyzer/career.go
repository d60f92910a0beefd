package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// Stage is a career-stage classification.
type Stage string

const (
	StageBeginner     Stage = "beginner"
	StageIntermediate Stage = "intermediate"
	StageAdvanced     Stage = "advanced"
	StageExpert       Stage = "expert"
)

// stageOrder is the tie-break order when two stages score equally: the
// earlier (more conservative) stage wins.
var stageOrder = []Stage{StageBeginner, StageIntermediate, StageAdvanced, StageExpert}

// CareerAssessment is the career-stage classification with its
// supporting evidence and the raw per-stage scores.
type CareerAssessment struct {
	Stage      Stage         `json:"stage"`
	Confidence float64       `json:"confidence"`
	Evidence   []string      `json:"evidence"`
	Scores     map[Stage]int `json:"scores"`
}

// AssessCareerStage classifies the subject's career stage from seven
// additive factors over the repository summary. Confidence is the
// winning stage's share of all points, rounded to two decimals; with no
// points at all the result is beginner at 0.5.
func AssessCareerStage(summary *Summary, profile *SelfProfile) CareerAssessment {
	scores := map[Stage]int{
		StageBeginner:     0,
		StageIntermediate: 0,
		StageAdvanced:     0,
		StageExpert:       0,
	}
	var evidence []string

	// Factor 1: portfolio size.
	switch {
	case summary.OriginalRepos >= 20:
		scores[StageAdvanced] += 3
		scores[StageExpert] += 2
		evidence = append(evidence, fmt.Sprintf("%d original repositories - extensive portfolio", summary.OriginalRepos))
	case summary.OriginalRepos >= 10:
		scores[StageIntermediate] += 3
		scores[StageAdvanced] += 2
		evidence = append(evidence, fmt.Sprintf("%d original repositories - solid portfolio", summary.OriginalRepos))
	case summary.OriginalRepos >= 5:
		scores[StageBeginner] += 2
		scores[StageIntermediate] += 3
		evidence = append(evidence, fmt.Sprintf("%d original repositories - building portfolio", summary.OriginalRepos))
	default:
		scores[StageBeginner] += 3
		evidence = append(evidence, fmt.Sprintf("%d repositories - early stage portfolio", summary.OriginalRepos))
	}

	// Factor 2: project complexity.
	switch summary.Attribution.ComplexityLevel {
	case ComplexityAdvanced:
		scores[StageAdvanced] += 4
		scores[StageExpert] += 3
		evidence = append(evidence, "Advanced code complexity - tackles complex problems")
	case ComplexityIntermediate:
		scores[StageIntermediate] += 3
		scores[StageAdvanced] += 1
		evidence = append(evidence, "Intermediate complexity - solid technical skills")
	default:
		scores[StageBeginner] += 3
		evidence = append(evidence, "Basic complexity - learning fundamentals")
	}

	// Factor 3: community recognition.
	switch {
	case summary.TotalStars >= 100:
		scores[StageExpert] += 3
		scores[StageAdvanced] += 2
		evidence = append(evidence, fmt.Sprintf("%d stars - recognized by community", summary.TotalStars))
	case summary.TotalStars >= 20:
		scores[StageAdvanced] += 2
		scores[StageIntermediate] += 1
		evidence = append(evidence, fmt.Sprintf("%d stars - gaining recognition", summary.TotalStars))
	case summary.TotalStars >= 5:
		scores[StageIntermediate] += 1
		evidence = append(evidence, fmt.Sprintf("%d stars - some community interest", summary.TotalStars))
	}

	// Factor 4: human share of the work.
	humanPct := summary.Attribution.HumanPercentage
	switch {
	case humanPct >= 75:
		scores[StageAdvanced] += 2
		scores[StageIntermediate] += 1
		evidence = append(evidence, fmt.Sprintf("%d%% human code - strong original work", humanPct))
	case humanPct >= 60:
		scores[StageIntermediate] += 2
		evidence = append(evidence, fmt.Sprintf("Strategic AI usage - %d%% human on core algorithms, AI for efficiency", humanPct))
	default:
		scores[StageBeginner] += 1
		evidence = append(evidence, fmt.Sprintf("%d%% human code - building skills with smart AI assistance", humanPct))
	}

	// Factor 5: smart AI usage.
	if summary.Attribution.SmartUsage {
		scores[StageIntermediate] += 1
		scores[StageAdvanced] += 1
		evidence = append(evidence, "Smart AI usage - uses AI as a tool, not a crutch")
	}

	// Factor 6: domain breadth.
	domains := summary.Attribution.Domains
	if len(domains) >= 2 {
		scores[StageIntermediate] += 1
		scores[StageAdvanced] += 1
		evidence = append(evidence, "Multi-domain expertise: "+strings.Join(firstN(domains, 2), ", "))
	} else if len(domains) == 1 {
		evidence = append(evidence, "Focused on: "+domains[0])
	}

	// Factor 7: notable projects.
	switch {
	case len(summary.UniqueProjects) >= 5:
		scores[StageAdvanced] += 2
		evidence = append(evidence, fmt.Sprintf("%d notable projects - diverse experience", len(summary.UniqueProjects)))
	case len(summary.UniqueProjects) >= 3:
		scores[StageIntermediate] += 2
		evidence = append(evidence, fmt.Sprintf("%d notable projects - growing portfolio", len(summary.UniqueProjects)))
	}

	stage, confidence := winningStage(scores)

	if profile != nil && profile.ExpertiseArea != "" {
		evidence = append(evidence, "Self-described expertise: "+profile.ExpertiseArea)
	}

	return CareerAssessment{
		Stage:      stage,
		Confidence: confidence,
		Evidence:   evidence,
		Scores:     scores,
	}
}

// winningStage picks the highest-scoring stage in stageOrder and its
// confidence as a share of all points.
func winningStage(scores map[Stage]int) (Stage, float64) {
	total := 0
	best := StageBeginner
	bestScore := -1
	for _, stage := range stageOrder {
		total += scores[stage]
		if scores[stage] > bestScore {
			best = stage
			bestScore = scores[stage]
		}
	}
	if bestScore == 0 {
		return StageBeginner, 0.5
	}
	return best, math.Round(float64(bestScore)/float64(total)*100) / 100
}

// JobReadiness is the 0-100 readiness score with its six-factor
// breakdown and the derived guidance lists.
type JobReadiness struct {
	OverallScore         int            `json:"overall_score"`
	ReadinessLevel       string         `json:"readiness_level"`
	ReadinessDescription string         `json:"readiness_description"`
	Breakdown            map[string]int `json:"breakdown"`
	Strengths            []string       `json:"strengths"`
	AreasForImprovement  []string       `json:"areas_for_improvement"`
	Recommendations      []string       `json:"recommendations"`
}

// Readiness levels in descending order.
const (
	ReadinessHighlyJobReady = "Highly Job Ready"
	ReadinessJobReady       = "Job Ready"
	ReadinessNearlyReady    = "Nearly Ready"
	ReadinessBuildingSkills = "Building Skills"
)

// CalculateJobReadiness scores employability on six capped factors:
// breadth 25, depth 25, portfolio 20, code quality 15, communication
// 10, consistency 5. The overall score is their plain sum.
func CalculateJobReadiness(summary *Summary) JobReadiness {
	breakdown := make(map[string]int)
	var strengths, areas, recommendations []string

	humanPct := summary.Attribution.HumanPercentage
	complexity := summary.Attribution.ComplexityLevel

	// Technical breadth (25%): distinct languages in active use.
	switch {
	case len(summary.Skills) >= 5:
		breakdown["technical_breadth"] = 25
		strengths = append(strengths, "Diverse tech stack: "+strings.Join(firstN(summary.Skills, 5), ", "))
	case len(summary.Skills) >= 3:
		breakdown["technical_breadth"] = 20
		strengths = append(strengths, "Solid tech stack: "+strings.Join(summary.Skills, ", "))
	case len(summary.Skills) >= 2:
		breakdown["technical_breadth"] = 15
		areas = append(areas, "Expand your tech stack - learn complementary technologies")
	default:
		breakdown["technical_breadth"] = 10
		areas = append(areas, "Limited tech stack - diversify your skills")
		recommendations = append(recommendations, "Learn 2-3 more technologies in your domain")
	}

	// Technical depth (25%): complexity crossed with human share.
	switch {
	case complexity == ComplexityAdvanced && humanPct >= 70:
		breakdown["technical_depth"] = 25
		strengths = append(strengths, "Deep technical expertise with strong original work")
	case complexity == ComplexityAdvanced || humanPct >= 70:
		breakdown["technical_depth"] = 20
		strengths = append(strengths, "Good technical depth")
	case complexity == ComplexityIntermediate && humanPct >= 60:
		breakdown["technical_depth"] = 18
	default:
		breakdown["technical_depth"] = 12
		areas = append(areas, "Build deeper expertise in your core domain")
		recommendations = append(recommendations, "Take on more complex projects in your expertise area")
	}

	// Portfolio quality (20%).
	projects := len(summary.UniqueProjects)
	switch {
	case projects >= 5 && summary.TotalStars >= 20:
		breakdown["portfolio_quality"] = 20
		strengths = append(strengths, fmt.Sprintf("%d quality projects with community recognition", projects))
	case projects >= 3:
		breakdown["portfolio_quality"] = 15
		strengths = append(strengths, fmt.Sprintf("%d notable projects", projects))
	case projects >= 1:
		breakdown["portfolio_quality"] = 10
		areas = append(areas, "Build more diverse projects")
		recommendations = append(recommendations, "Create 2-3 more unique projects showcasing different skills")
	default:
		breakdown["portfolio_quality"] = 5
		areas = append(areas, "Limited portfolio - need more projects")
		recommendations = append(recommendations, "Build at least 3 complete projects in your domain")
	}

	// Code quality (15%).
	switch {
	case summary.Attribution.SmartUsage && humanPct >= 70:
		breakdown["code_quality"] = 15
		strengths = append(strengths, "High code quality with smart AI usage")
	case humanPct >= 60:
		breakdown["code_quality"] = 12
		strengths = append(strengths, "Strategic AI usage - efficient workflow")
	default:
		breakdown["code_quality"] = 8
		areas = append(areas, "Strengthen core implementation skills")
		recommendations = append(recommendations, "Build 2-3 advanced projects showcasing your core skills")
	}

	// Communication (10%): described projects stand in for docs quality.
	described := 0
	for _, p := range summary.UniqueProjects {
		if p.Description != "" && p.Description != "No description" {
			described++
		}
	}
	switch {
	case described >= 3:
		breakdown["communication"] = 10
		strengths = append(strengths, "Good documentation and project descriptions")
	case described >= 1:
		breakdown["communication"] = 7
	default:
		breakdown["communication"] = 4
		areas = append(areas, "Improve documentation and communication")
		recommendations = append(recommendations, "Add clear README files and project descriptions")
	}

	// Consistency (5%).
	switch {
	case summary.OriginalRepos >= 10:
		breakdown["consistency"] = 5
		strengths = append(strengths, "Consistent development activity")
	case summary.OriginalRepos >= 5:
		breakdown["consistency"] = 4
	default:
		breakdown["consistency"] = 2
		areas = append(areas, "Build more consistent coding habits")
		recommendations = append(recommendations, "Commit code regularly - aim for weekly activity")
	}

	overall := 0
	for _, v := range breakdown {
		overall += v
	}

	level, desc := readinessLevel(overall)

	return JobReadiness{
		OverallScore:         overall,
		ReadinessLevel:       level,
		ReadinessDescription: desc,
		Breakdown:            breakdown,
		Strengths:            strengths,
		AreasForImprovement:  areas,
		Recommendations:      recommendations,
	}
}

func readinessLevel(score int) (level, description string) {
	switch {
	case score >= 80:
		return ReadinessHighlyJobReady, "Ready for mid-to-senior level positions"
	case score >= 65:
		return ReadinessJobReady, "Ready for junior-to-mid level positions"
	case score >= 50:
		return ReadinessNearlyReady, "Close to job ready - focus on improvements"
	default:
		return ReadinessBuildingSkills, "Keep building - you're on the right path"
	}
}

// SkillProficiency is one graded skill: a language from the histogram
// or a self-described addition.
type SkillProficiency struct {
	Name           string   `json:"name"`
	Proficiency    int      `json:"proficiency"`
	HumanDeveloped bool     `json:"human_developed"`
	UsageCount     int      `json:"usage_count"`
	Projects       []string `json:"projects"`
	SelfDescribed  bool     `json:"self_described,omitempty"`
}

// SkillBuckets tiers the graded skills. Each bucket holds at most five
// entries.
type SkillBuckets struct {
	Core        []SkillProficiency `json:"core_skills"`
	Supporting  []SkillProficiency `json:"supporting_skills"`
	Exploratory []SkillProficiency `json:"exploratory_skills"`
}

// AnalyzeSkillProficiency grades each language by usage count and tiers
// them: the top two with at least five uses are core, ranks three to
// five are supporting, the rest exploratory. Self-described core skills
// not already present are appended at an assumed proficiency of 75.
func AnalyzeSkillProficiency(summary *Summary, profile *SelfProfile) SkillBuckets {
	ranked := rankLanguages(summary.Languages, len(summary.Languages))
	humanDeveloped := summary.Attribution.HumanPercentage >= 60

	var buckets SkillBuckets
	for i, name := range ranked {
		count := summary.Languages[name]
		skill := SkillProficiency{
			Name:           name,
			Proficiency:    proficiencyFor(count),
			HumanDeveloped: humanDeveloped,
			UsageCount:     count,
			Projects:       projectsUsing(summary.UniqueProjects, name),
		}
		switch {
		case i < 2 && count >= 5:
			buckets.Core = append(buckets.Core, skill)
		case i < 5:
			buckets.Supporting = append(buckets.Supporting, skill)
		default:
			buckets.Exploratory = append(buckets.Exploratory, skill)
		}
	}

	// Self-claimed skills are taken at face value at modest proficiency.
	if profile != nil && profile.CoreSkills != "" {
		for _, raw := range firstN(strings.Split(profile.CoreSkills, ","), 3) {
			name := strings.TrimSpace(raw)
			if name == "" || hasSkill(buckets.Core, name) {
				continue
			}
			buckets.Core = append(buckets.Core, SkillProficiency{
				Name:           name,
				Proficiency:    75,
				HumanDeveloped: true,
				SelfDescribed:  true,
			})
		}
	}

	buckets.Core = firstNSkills(buckets.Core, 5)
	buckets.Supporting = firstNSkills(buckets.Supporting, 5)
	buckets.Exploratory = firstNSkills(buckets.Exploratory, 5)
	return buckets
}

// proficiencyFor maps a usage count onto a 0-100 scale with a steep
// early ramp that flattens past ten uses.
func proficiencyFor(count int) int {
	switch {
	case count >= 10:
		p := 90 + (count - 10)
		if p > 100 {
			p = 100
		}
		return p
	case count >= 5:
		return 70 + (count-5)*4
	default:
		return 40 + count*6
	}
}

// projectsUsing returns up to three project names written in the given
// language.
func projectsUsing(projects []Project, language string) []string {
	var names []string
	for _, p := range projects {
		if len(names) >= 3 {
			break
		}
		if p.Language == language {
			names = append(names, p.Name)
		}
	}
	return names
}

func hasSkill(skills []SkillProficiency, name string) bool {
	for _, s := range skills {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func firstNSkills(s []SkillProficiency, n int) []SkillProficiency {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
