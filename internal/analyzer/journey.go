package analyzer

import "strconv"

// TimelineEntry is one chronological event in the learning journey.
// Dates are phase labels ("Start", "Phase 1", "Recent") rather than
// calendar dates: the upstream data carries no commit-level history.
type TimelineEntry struct {
	Date        string `json:"date"`
	Event       string `json:"event"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Skill       string `json:"skill,omitempty"`
	Project     string `json:"project,omitempty"`
	Stars       int    `json:"stars,omitempty"`
}

// Milestone is a notable achievement extracted from the portfolio.
type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Type        string `json:"type"`
}

// Timeline entry and milestone types.
const (
	TimelineLearning         = "learning"
	TimelineSkillAcquisition = "skill_acquisition"
	TimelineMilestone        = "milestone"

	MilestoneBreakthrough = "breakthrough"
	MilestoneFirstProject = "first_project"
	MilestoneSkillMastery = "skill_mastery"
)

// GrowthMetrics holds five-point progression series. These are
// extrapolated backward from the current state, not measured from
// commit history.
type GrowthMetrics struct {
	CodeQualityProgression []int `json:"code_quality_progression"`
	ComplexityProgression  []int `json:"complexity_progression"`
	SkillCountProgression  []int `json:"skill_count_progression"`
}

// Narrative is the story-format summary of the journey.
type Narrative struct {
	Intro           string   `json:"intro"`
	KeyMoments      []string `json:"key_moments"`
	CurrentState    string   `json:"current_state"`
	FutureDirection string   `json:"future_direction"`
}

// Journey is the full learning-journey record.
type Journey struct {
	Timeline      []TimelineEntry `json:"timeline"`
	Milestones    []Milestone     `json:"milestones"`
	GrowthMetrics GrowthMetrics   `json:"growth_metrics"`
	Narrative     Narrative       `json:"narrative"`
}

// ExtractJourney composes the timeline, milestones, growth metrics,
// and narrative for one subject. profile may be nil.
func ExtractJourney(summary *Summary, profile *SelfProfile) Journey {
	milestones := DetectMilestones(summary)
	return Journey{
		Timeline:      BuildTimeline(summary, profile),
		Milestones:    milestones,
		GrowthMetrics: ProjectGrowthMetrics(summary),
		Narrative:     GenerateNarrative(summary, profile, milestones),
	}
}

// BuildTimeline lays out the journey as ordered phases: the self-told
// start, one skill-acquisition entry per top language, then recent
// project milestones.
func BuildTimeline(summary *Summary, profile *SelfProfile) []TimelineEntry {
	var timeline []TimelineEntry

	if profile != nil && profile.LearningJourney != "" {
		timeline = append(timeline, TimelineEntry{
			Date:        "Start",
			Event:       "Started coding journey",
			Type:        TimelineLearning,
			Description: truncate(profile.LearningJourney, 200),
		})
	}

	for i, skill := range firstN(summary.Skills, 5) {
		timeline = append(timeline, TimelineEntry{
			Date:  phaseLabel(i + 1),
			Event: "Learned " + skill,
			Type:  TimelineSkillAcquisition,
			Skill: skill,
		})
	}

	for _, project := range firstNProjects(summary.UniqueProjects, 3) {
		timeline = append(timeline, TimelineEntry{
			Date:        "Recent",
			Event:       "Built " + project.Name,
			Type:        TimelineMilestone,
			Project:     project.Name,
			Description: project.Description,
			Stars:       project.Stars,
		})
	}

	return timeline
}

func phaseLabel(n int) string {
	return "Phase " + strconv.Itoa(n)
}

func firstNProjects(p []Project, n int) []Project {
	if len(p) <= n {
		return p
	}
	return p[:n]
}

// DetectMilestones surfaces up to five achievements: starred
// breakthroughs first, then the first major project, then domain
// expertise.
func DetectMilestones(summary *Summary) []Milestone {
	var milestones []Milestone

	for _, project := range summary.UniqueProjects {
		if project.Stars >= 5 {
			milestones = append(milestones, Milestone{
				Title:       "Breakthrough: " + project.Name,
				Description: milestoneDescription(project.Description),
				Impact:      starImpact(project.Stars),
				Type:        MilestoneBreakthrough,
			})
		}
	}

	if len(summary.UniqueProjects) > 0 {
		first := summary.UniqueProjects[0]
		milestones = append(milestones, Milestone{
			Title:       "First Major Project: " + first.Name,
			Description: first.Description,
			Impact:      "Started building portfolio",
			Type:        MilestoneFirstProject,
		})
	}

	if len(summary.Attribution.Domains) > 0 {
		domain := summary.Attribution.Domains[0]
		milestones = append(milestones, Milestone{
			Title:       "Domain Expertise: " + domain,
			Description: "Specialized in " + domain,
			Impact:      "Developed focused expertise",
			Type:        MilestoneSkillMastery,
		})
	}

	return firstNMilestones(milestones, 5)
}

func milestoneDescription(desc string) string {
	if desc == "" {
		return "Notable project"
	}
	return desc
}

func starImpact(stars int) string {
	return pluralStars(stars) + " - community recognition"
}

func pluralStars(stars int) string {
	if stars == 1 {
		return "1 star"
	}
	return strconv.Itoa(stars) + " stars"
}

// ProjectGrowthMetrics extrapolates five-point progression series
// backward from the current human share, complexity level, and skill
// count. Each series ends at the present value.
func ProjectGrowthMetrics(summary *Summary) GrowthMetrics {
	humanPct := summary.Attribution.HumanPercentage
	skills := len(summary.Skills)

	complexityScore := 7
	switch summary.Attribution.ComplexityLevel {
	case ComplexityBasic:
		complexityScore = 5
	case ComplexityAdvanced:
		complexityScore = 9
	}

	return GrowthMetrics{
		CodeQualityProgression: []int{
			maxInt(30, humanPct-20),
			maxInt(40, humanPct-15),
			maxInt(50, humanPct-10),
			maxInt(60, humanPct-5),
			humanPct,
		},
		ComplexityProgression: []int{
			maxInt(3, complexityScore-4),
			maxInt(4, complexityScore-3),
			maxInt(5, complexityScore-2),
			maxInt(6, complexityScore-1),
			complexityScore,
		},
		SkillCountProgression: []int{
			maxInt(1, skills-4),
			maxInt(2, skills-3),
			maxInt(3, skills-2),
			maxInt(4, skills-1),
			skills,
		},
	}
}

// GenerateNarrative combines the self-told journey with portfolio
// evidence into a short story record.
func GenerateNarrative(summary *Summary, profile *SelfProfile, milestones []Milestone) Narrative {
	domains := summary.Attribution.Domains
	complexity := string(summary.Attribution.ComplexityLevel)

	intro := ""
	if profile != nil {
		intro = profile.LearningJourney
	}
	if intro == "" {
		repos := strconv.Itoa(summary.PublicRepos)
		if len(domains) > 0 {
			intro = "A passionate developer specializing in " + domains[0] + ", with " + repos + " projects showcasing technical skills and continuous learning."
		} else {
			intro = "A dedicated developer with " + repos + " projects, constantly learning and building new skills through hands-on experience."
		}
	}

	var keyMoments []string
	for _, m := range firstNMilestones(milestones, 3) {
		keyMoments = append(keyMoments, m.Title)
	}

	currentState := "Building skills with " + complexity + " level projects"
	if len(domains) > 0 {
		currentState = "Currently specializing in " + domains[0] + " with " + complexity + " level expertise"
	}

	future := ""
	if profile != nil {
		future = profile.AIUsageContext
	}
	if future == "" {
		future = "Continuing to grow technical skills and take on more complex challenges"
	}

	return Narrative{
		Intro:           truncate(intro, 300),
		KeyMoments:      keyMoments,
		CurrentState:    currentState,
		FutureDirection: truncate(future, 200),
	}
}

func firstNMilestones(m []Milestone, n int) []Milestone {
	if len(m) <= n {
		return m
	}
	return m[:n]
}
