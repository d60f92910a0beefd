package analyzer

import "testing"

func TestCalculateBreakdown_OrderAndCoreFlags(t *testing.T) {
	b := CalculateBreakdown(Categorize(nil, nil, 50))

	if len(b.Categories) != 5 {
		t.Fatalf("expected 5 display categories, got %d", len(b.Categories))
	}
	wantNames := []string{"Core Algorithms", "API & Integration", "UI/UX & Styling", "Documentation", "Boilerplate & Setup"}
	for i, want := range wantNames {
		if b.Categories[i].Name != want {
			t.Errorf("category %d = %q, want %q", i, b.Categories[i].Name, want)
		}
	}
	if !b.Categories[0].IsCore || !b.Categories[1].IsCore {
		t.Error("first two categories must be core")
	}
	if b.Categories[2].IsCore || b.Categories[3].IsCore || b.Categories[4].IsCore {
		t.Error("supporting categories must not be core")
	}
}

func TestCalculateBreakdown_SupportingAlwaysSmart(t *testing.T) {
	b := CalculateBreakdown(Categorize(nil, nil, 90))
	for _, cat := range b.Categories[2:] {
		if cat.Status != StatusSmart {
			t.Errorf("%s status = %s, want smart", cat.Name, cat.Status)
		}
	}
}

func TestCalculateBreakdown_CoreStatusTiers(t *testing.T) {
	// ML expertise pins core algorithms at 90% human.
	profile := &SelfProfile{ExpertiseArea: "ml"}

	b := CalculateBreakdown(Categorize(profile, nil, 10))
	if b.Categories[0].Status != StatusExcellent {
		t.Errorf("90%% human core status = %s, want excellent", b.Categories[0].Status)
	}

	b = CalculateBreakdown(Categorize(nil, nil, 95))
	// Core algorithms ai = 65 → 35% human.
	if b.Categories[0].Status != StatusNeedsImprovement {
		t.Errorf("35%% human core status = %s, want needs_improvement", b.Categories[0].Status)
	}
}

func TestCalculateBreakdown_AssessmentFollowsIndependence(t *testing.T) {
	profile := &SelfProfile{ExpertiseArea: "computer vision"}

	// Core group: algorithms 10 ai + api 30 ai → 20 ai → 80 human.
	b := CalculateBreakdown(Categorize(profile, nil, 10))
	if b.CoreIndependenceScore != 80 {
		t.Errorf("core independence = %d, want 80", b.CoreIndependenceScore)
	}
	if b.OverallAssessment != AssessmentExcellent {
		t.Errorf("assessment = %s, want excellent", b.OverallAssessment)
	}

	b = CalculateBreakdown(Categorize(nil, nil, 95))
	// Core group: algorithms 65 + api 70 → 68 ai → 32 human.
	if b.OverallAssessment != AssessmentNeedsImprovement {
		t.Errorf("assessment = %s, want needs_improvement", b.OverallAssessment)
	}
}

func TestCalculateSelfAwareness_FullProfileScoresAll(t *testing.T) {
	sa := CalculateSelfAwareness(&SelfProfile{
		DeveloperRole:  "CV engineer",
		CoreSkills:     "PyTorch",
		Weaknesses:     "CSS",
		ExpertiseArea:  "vision",
		AIUsageContext: "AI for boilerplate",
	})
	if sa.Score != 100 {
		t.Errorf("score = %d, want 100", sa.Score)
	}
	if sa.Level != LevelHighlySelfAware {
		t.Errorf("level = %s, want %s", sa.Level, LevelHighlySelfAware)
	}
	if len(sa.Indicators) != 5 {
		t.Errorf("expected 5 indicators, got %v", sa.Indicators)
	}
}

func TestCalculateSelfAwareness_PartialAndNil(t *testing.T) {
	sa := CalculateSelfAwareness(&SelfProfile{Weaknesses: "docs", ExpertiseArea: "web"})
	if sa.Score != 40 {
		t.Errorf("score = %d, want 40", sa.Score)
	}
	if sa.Level != LevelSomewhatAware {
		t.Errorf("level = %s, want %s", sa.Level, LevelSomewhatAware)
	}

	sa = CalculateSelfAwareness(nil)
	if sa.Score != 0 || sa.Level != LevelNeedsReflection {
		t.Errorf("nil profile = %d/%s, want 0/%s", sa.Score, sa.Level, LevelNeedsReflection)
	}
}
