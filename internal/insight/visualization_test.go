package insight

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/devgauge/internal/analyzer"
)

func breakdownAt(overallAI int, profile *analyzer.SelfProfile) analyzer.Breakdown {
	return analyzer.CalculateBreakdown(analyzer.Categorize(profile, nil, overallAI))
}

func TestGenerateStackedBarData_Shape(t *testing.T) {
	bar := GenerateStackedBarData(breakdownAt(50, nil))

	if len(bar.Labels) != 2 || bar.Labels[0] != "Core Skills" {
		t.Errorf("labels = %v", bar.Labels)
	}
	for i := range bar.HumanData {
		if bar.HumanData[i]+bar.AIData[i] != 100 {
			t.Errorf("segment %d does not sum to 100: %d + %d", i, bar.HumanData[i], bar.AIData[i])
		}
	}
	if bar.Colors["human"] != ColorHuman || bar.Colors["ai"] != ColorAI {
		t.Errorf("colors = %v", bar.Colors)
	}
}

func TestGenerateStackedBarData_SupportingFloor(t *testing.T) {
	// Core independence 80 → supporting human would be -10; floored to 10.
	profile := &analyzer.SelfProfile{ExpertiseArea: "computer vision"}
	bar := GenerateStackedBarData(breakdownAt(10, profile))

	if bar.HumanData[0] != 80 {
		t.Errorf("core human = %d, want 80", bar.HumanData[0])
	}
	if bar.HumanData[1] != 10 {
		t.Errorf("supporting human = %d, want floor of 10", bar.HumanData[1])
	}
}

func TestGenerateCategoryCards_IconsFollowStatus(t *testing.T) {
	cards := GenerateCategoryCards(breakdownAt(95, nil))
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}

	// Core at 35% human reads needs_improvement → orange trending icon.
	if cards[0].Icon != "📈" || cards[0].Color != "orange" {
		t.Errorf("core card = %+v", cards[0])
	}
	// Supporting categories read smart → purple check.
	if cards[2].Icon != "✅" || cards[2].Color != "purple" {
		t.Errorf("supporting card = %+v", cards[2])
	}
}

func TestGenerateCategoryCards_ExcellentCore(t *testing.T) {
	profile := &analyzer.SelfProfile{ExpertiseArea: "ml"}
	cards := GenerateCategoryCards(breakdownAt(10, profile))
	if cards[0].Icon != "🔥" || cards[0].Color != "green" {
		t.Errorf("excellent core card = %+v", cards[0])
	}
}

func TestGenerateEmployerSummary_StrongIndependence(t *testing.T) {
	profile := &analyzer.SelfProfile{
		ExpertiseArea: "computer vision",
		CoreSkills:    "PyTorch, OpenCV, CUDA, TensorRT",
	}
	s := GenerateEmployerSummary(breakdownAt(10, profile))

	if !strings.HasPrefix(s.Headline, "Core Algorithms Developer") {
		t.Errorf("headline = %q", s.Headline)
	}
	if len(s.KeyPoints) != 3 {
		t.Fatalf("key points = %v", s.KeyPoints)
	}
	if !strings.Contains(s.KeyPoints[0], "80% human-written") {
		t.Errorf("first point = %q", s.KeyPoints[0])
	}
	if !strings.Contains(s.KeyPoints[1], "PyTorch, OpenCV, CUDA") {
		t.Errorf("second point = %q", s.KeyPoints[1])
	}
	if !strings.Contains(s.KeyPoints[2], "ui/ux & styling") {
		t.Errorf("third point = %q", s.KeyPoints[2])
	}
	if s.TechnicalDepth != "Advanced - Strong technical foundation" {
		t.Errorf("depth = %q", s.TechnicalDepth)
	}
	if s.Recommendation != "Strong technical foundation with strategic AI usage" {
		t.Errorf("recommendation = %q", s.Recommendation)
	}
}

func TestGenerateEmployerSummary_WeakIndependence(t *testing.T) {
	s := GenerateEmployerSummary(breakdownAt(95, nil))

	if s.Headline != "Developer - Writes Code Independently" {
		t.Errorf("headline = %q", s.Headline)
	}
	if s.TechnicalDepth != "Intermediate level" {
		t.Errorf("depth = %q", s.TechnicalDepth)
	}
	if !strings.Contains(s.Recommendation, "more hands-on coding") {
		t.Errorf("recommendation = %q", s.Recommendation)
	}
}
