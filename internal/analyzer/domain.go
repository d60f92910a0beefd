package analyzer

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/devgauge/internal/github"
)

// domainRepoLimit bounds how many repositories domain detection inspects.
const domainRepoLimit = 30

// GeneralDevelopment is the fallback domain when no keyword scores.
const GeneralDevelopment = "General Development"

// maxDetectedDomains caps the returned domain list.
const maxDetectedDomains = 3

// domainRule maps a domain label to its keyword list. The declaration
// order is the tie-break order when two domains score equally, so the
// table is versioned configuration data: reordering it changes output.
type domainRule struct {
	label    string
	keywords []string
}

var domainRules = []domainRule{
	{"ML/AI", []string{"neural", "model", "train", "dataset", "pytorch", "tensorflow", "keras", "ml", "ai", "gan", "cnn", "rnn", "lstm", "detection", "classification", "vision", "yolo", "sgan", "opencv"}},
	{"Computer Vision", []string{"opencv", "image", "video", "detection", "recognition", "segmentation", "yolo", "rcnn", "gan", "vision", "camera", "face"}},
	{"Web Development", []string{"react", "vue", "angular", "django", "flask", "express", "api", "frontend", "backend", "web", "html", "css"}},
	{"Mobile", []string{"android", "ios", "react-native", "flutter", "swift", "kotlin", "mobile", "app"}},
	{"Data Science", []string{"pandas", "numpy", "analysis", "data", "visualization", "jupyter", "notebook", "analytics"}},
	{"DevOps", []string{"docker", "kubernetes", "ci", "cd", "deploy", "aws", "cloud", "infrastructure"}},
	{"Game Dev", []string{"unity", "unreal", "game", "engine", "3d", "graphics", "shader"}},
}

// DetectDomains classifies a repository list into up to three technology
// domains by counting keyword substring hits in repository names and
// descriptions. Forked repositories are skipped. Domains are ranked by
// hit count descending with the table order breaking ties; if nothing
// scores, the result is just GeneralDevelopment.
func DetectDomains(repos []github.Repository) []string {
	scores := make([]int, len(domainRules))

	considered := 0
	for _, repo := range repos {
		if considered >= domainRepoLimit {
			break
		}
		considered++

		if repo.Fork {
			continue
		}

		text := strings.ToLower(repo.Name + " " + repo.Description)
		for i, rule := range domainRules {
			for _, kw := range rule.keywords {
				if strings.Contains(text, kw) {
					scores[i]++
				}
			}
		}
	}

	// Rank by score descending; a stable sort keeps the table's
	// declaration order on ties.
	type ranked struct {
		label string
		score int
	}
	order := make([]ranked, 0, len(domainRules))
	for i, rule := range domainRules {
		order = append(order, ranked{label: rule.label, score: scores[i]})
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	var detected []string
	for _, r := range order {
		if r.score > 0 && len(detected) < maxDetectedDomains {
			detected = append(detected, r.label)
		}
	}

	if len(detected) == 0 {
		return []string{GeneralDevelopment}
	}
	return detected
}
