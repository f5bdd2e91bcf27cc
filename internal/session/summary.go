package session

import (
	"math"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/store"
)

// Rank is the security rank earned from the attempts ledger.
type Rank string

const (
	RankElite    Rank = "ELITE"
	RankTrained  Rank = "TRAINED"
	RankRookie   Rank = "ROOKIE"
	RankUnranked Rank = "UNRANKED"
)

// AccuracyTarget is the ledger accuracy a trainee is asked to reach.
const AccuracyTarget = 70

// RankFor grades a ledger accuracy over attempted answers.
func RankFor(accuracy, attempted int) Rank {
	switch {
	case accuracy >= 80 && attempted >= 5:
		return RankElite
	case accuracy >= 60 && attempted >= 3:
		return RankTrained
	case attempted >= 1:
		return RankRookie
	default:
		return RankUnranked
	}
}

// Summary holds the data displayed by the stats views.
type Summary struct {
	Scenarios        Stats        `json:"scenarios"`
	Emails           Stats        `json:"emails"`
	Totals           store.Totals `json:"totals"`
	ModulesCompleted []string     `json:"modules_completed"`
	XP               int          `json:"xp"`

	// Accuracy, AvgScore and Rank are computed from Totals.
	Accuracy  int  `json:"accuracy"`
	AvgScore  int  `json:"avg_score"`
	Rank      Rank `json:"rank"`
	TargetMet bool `json:"target_met"`
}

// BuildSummary combines counters, the attempts ledger and module progress.
// XP is the ledger score plus the award for each completed module.
func BuildSummary(scenarios, emails Stats, totals store.Totals, modules []string) *Summary {
	if modules == nil {
		modules = []string{}
	}
	acc := accuracy(totals.Correct, totals.Attempted)
	return &Summary{
		Scenarios:        scenarios,
		Emails:           emails,
		Totals:           totals,
		ModulesCompleted: modules,
		XP:               totals.Score + len(modules)*content.ModuleXP,
		Accuracy:         acc,
		AvgScore:         avgScore(totals.Score, totals.Attempted),
		Rank:             RankFor(acc, totals.Attempted),
		TargetMet:        acc >= AccuracyTarget,
	}
}

// avgScore is score per attempt rounded half up, 0 with no attempts.
func avgScore(score, attempted int) int {
	if attempted <= 0 {
		return 0
	}
	return int(math.Floor(float64(score)/float64(attempted) + 0.5))
}

// Combined returns the scenario and email counters added together.
func (s *Summary) Combined() Stats {
	return newStats(s.Scenarios.Correct+s.Emails.Correct, s.Scenarios.Total+s.Emails.Total)
}
