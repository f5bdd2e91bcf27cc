package session

import (
	"testing"

	"github.com/abhisek/cyberrange/internal/store"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		accuracy, attempted int
		want                Rank
	}{
		{0, 0, RankUnranked},
		{100, 0, RankUnranked},
		{0, 1, RankRookie},
		{100, 2, RankRookie},
		{60, 3, RankTrained},
		{59, 3, RankRookie},
		{80, 4, RankTrained},
		{80, 5, RankElite},
		{79, 5, RankTrained},
		{100, 50, RankElite},
		{40, 50, RankRookie},
	}
	for _, tt := range tests {
		if got := RankFor(tt.accuracy, tt.attempted); got != tt.want {
			t.Errorf("RankFor(%d, %d) = %s, want %s", tt.accuracy, tt.attempted, got, tt.want)
		}
	}
}

func TestBuildSummary_LedgerFigures(t *testing.T) {
	tests := []struct {
		name   string
		totals store.Totals
		acc    int
		avg    int
		rank   Rank
		target bool
	}{
		{"empty", store.Totals{}, 0, 0, RankUnranked, false},
		{"elite", store.Totals{Score: 95, Attempted: 5, Correct: 4}, 80, 19, RankElite, true},
		{"trained", store.Totals{Score: 25, Attempted: 3, Correct: 2}, 67, 8, RankTrained, false},
		{"negative average", store.Totals{Score: -10, Attempted: 2, Correct: 0}, 0, -5, RankRookie, false},
		{"half rounds up", store.Totals{Score: 5, Attempted: 2, Correct: 1}, 50, 3, RankRookie, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BuildSummary(Stats{}, Stats{}, tt.totals, nil)
			if s.Accuracy != tt.acc || s.AvgScore != tt.avg || s.Rank != tt.rank || s.TargetMet != tt.target {
				t.Errorf("got accuracy=%d avg=%d rank=%s target=%v, want %d %d %s %v",
					s.Accuracy, s.AvgScore, s.Rank, s.TargetMet, tt.acc, tt.avg, tt.rank, tt.target)
			}
		})
	}
}
