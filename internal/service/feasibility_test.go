package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plannerhq/planner/internal/model"
)

func feasibilityGoal() *model.Goal {
	return &model.Goal{Name: "Run a 10k", Description: "couch to 10k", StartDate: "2024-01-01", EndDate: "2024-01-28"}
}

func TestScoreClampsAndParses(t *testing.T) {
	ctx := context.Background()
	goal := feasibilityGoal()

	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{"plain number", "7", 7},
		{"whitespace", "  9\n", 9},
		{"above range", "15", 10},
		{"below range", "0", 1},
		{"not a number", "about an 8 out of 10", defaultFeasibilityScore},
		{"empty reply", "", defaultFeasibilityScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewFeasibilityScorer(&mockAI{reply: tt.reply})
			assert.Equal(t, tt.want, scorer.Score(ctx, goal))
		})
	}
}

func TestNotesTruncation(t *testing.T) {
	ctx := context.Background()
	goal := feasibilityGoal()

	long := strings.Repeat("go ", 100)
	scorer := NewFeasibilityScorer(&mockAI{reply: long})
	notes := scorer.Notes(ctx, goal)
	assert.Len(t, []rune(notes), modelNotesLimit)

	short := NewFeasibilityScorer(&mockAI{reply: "You can do it!"})
	assert.Equal(t, "You can do it!", short.Notes(ctx, goal))
}
