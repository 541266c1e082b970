package repair

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivcho02/mechanic-api/internal/matching"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func TestMyRepairs_NoClientProfile(t *testing.T) {
	uc := NewMyRepairs(newFakeRepository())

	result, err := uc.Execute(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, result.Client)
	assert.Empty(t, result.Matches)
	assert.False(t, result.Heuristic)
}

func TestMyRepairs_MatchesByClientID(t *testing.T) {
	repo := newFakeRepository()
	repo.clients["c1"] = ivanClient()

	mine := &models.Repair{ClientID: "c1", OwnerName: "Иван Петров"}
	other := &models.Repair{OwnerName: "Георги Димитров"}
	_ = repo.CreateRepair(context.Background(), mine)
	_ = repo.CreateRepair(context.Background(), other)

	uc := NewMyRepairs(repo)
	result, err := uc.Execute(context.Background(), "ivan@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "c1", result.Client.ID)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, mine.ID, result.Matches[0].Repair.ID)
	assert.Equal(t, matching.RuleClientID, result.Matches[0].Rule)
	assert.False(t, result.Heuristic)
	assert.Empty(t, result.RecentUnmatched)
}

func TestMyRepairs_RecentUnmatchedOnlyWhenNothingMatched(t *testing.T) {
	repo := newFakeRepository()
	repo.clients["c1"] = ivanClient()

	// Seven unrelated repairs; the diagnostic list caps at five.
	for i := 0; i < 7; i++ {
		_ = repo.CreateRepair(context.Background(), &models.Repair{OwnerName: "Друг Клиент"})
	}

	uc := NewMyRepairs(repo)
	result, err := uc.Execute(context.Background(), "ivan@example.com")

	assert.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Len(t, result.RecentUnmatched, 5)

	// Newest first.
	first := result.RecentUnmatched[0]
	second := result.RecentUnmatched[1]
	assert.Greater(t, first.CreatedAt.Seconds, second.CreatedAt.Seconds)
}

func TestMyRepairs_HeuristicFlagPropagates(t *testing.T) {
	repo := newFakeRepository()
	repo.clients["c1"] = ivanClient()

	// Only a substring mention, no exact field match.
	_ = repo.CreateRepair(context.Background(), &models.Repair{
		OwnerName:      "Съпругата на Иван",
		AdditionalInfo: "да се звъни на 0888123456",
	})

	uc := NewMyRepairs(repo)
	result, err := uc.Execute(context.Background(), "ivan@example.com")

	assert.NoError(t, err)
	assert.True(t, result.Heuristic)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, matching.ConfidenceHeuristic, result.Matches[0].Confidence)
}
