package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivcho02/mechanic-api/internal/models"
)

func repairAt(id string, seconds int64) models.Repair {
	return models.Repair{
		ID:        id,
		CreatedAt: models.Timestamp{Seconds: seconds},
	}
}

func TestMatchRepairs_ClientID(t *testing.T) {
	r1 := repairAt("r1", 100)
	r1.ClientID = "c1"
	r2 := repairAt("r2", 200)
	r2.ClientID = "other"

	result := MatchRepairs(Identity{ClientID: "c1"}, []models.Repair{r1, r2})

	assert.False(t, result.Heuristic)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, "r1", result.Matches[0].Repair.ID)
	assert.Equal(t, RuleClientID, result.Matches[0].Rule)
	assert.Equal(t, ConfidenceExact, result.Matches[0].Confidence)
}

func TestMatchRepairs_PrimaryUnion(t *testing.T) {
	byEmail := repairAt("r1", 100)
	byEmail.OwnerEmail = "ivan@example.com"

	byName := repairAt("r2", 300)
	byName.OwnerName = "Иван Петров"

	byVehicle := repairAt("r3", 200)
	byVehicle.Make = "vw"
	byVehicle.Model = "GOLF"

	unrelated := repairAt("r4", 400)
	unrelated.OwnerName = "Георги Димитров"

	id := Identity{
		Email: "ivan@example.com",
		Name:  "Иван Петров",
		Make:  "VW",
		Model: "Golf",
	}

	result := MatchRepairs(id, []models.Repair{byEmail, byName, byVehicle, unrelated})

	assert.False(t, result.Heuristic)
	assert.Len(t, result.Matches, 3)

	// Newest first.
	assert.Equal(t, "r2", result.Matches[0].Repair.ID)
	assert.Equal(t, "r3", result.Matches[1].Repair.ID)
	assert.Equal(t, "r1", result.Matches[2].Repair.ID)

	// Vehicle matching is case-insensitive and needs both make and model.
	assert.Equal(t, RuleVehicle, result.Matches[1].Rule)
}

func TestMatchRepairs_PhoneRequiresBothSides(t *testing.T) {
	r := repairAt("r1", 100)
	// Empty phone on the repair must not match an empty identity phone.
	result := MatchRepairs(Identity{Name: "x"}, []models.Repair{r})
	assert.Empty(t, result.Matches)
}

func TestMatchRepairs_FallbackOnlyWhenPrimaryEmpty(t *testing.T) {
	called := false
	orig := serialize
	serialize = func(r models.Repair) string {
		called = true
		return orig(r)
	}
	defer func() { serialize = orig }()

	r := repairAt("r1", 100)
	r.OwnerEmail = "ivan@example.com"

	result := MatchRepairs(Identity{Email: "ivan@example.com"}, []models.Repair{r})

	assert.Len(t, result.Matches, 1)
	assert.False(t, result.Heuristic)
	assert.False(t, called, "fallback must not run when the primary pass matched")
}

func TestMatchRepairs_FallbackIsHeuristic(t *testing.T) {
	r := repairAt("r1", 100)
	r.AdditionalInfo = "контакт: Иван Петров, да се потвърди"

	result := MatchRepairs(Identity{Name: "Иван Петров"}, []models.Repair{r})

	assert.True(t, result.Heuristic)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, RuleFallback, result.Matches[0].Rule)
	assert.Equal(t, ConfidenceHeuristic, result.Matches[0].Confidence)
}

func TestMatchRepairs_NoMatches(t *testing.T) {
	r := repairAt("r1", 100)
	r.OwnerName = "Георги Димитров"

	result := MatchRepairs(Identity{Name: "Иван Петров"}, []models.Repair{r})

	assert.Empty(t, result.Matches)
	assert.False(t, result.Heuristic)
}

func TestRecentRepairs(t *testing.T) {
	repairs := []models.Repair{
		repairAt("r1", 100),
		repairAt("r2", 300),
		repairAt("r3", 200),
	}

	recent := RecentRepairs(repairs, 2)

	assert.Len(t, recent, 2)
	assert.Equal(t, "r2", recent[0].ID)
	assert.Equal(t, "r3", recent[1].ID)

	// Input order is untouched.
	assert.Equal(t, "r1", repairs[0].ID)
}

func TestResult_Repairs(t *testing.T) {
	result := Result{Matches: []Match{
		{Repair: repairAt("r1", 100)},
		{Repair: repairAt("r2", 200)},
	}}

	repairs := result.Repairs()
	assert.Len(t, repairs, 2)
	assert.Equal(t, "r1", repairs[0].ID)
}
