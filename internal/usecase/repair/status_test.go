package repair

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func seedRepair(repo *fakeRepository, status string) string {
	r := &models.Repair{Status: status}
	_ = repo.CreateRepair(context.Background(), r)
	return r.ID
}

func TestAdvanceStatus_TerminalIsNoOp(t *testing.T) {
	repo := newFakeRepository()
	id := seedRepair(repo, "completed")

	uc := NewAdvanceStatus(repo, nil)
	r, err := uc.Execute(context.Background(), nil, id)

	assert.NoError(t, err)
	assert.Equal(t, "completed", r.Status)
	assert.Zero(t, repo.statusWrites, "terminal advance must not write")
}

func TestAdvanceStatus_WritesSingleField(t *testing.T) {
	repo := newFakeRepository()
	id := seedRepair(repo, "pending")

	uc := NewAdvanceStatus(repo, nil)
	r, err := uc.Execute(context.Background(), nil, id)

	assert.NoError(t, err)
	assert.Equal(t, "in_progress", r.Status)
	assert.Equal(t, 1, repo.statusWrites)
	assert.NotNil(t, r.UpdatedAt)
	assert.Equal(t, *r.UpdatedAt, repo.lastTimestamp)
}

func TestAdvanceStatus_LegacyLabel(t *testing.T) {
	repo := newFakeRepository()
	id := seedRepair(repo, "Изпратена оферта")

	uc := NewAdvanceStatus(repo, nil)
	r, err := uc.Execute(context.Background(), nil, id)

	assert.NoError(t, err)
	assert.Equal(t, "in_progress", r.Status)
}

func TestAdvanceStatus_NotFound(t *testing.T) {
	uc := NewAdvanceStatus(newFakeRepository(), nil)
	_, err := uc.Execute(context.Background(), nil, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelRepair_FromCompleted(t *testing.T) {
	// The permissive rule: completed repairs can still be cancelled.
	repo := newFakeRepository()
	id := seedRepair(repo, "completed")

	uc := NewCancelRepair(repo, nil)
	r, err := uc.Execute(context.Background(), nil, id)

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", r.Status)
	assert.Equal(t, 1, repo.statusWrites)
}

func TestCancelRepair_AlreadyCancelledSkipsWrite(t *testing.T) {
	repo := newFakeRepository()
	id := seedRepair(repo, "cancelled")

	uc := NewCancelRepair(repo, nil)
	r, err := uc.Execute(context.Background(), nil, id)

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", r.Status)
	assert.Zero(t, repo.statusWrites)
}
