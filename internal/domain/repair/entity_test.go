package repair

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ivcho02/mechanic-api/internal/models"
)

func TestAdvance_FullWorkflow(t *testing.T) {
	now := time.Now()
	r := &models.Repair{Status: string(StatusPending)}

	assert.Equal(t, StatusInProgress, Advance(r, now))
	assert.Equal(t, StatusCompleted, Advance(r, now))

	// Advancing a completed repair is a no-op.
	assert.Equal(t, StatusCompleted, Advance(r, now))
	assert.NotNil(t, r.UpdatedAt)
}

func TestAdvance_LegacyStatus(t *testing.T) {
	r := &models.Repair{Status: "В процес"}

	next := Advance(r, time.Now())

	assert.Equal(t, StatusCompleted, next)
	assert.Equal(t, "completed", r.Status)
}

func TestCancel_FromAnyState(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		r := &models.Repair{Status: string(from)}
		Cancel(r, time.Now())
		assert.Equal(t, string(StatusCancelled), r.Status)
	}
}

func TestApplyClient_Snapshot(t *testing.T) {
	c := &models.Client{
		ID:         "c1",
		OwnerName:  "Иван Петров",
		Phone:      "0888123456",
		Email:      "ivan@example.com",
		Make:       "VW",
		Model:      "Golf",
		EngineSize: "1.9",
		Vin:        "WVWZZZ",
	}
	r := &models.Repair{}

	ApplyClient(r, c)

	assert.Equal(t, "c1", r.ClientID)
	assert.Equal(t, "Иван Петров", r.OwnerName)
	assert.Equal(t, "ivan@example.com", r.OwnerEmail)
	assert.Equal(t, "VW Golf", r.Car())

	// Later client edits must not reach the repair.
	c.Phone = "changed"
	assert.Equal(t, "0888123456", r.Phone)
}

func TestAddService_DedupAndSync(t *testing.T) {
	r := &models.Repair{}

	assert.True(t, AddService(r, models.SelectedService{ID: "s1", Name: "Oil change", Price: 45}))
	assert.True(t, AddService(r, models.SelectedService{ID: "s2", Name: "Brake pads", Price: 120}))

	// Same id again is rejected.
	assert.False(t, AddService(r, models.SelectedService{ID: "s1", Name: "Oil change", Price: 45}))

	assert.Len(t, r.SelectedServices, 2)
	assert.Equal(t, 165.0, r.Cost)
	assert.Equal(t, "Oil change\nBrake pads", r.Repairs)
}

func TestRemoveService_Recomputes(t *testing.T) {
	r := &models.Repair{}
	AddService(r, models.SelectedService{ID: "s1", Name: "Oil change", Price: 45})
	AddService(r, models.SelectedService{ID: "s2", Name: "Brake pads", Price: 120})

	assert.True(t, RemoveService(r, "s1"))
	assert.False(t, RemoveService(r, "s1"))

	assert.Len(t, r.SelectedServices, 1)
	assert.Equal(t, 120.0, r.Cost)
	assert.Equal(t, "Brake pads", r.Repairs)
}

func TestSyncServices_LeavesLegacyRepairsAlone(t *testing.T) {
	r := &models.Repair{
		Repairs: "смяна на масло",
		Cost:    80,
	}

	SyncServices(r)

	// No structured services: manual cost and text stay as entered.
	assert.Equal(t, 80.0, r.Cost)
	assert.Equal(t, "смяна на масло", r.Repairs)
}
