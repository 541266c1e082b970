package repair

import (
	"context"
	"time"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type AdvanceStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdvanceStatus(repo domain.Repository, audit *audit.Dispatcher) *AdvanceStatus {
	return &AdvanceStatus{repo: repo, audit: audit}
}

// Execute moves a repair one step along the workflow and persists the
// transition as a single-field write. Advancing a terminal repair is a
// no-op that still returns the record.
func (uc *AdvanceStatus) Execute(
	ctx context.Context,
	actorID *uint,
	repairID string,
) (*models.Repair, error) {

	r, err := uc.repo.GetRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}

	before := domain.ParseStatus(r.Status)
	next := domain.Advance(r, time.Now())
	if next == before {
		return r, nil
	}

	if err := uc.repo.UpdateStatus(ctx, r.ID, next, *r.UpdatedAt); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "repair_status_advanced",
		Entity:   "repair",
		EntityID: r.ID,
		Metadata: map[string]string{"from": string(before), "to": string(next)},
	})

	return r, nil
}
