package repair

import (
	"context"
	"time"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type CancelRepair struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelRepair(repo domain.Repository, audit *audit.Dispatcher) *CancelRepair {
	return &CancelRepair{repo: repo, audit: audit}
}

// Execute cancels a repair from any state. The permissive rule comes from
// the source system: cancelling a completed or already-cancelled repair
// is accepted and idempotent.
func (uc *CancelRepair) Execute(
	ctx context.Context,
	actorID *uint,
	repairID string,
) (*models.Repair, error) {

	r, err := uc.repo.GetRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}

	before := domain.ParseStatus(r.Status)
	domain.Cancel(r, time.Now())
	if before == domain.StatusCancelled {
		return r, nil
	}

	if err := uc.repo.UpdateStatus(ctx, r.ID, domain.StatusCancelled, *r.UpdatedAt); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "repair_cancelled",
		Entity:   "repair",
		EntityID: r.ID,
		Metadata: map[string]string{"from": string(before)},
	})

	return r, nil
}
