package repair

import (
	"context"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type RemoveService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveService(repo domain.Repository, audit *audit.Dispatcher) *RemoveService {
	return &RemoveService{repo: repo, audit: audit}
}

// Execute detaches a service snapshot; cost and the legacy text field are
// recomputed from what remains.
func (uc *RemoveService) Execute(
	ctx context.Context,
	actorID *uint,
	repairID string,
	serviceID string,
) (*models.Repair, error) {

	r, err := uc.repo.GetRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}

	if !domain.RemoveService(r, serviceID) {
		return nil, httperr.ErrBusiness("service_not_attached")
	}

	if err := uc.repo.UpdateRepair(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "repair_service_removed",
		Entity:   "repair",
		EntityID: r.ID,
		Metadata: map[string]string{"service_id": serviceID},
	})

	return r, nil
}
