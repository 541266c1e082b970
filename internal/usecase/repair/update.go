package repair

import (
	"context"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type UpdateRepair struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateRepair(repo domain.Repository, audit *audit.Dispatcher) *UpdateRepair {
	return &UpdateRepair{repo: repo, audit: audit}
}

type UpdateInput struct {
	SelectedServices *[]models.SelectedService
	Repairs          *string
	Cost             *float64
	AdditionalInfo   *string
	Status           *string
}

// Execute edits an existing work order. The client binding is fixed at
// creation: owner and vehicle fields are not touched here, only services,
// status, notes and cost.
func (uc *UpdateRepair) Execute(
	ctx context.Context,
	actorID *uint,
	repairID string,
	in UpdateInput,
) (*models.Repair, error) {

	r, err := uc.repo.GetRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}

	if in.Repairs != nil {
		r.Repairs = *in.Repairs
	}
	if in.Cost != nil {
		r.Cost = *in.Cost
	}
	if in.AdditionalInfo != nil {
		r.AdditionalInfo = *in.AdditionalInfo
	}
	if in.Status != nil {
		r.Status = string(domain.ParseStatus(*in.Status))
	}
	if in.SelectedServices != nil {
		r.SelectedServices = *in.SelectedServices
		domain.SyncServices(r)
	}

	if err := uc.repo.UpdateRepair(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "repair_updated",
		Entity:   "repair",
		EntityID: r.ID,
	})

	return r, nil
}
