package repair

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type AddService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddService(repo domain.Repository, audit *audit.Dispatcher) *AddService {
	return &AddService{repo: repo, audit: audit}
}

// CustomService is an ad-hoc line item not present in the catalog.
type CustomService struct {
	Name        string
	Price       float64
	Description string
}

type AddServiceInput struct {
	// ServiceID selects a catalog entry to snapshot; Custom attaches an
	// ad-hoc service instead. Exactly one must be set.
	ServiceID string
	Custom    *CustomService
}

func (uc *AddService) Execute(
	ctx context.Context,
	actorID *uint,
	repairID string,
	in AddServiceInput,
) (*models.Repair, error) {

	r, err := uc.repo.GetRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}

	var snapshot models.SelectedService
	switch {
	case in.ServiceID != "":
		svc, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, httperr.ErrBusiness("service_not_found")
			}
			return nil, err
		}
		snapshot = svc.Snapshot()
	case in.Custom != nil:
		if strings.TrimSpace(in.Custom.Name) == "" {
			return nil, httperr.ErrBusiness("service_name_required")
		}
		snapshot = models.SelectedService{
			ID:          uuid.NewString(),
			Name:        in.Custom.Name,
			Price:       in.Custom.Price,
			Description: in.Custom.Description,
		}
	default:
		return nil, httperr.ErrBusiness("service_required")
	}

	if !domain.AddService(r, snapshot) {
		return nil, httperr.ErrBusiness("service_already_added")
	}

	if err := uc.repo.UpdateRepair(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "repair_service_added",
		Entity:   "repair",
		EntityID: r.ID,
		Metadata: map[string]any{"service": snapshot.Name, "price": snapshot.Price},
	})

	return r, nil
}
