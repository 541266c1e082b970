package repair

import (
	"context"
	"errors"
	"strings"

	"github.com/ivcho02/mechanic-api/internal/audit"
	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type CreateRepair struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRepair(repo domain.Repository, audit *audit.Dispatcher) *CreateRepair {
	return &CreateRepair{repo: repo, audit: audit}
}

type CreateInput struct {
	ClientID         string
	SelectedServices []models.SelectedService
	Repairs          string
	Cost             float64
	AdditionalInfo   string
	UserEmail        string
}

// Execute creates a work order bound to a client. The client's identity
// and vehicle fields are copied onto the repair as a snapshot; the
// structured service list, when present, drives cost and the legacy
// free-text field.
func (uc *CreateRepair) Execute(
	ctx context.Context,
	actorID *uint,
	in CreateInput,
) (*models.Repair, error) {

	if in.ClientID == "" {
		return nil, httperr.ErrBusiness("client_required")
	}
	if len(in.SelectedServices) == 0 && strings.TrimSpace(in.Repairs) == "" {
		return nil, httperr.ErrBusiness("services_required")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	r := &models.Repair{
		Repairs:          in.Repairs,
		SelectedServices: in.SelectedServices,
		Cost:             in.Cost,
		AdditionalInfo:   in.AdditionalInfo,
		Status:           string(domain.InitialStatus()),
		UserEmail:        in.UserEmail,
	}
	domain.ApplyClient(r, client)
	domain.SyncServices(r)

	if err := uc.repo.CreateRepair(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "repair_created",
		Entity:   "repair",
		EntityID: r.ID,
	})

	return r, nil
}
