package repair

import (
	"context"

	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/listing"
	"github.com/ivcho02/mechanic-api/internal/models"
)

type ListRepairs struct {
	repo domain.Repository
}

func NewListRepairs(repo domain.Repository) *ListRepairs {
	return &ListRepairs{repo: repo}
}

type ListParams struct {
	Search    string
	SortField listing.SortField
	SortOrder listing.SortOrder
	Locale    i18n.Locale
}

// Execute returns the staff list view: fetch everything, filter by the
// search term, then sort. The store only orders by creation date; field
// sorting and search are application logic, as in the source system.
func (uc *ListRepairs) Execute(ctx context.Context, p ListParams) ([]models.Repair, error) {
	repairs, err := uc.repo.ListRepairs(ctx)
	if err != nil {
		return nil, err
	}

	repairs = listing.FilterRepairs(repairs, p.Search, p.Locale)
	repairs = listing.SortRepairs(repairs, p.SortField, p.SortOrder, p.Locale)
	return repairs, nil
}
