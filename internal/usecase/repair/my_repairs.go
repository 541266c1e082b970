package repair

import (
	"context"

	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/matching"
	"github.com/ivcho02/mechanic-api/internal/models"
)

// recentDiagnosticCount caps the system-wide diagnostic list returned
// when no repair matched a customer at all.
const recentDiagnosticCount = 5

type MyRepairs struct {
	repo domain.Repository
}

func NewMyRepairs(repo domain.Repository) *MyRepairs {
	return &MyRepairs{repo: repo}
}

type MyRepairsResult struct {
	// Client is the caller's profile, nil when no client record is
	// linked to the account email yet.
	Client *models.Client

	Matches   []matching.Match
	Heuristic bool

	// RecentUnmatched is a diagnostic aid, populated only when nothing
	// matched. It must never be presented as the customer's repairs.
	RecentUnmatched []models.Repair
}

// Execute resolves the repairs belonging to the account with the given
// email. Newer repairs carry an explicit clientId; historical ones are
// associated by the layered matcher.
func (uc *MyRepairs) Execute(ctx context.Context, email string) (*MyRepairsResult, error) {
	client, err := uc.repo.FindClientByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return &MyRepairsResult{}, nil
	}

	repairs, err := uc.repo.ListRepairs(ctx)
	if err != nil {
		return nil, err
	}

	identity := matching.Identity{
		ClientID: client.ID,
		Email:    email,
		Name:     client.OwnerName,
		Phone:    client.Phone,
		Make:     client.Make,
		Model:    client.Model,
	}

	result := matching.MatchRepairs(identity, repairs)
	out := &MyRepairsResult{
		Client:    client,
		Matches:   result.Matches,
		Heuristic: result.Heuristic,
	}

	if len(result.Matches) == 0 {
		out.RecentUnmatched = matching.RecentRepairs(repairs, recentDiagnosticCount)
	}
	return out, nil
}
