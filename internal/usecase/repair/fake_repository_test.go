package repair

import (
	"context"
	"fmt"

	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

// fakeRepository is an in-memory Repository for use case tests. Lists
// return newest first like the Mongo implementation.
type fakeRepository struct {
	repairs  map[string]*models.Repair
	clients  map[string]*models.Client
	services map[string]*models.Service

	nextID        int
	statusWrites  int
	lastTimestamp models.Timestamp
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		repairs:  map[string]*models.Repair{},
		clients:  map[string]*models.Client{},
		services: map[string]*models.Service{},
	}
}

func (f *fakeRepository) ListRepairs(ctx context.Context) ([]models.Repair, error) {
	out := make([]models.Repair, 0, len(f.repairs))
	for _, r := range f.repairs {
		out = append(out, *r)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.Seconds > out[i].CreatedAt.Seconds {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeRepository) GetRepair(ctx context.Context, id string) (*models.Repair, error) {
	r, ok := f.repairs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepository) CreateRepair(ctx context.Context, r *models.Repair) error {
	f.nextID++
	r.ID = fmt.Sprintf("repair-%d", f.nextID)
	r.CreatedAt = models.Timestamp{Seconds: int64(1700000000 + f.nextID)}
	cp := *r
	f.repairs[r.ID] = &cp
	return nil
}

func (f *fakeRepository) UpdateRepair(ctx context.Context, r *models.Repair) error {
	if _, ok := f.repairs[r.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *r
	f.repairs[r.ID] = &cp
	return nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt models.Timestamp) error {
	r, ok := f.repairs[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.statusWrites++
	f.lastTimestamp = updatedAt
	r.Status = string(status)
	r.UpdatedAt = &updatedAt
	return nil
}

func (f *fakeRepository) DeleteRepair(ctx context.Context, id string) error {
	if _, ok := f.repairs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.repairs, id)
	return nil
}

func (f *fakeRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepository) FindClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}
