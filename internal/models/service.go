package models

// Service is a catalog entry billable on repairs. Staff-managed.
type Service struct {
	ID string `bson:"_id,omitempty" json:"id"`

	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description"`

	CreatedAt *Timestamp `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// SelectedService is a value snapshot of a Service taken when it is
// attached to a repair. Catalog price edits must never change the cost
// of historical repairs, so no live reference is kept.
type SelectedService struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Snapshot copies the catalog entry into an embedded value.
func (s Service) Snapshot() SelectedService {
	return SelectedService{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
	}
}
