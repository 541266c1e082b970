package models

// Repair is one work order in the `repairs` collection. The owner/vehicle
// fields are a snapshot of the client at creation time, not a reference;
// ClientID is the explicit link newer documents carry, while historical
// ones are associated heuristically (see internal/matching).
type Repair struct {
	ID string `bson:"_id,omitempty" json:"id"`

	ClientID string `bson:"clientId,omitempty" json:"clientId,omitempty"`

	OwnerName  string `bson:"ownerName" json:"ownerName"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Make       string `bson:"make,omitempty" json:"make"`
	Model      string `bson:"model,omitempty" json:"model"`
	EngineSize string `bson:"engineSize,omitempty" json:"engineSize"`
	Vin        string `bson:"vin,omitempty" json:"vin,omitempty"`

	// Repairs is the legacy free-text description. When SelectedServices
	// is in use it is kept in sync as the newline-joined service names.
	Repairs          string            `bson:"repairs,omitempty" json:"repairs"`
	SelectedServices []SelectedService `bson:"selectedServices,omitempty" json:"selectedServices,omitempty"`
	Cost             float64           `bson:"cost" json:"cost"`
	AdditionalInfo   string            `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`

	Status string `bson:"status" json:"status"`

	OwnerEmail string `bson:"ownerEmail,omitempty" json:"ownerEmail,omitempty"`
	UserEmail  string `bson:"userEmail,omitempty" json:"userEmail,omitempty"`

	CreatedAt Timestamp  `bson:"createdAt" json:"createdAt"`
	UpdatedAt *Timestamp `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Car is the display form of the vehicle, used for sorting and search.
func (r Repair) Car() string {
	return r.Make + " " + r.Model
}
