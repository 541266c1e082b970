package models

// Client is one vehicle-owner/vehicle pairing in the `clients` collection.
// Uniqueness is by convention only (owner name); duplicates are filtered
// at read time, never at the storage layer.
type Client struct {
	ID string `bson:"_id,omitempty" json:"id"`

	OwnerName  string `bson:"ownerName" json:"ownerName"`
	Phone      string `bson:"phone,omitempty" json:"phone"`
	Email      string `bson:"email,omitempty" json:"email,omitempty"`
	Make       string `bson:"make,omitempty" json:"make"`
	Model      string `bson:"model,omitempty" json:"model"`
	EngineSize string `bson:"engineSize,omitempty" json:"engineSize"`
	Vin        string `bson:"vin,omitempty" json:"vin,omitempty"`

	CreatedAt *Timestamp `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt *Timestamp `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
