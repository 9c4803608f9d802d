// Package entity defines the domain entities for the predictions feature.
package entity

import "time"

// Accepted values for the categorical project parameters. They mirror the
// categories the recommendation model was trained on.
var (
	EnvironmentalTypes = []string{"Coastal", "Mountain", "Rural", "Suburban", "Urban"}
	ProjectTypes       = []string{"Commercial", "Industrial", "Infrastructure", "Residential"}
	SoilTypes          = []string{"Chalky", "Clay", "Loamy", "Peaty", "Sandy", "Silty"}
)

// Prediction pairs a set of project parameters with the material the
// recommendation engine produced for them. Records are immutable once created.
// The JSON field names follow the wire format consumed by the web client.
type Prediction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user, or nil for an anonymous submission. There
	// is no cascade: user deletion is not an exposed operation.
	UserID *uint `gorm:"index" json:"userId"`

	Budget   float64 `gorm:"not null" json:"budget"`
	AreaSize float64 `gorm:"not null" json:"area_size"`

	EnvironmentalType string `gorm:"size:32;not null" json:"environmental_type"`
	ProjectType       string `gorm:"size:32;not null" json:"project_type"`
	SoilType          string `gorm:"size:32;not null" json:"soil_type"`

	// PredictedMaterial is the free-form label returned by the engine.
	PredictedMaterial string `gorm:"size:255;not null" json:"predicted_material"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Prediction) TableName() string { return "predictions" }

// PredictionWithOwner is a prediction joined with its owner's contact fields.
// The owner columns are nil when the owning user was never recorded; the JSON
// then omits them rather than failing the row.
type PredictionWithOwner struct {
	ID                uint      `json:"id"`
	UserID            *uint     `json:"userId"`
	Budget            float64   `json:"budget"`
	AreaSize          float64   `gorm:"column:area_size" json:"area_size"`
	EnvironmentalType string    `json:"environmental_type"`
	ProjectType       string    `json:"project_type"`
	SoilType          string    `json:"soil_type"`
	PredictedMaterial string    `json:"predicted_material"`
	CreatedAt         time.Time `json:"createdAt"`

	OwnerFirstName *string `gorm:"column:owner_first_name" json:"firstName,omitempty"`
	OwnerLastName  *string `gorm:"column:owner_last_name" json:"lastName,omitempty"`
	OwnerEmail     *string `gorm:"column:owner_email" json:"email,omitempty"`
}
