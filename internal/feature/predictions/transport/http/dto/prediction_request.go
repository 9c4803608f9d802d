package dto

import "buildright/internal/feature/predictions/domain/entity"

// StorePredictionReq represents the request body for POST /predictions. The
// material has already been computed by a preceding /predict call; userId may
// be omitted for anonymous submissions.
type StorePredictionReq struct {
	UserID            *uint   `json:"userId"`
	Budget            float64 `json:"budget" binding:"required,gt=0"`
	AreaSize          float64 `json:"area_size" binding:"required,gt=0"`
	EnvironmentalType string  `json:"environmental_type" binding:"required,oneof=Coastal Mountain Rural Suburban Urban"`
	ProjectType       string  `json:"project_type" binding:"required,oneof=Commercial Industrial Infrastructure Residential"`
	SoilType          string  `json:"soil_type" binding:"required,oneof=Chalky Clay Loamy Peaty Sandy Silty"`
	PredictedMaterial string  `json:"predicted_material" binding:"required"`
}

// StorePredictionResp is the success body for POST /predictions.
type StorePredictionResp struct {
	Success      bool `json:"success"`
	PredictionID uint `json:"predictionId"`
}

// ListPredictionsResp is the success body for GET /predictions/:userId.
// Predictions is always an array, possibly empty, never null.
type ListPredictionsResp struct {
	Success     bool                `json:"success"`
	Predictions []entity.Prediction `json:"predictions"`
}
