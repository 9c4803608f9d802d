// Package dto defines data transfer objects for the predictions feature's HTTP transport layer.
package dto

// PredictReq represents the request body for the /predict endpoint. The
// categorical fields are constrained to the values the model was trained on.
type PredictReq struct {
	Budget            float64 `json:"budget" binding:"required,gt=0"`
	AreaSize          float64 `json:"area_size" binding:"required,gt=0"`
	EnvironmentalType string  `json:"environmental_type" binding:"required,oneof=Coastal Mountain Rural Suburban Urban"`
	ProjectType       string  `json:"project_type" binding:"required,oneof=Commercial Industrial Infrastructure Residential"`
	SoilType          string  `json:"soil_type" binding:"required,oneof=Chalky Clay Loamy Peaty Sandy Silty"`
}

// PredictResp is the success body for /predict.
type PredictResp struct {
	Success    bool   `json:"success"`
	Prediction string `json:"prediction"`
}
