// Package usecase implements the business logic of the predictions feature.
package usecase

import (
	"context"
	"fmt"
	"slices"

	"buildright/internal/feature/predictions/domain"
	"buildright/internal/feature/predictions/domain/entity"
)

// PredictionRepository abstracts persistence for prediction records.
// Following Go convention the interface is defined by the consumer (usecase),
// not the provider (adapters).
type PredictionRepository interface {
	// Create persists a new prediction record.
	Create(ctx context.Context, p *entity.Prediction) error

	// ListForUser returns the user's predictions newest-first. An empty
	// slice, not an error, when none exist.
	ListForUser(ctx context.Context, userID uint) ([]entity.Prediction, error)
}

// RecommendInput carries the validated project parameters submitted for a
// recommendation. Budget and area size are float64 throughout; the engine
// receives their shortest exact decimal form.
type RecommendInput struct {
	Budget            float64
	AreaSize          float64
	EnvironmentalType string
	ProjectType       string
	SoilType          string
}

// Recommender obtains a single material recommendation from the external
// engine. Implementations block until the engine terminates or times out.
type Recommender interface {
	Predict(ctx context.Context, in RecommendInput) (string, error)
}

// StoreInput carries the fields of a prediction to persist. The material has
// already been computed by a preceding /predict call.
type StoreInput struct {
	UserID            *uint
	Budget            float64
	AreaSize          float64
	EnvironmentalType string
	ProjectType       string
	SoilType          string
	PredictedMaterial string
}

type predictionUsecase struct {
	predictions PredictionRepository
	recommender Recommender
}

// NewPredictionUsecase creates a new instance of predictionUsecase.
func NewPredictionUsecase(predictions PredictionRepository, recommender Recommender) *predictionUsecase {
	return &predictionUsecase{predictions: predictions, recommender: recommender}
}

func validateParams(budget, areaSize float64, environmentalType, projectType, soilType string) error {
	if budget <= 0 || areaSize <= 0 ||
		!slices.Contains(entity.EnvironmentalTypes, environmentalType) ||
		!slices.Contains(entity.ProjectTypes, projectType) ||
		!slices.Contains(entity.SoilTypes, soilType) {
		return domain.ErrMissingFields
	}
	return nil
}

// Recommend validates the project parameters and asks the engine for a
// material label. No record is stored here; persisting the result is a
// separate, explicit Store call.
func (u *predictionUsecase) Recommend(ctx context.Context, in RecommendInput) (string, error) {
	if err := validateParams(in.Budget, in.AreaSize, in.EnvironmentalType, in.ProjectType, in.SoilType); err != nil {
		return "", err
	}
	return u.recommender.Predict(ctx, in)
}

// Store validates and persists a prediction record, returning its id.
// Records are immutable once created.
func (u *predictionUsecase) Store(ctx context.Context, in StoreInput) (uint, error) {
	if err := validateParams(in.Budget, in.AreaSize, in.EnvironmentalType, in.ProjectType, in.SoilType); err != nil {
		return 0, err
	}
	if in.PredictedMaterial == "" {
		return 0, domain.ErrMissingFields
	}

	p := &entity.Prediction{
		UserID:            in.UserID,
		Budget:            in.Budget,
		AreaSize:          in.AreaSize,
		EnvironmentalType: in.EnvironmentalType,
		ProjectType:       in.ProjectType,
		SoilType:          in.SoilType,
		PredictedMaterial: in.PredictedMaterial,
	}
	if err := u.predictions.Create(ctx, p); err != nil {
		return 0, fmt.Errorf("create prediction: %w", err)
	}
	return p.ID, nil
}

// ListForUser returns the user's prediction history, newest first.
func (u *predictionUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.Prediction, error) {
	return u.predictions.ListForUser(ctx, userID)
}
