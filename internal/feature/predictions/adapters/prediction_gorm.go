// Package adapters provides the repository implementations for the predictions feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	adminusecase "buildright/internal/feature/admin/usecase"
	"buildright/internal/feature/predictions/domain/entity"
	"buildright/internal/feature/predictions/usecase"
)

// predictionGorm is the gorm-backed implementation of the prediction repositories.
type predictionGorm struct {
	db *gorm.DB
}

// Compile-time checks that predictionGorm satisfies its consumer interfaces.
var (
	_ usecase.PredictionRepository = (*predictionGorm)(nil)
	_ adminusecase.PredictionStore = (*predictionGorm)(nil)
)

// NewPredictionGorm creates a new instance of predictionGorm on the given connection.
func NewPredictionGorm(db *gorm.DB) *predictionGorm {
	return &predictionGorm{db: db}
}

// Create inserts the prediction record.
func (r *predictionGorm) Create(ctx context.Context, p *entity.Prediction) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ListForUser returns the user's predictions ordered strictly newest-first.
// The id is the tie-breaker for records created within the same timestamp.
func (r *predictionGorm) ListForUser(ctx context.Context, userID uint) ([]entity.Prediction, error) {
	predictions := make([]entity.Prediction, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

// ListRecentWithOwner returns the newest predictions joined with their owner's
// contact fields. The LEFT JOIN keeps predictions whose owner was never
// recorded; their owner columns scan as nil.
func (r *predictionGorm) ListRecentWithOwner(ctx context.Context, limit int) ([]entity.PredictionWithOwner, error) {
	rows := make([]entity.PredictionWithOwner, 0)
	err := r.db.WithContext(ctx).
		Table("predictions").
		Select("predictions.*, users.first_name AS owner_first_name, users.last_name AS owner_last_name, users.email AS owner_email").
		Joins("LEFT JOIN users ON users.id = predictions.user_id").
		Order("predictions.created_at DESC, predictions.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total number of predictions.
func (r *predictionGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Prediction{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
