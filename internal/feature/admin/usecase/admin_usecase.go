package usecase

import (
	"context"
	"fmt"

	authentity "buildright/internal/feature/auth/domain/entity"
	predentity "buildright/internal/feature/predictions/domain/entity"
)

// recentLimit caps the dashboard listings.
const recentLimit = 10

// UserStore is the subset of the user repository the dashboard reads from.
type UserStore interface {
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]authentity.User, error)
	FindAdmin(ctx context.Context) (*authentity.User, error)
}

// PredictionStore is the subset of the prediction repository the dashboard reads from.
type PredictionStore interface {
	Count(ctx context.Context) (int64, error)
	ListRecentWithOwner(ctx context.Context, limit int) ([]predentity.PredictionWithOwner, error)
}

type UserStats struct {
	TotalUsers  int64
	RecentUsers []authentity.User
}

type PredictionStats struct {
	TotalPredictions  int64
	RecentPredictions []predentity.PredictionWithOwner
}

type AdminUsecase struct {
	users       UserStore
	predictions PredictionStore
}

func NewAdminUsecase(users UserStore, predictions PredictionStore) *AdminUsecase {
	return &AdminUsecase{users: users, predictions: predictions}
}

// UserStats returns the total user count alongside the most recent signups.
func (u *AdminUsecase) UserStats(ctx context.Context) (*UserStats, error) {
	total, err := u.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	recent, err := u.users.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	return &UserStats{TotalUsers: total, RecentUsers: recent}, nil
}

// PredictionStats returns the total prediction count alongside the most
// recent predictions, each enriched with its owner when one exists.
func (u *AdminUsecase) PredictionStats(ctx context.Context) (*PredictionStats, error) {
	total, err := u.predictions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count predictions: %w", err)
	}
	recent, err := u.predictions.ListRecentWithOwner(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent predictions: %w", err)
	}
	return &PredictionStats{TotalPredictions: total, RecentPredictions: recent}, nil
}

// AdminDetails looks up the seeded administrator account.
func (u *AdminUsecase) AdminDetails(ctx context.Context) (*authentity.User, error) {
	return u.users.FindAdmin(ctx)
}
