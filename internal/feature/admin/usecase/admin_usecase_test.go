package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "buildright/internal/feature/auth/domain"
	authentity "buildright/internal/feature/auth/domain/entity"
	predentity "buildright/internal/feature/predictions/domain/entity"
)

type mockUserStore struct {
	CountFunc      func(ctx context.Context) (int64, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]authentity.User, error)
	FindAdminFunc  func(ctx context.Context) (*authentity.User, error)
}

func (m *mockUserStore) Count(ctx context.Context) (int64, error) { return m.CountFunc(ctx) }
func (m *mockUserStore) ListRecent(ctx context.Context, limit int) ([]authentity.User, error) {
	return m.ListRecentFunc(ctx, limit)
}
func (m *mockUserStore) FindAdmin(ctx context.Context) (*authentity.User, error) {
	return m.FindAdminFunc(ctx)
}

type mockPredictionStore struct {
	CountFunc               func(ctx context.Context) (int64, error)
	ListRecentWithOwnerFunc func(ctx context.Context, limit int) ([]predentity.PredictionWithOwner, error)
}

func (m *mockPredictionStore) Count(ctx context.Context) (int64, error) { return m.CountFunc(ctx) }
func (m *mockPredictionStore) ListRecentWithOwner(ctx context.Context, limit int) ([]predentity.PredictionWithOwner, error) {
	return m.ListRecentWithOwnerFunc(ctx, limit)
}

func TestAdminUsecase_UserStats(t *testing.T) {
	t.Run("combines count and recent listing", func(t *testing.T) {
		gotLimit := 0
		users := &mockUserStore{
			CountFunc: func(ctx context.Context) (int64, error) { return 42, nil },
			ListRecentFunc: func(ctx context.Context, limit int) ([]authentity.User, error) {
				gotLimit = limit
				return []authentity.User{{ID: 2}, {ID: 1}}, nil
			},
		}
		uc := NewAdminUsecase(users, &mockPredictionStore{})

		stats, err := uc.UserStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(42), stats.TotalUsers)
		assert.Len(t, stats.RecentUsers, 2)
		assert.Equal(t, recentLimit, gotLimit)
	})

	t.Run("count failure surfaces", func(t *testing.T) {
		users := &mockUserStore{
			CountFunc: func(ctx context.Context) (int64, error) { return 0, errors.New("db gone") },
		}
		uc := NewAdminUsecase(users, &mockPredictionStore{})

		_, err := uc.UserStats(context.Background())

		assert.Error(t, err)
	})
}

func TestAdminUsecase_PredictionStats(t *testing.T) {
	t.Run("combines count and recent listing", func(t *testing.T) {
		gotLimit := 0
		preds := &mockPredictionStore{
			CountFunc: func(ctx context.Context) (int64, error) { return 7, nil },
			ListRecentWithOwnerFunc: func(ctx context.Context, limit int) ([]predentity.PredictionWithOwner, error) {
				gotLimit = limit
				return []predentity.PredictionWithOwner{{ID: 3}}, nil
			},
		}
		uc := NewAdminUsecase(&mockUserStore{}, preds)

		stats, err := uc.PredictionStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(7), stats.TotalPredictions)
		assert.Len(t, stats.RecentPredictions, 1)
		assert.Equal(t, recentLimit, gotLimit)
	})

	t.Run("listing failure surfaces", func(t *testing.T) {
		preds := &mockPredictionStore{
			CountFunc: func(ctx context.Context) (int64, error) { return 7, nil },
			ListRecentWithOwnerFunc: func(ctx context.Context, limit int) ([]predentity.PredictionWithOwner, error) {
				return nil, errors.New("db gone")
			},
		}
		uc := NewAdminUsecase(&mockUserStore{}, preds)

		_, err := uc.PredictionStats(context.Background())

		assert.Error(t, err)
	})
}

func TestAdminUsecase_AdminDetails(t *testing.T) {
	t.Run("returns the admin account", func(t *testing.T) {
		users := &mockUserStore{
			FindAdminFunc: func(ctx context.Context) (*authentity.User, error) {
				return &authentity.User{ID: 1, Email: "admin@buildright.com", Role: authentity.RoleAdmin}, nil
			},
		}
		uc := NewAdminUsecase(users, &mockPredictionStore{})

		admin, err := uc.AdminDetails(context.Background())

		require.NoError(t, err)
		assert.Equal(t, authentity.RoleAdmin, admin.Role)
	})

	t.Run("missing admin passes through ErrUserNotFound", func(t *testing.T) {
		users := &mockUserStore{
			FindAdminFunc: func(ctx context.Context) (*authentity.User, error) {
				return nil, authdomain.ErrUserNotFound
			},
		}
		uc := NewAdminUsecase(users, &mockPredictionStore{})

		_, err := uc.AdminDetails(context.Background())

		assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
	})
}
