// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	adminusecase "buildright/internal/feature/admin/usecase"
	"buildright/internal/feature/auth/domain"
	"buildright/internal/feature/auth/domain/entity"
	"buildright/internal/feature/auth/usecase"
)

// userGorm is the gorm-backed implementation of the user repositories.
type userGorm struct {
	db *gorm.DB
}

// Compile-time checks that userGorm satisfies its consumer interfaces.
var (
	_ usecase.UserRepository = (*userGorm)(nil)
	_ adminusecase.UserStore = (*userGorm)(nil)
)

// NewUserGorm creates a new instance of userGorm on the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. The unique index on email is the source of truth
// for duplicates; gorm's translated error maps it to domain.ErrEmailAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the user with the given email, or domain.ErrUserNotFound.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with the given id, or domain.ErrUserNotFound.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListRecent returns the newest users first, at most limit of them.
func (r *userGorm) ListRecent(ctx context.Context, limit int) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users.
func (r *userGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// FindAdmin returns the single account with the admin role, or
// domain.ErrUserNotFound when no admin has been seeded.
func (r *userGorm) FindAdmin(ctx context.Context) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("role = ?", entity.RoleAdmin).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
