// Package usecase implements the business logic of the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"buildright/internal/feature/auth/domain"
	"buildright/internal/feature/auth/domain/entity"
)

// UserRepository abstracts persistence for user accounts. Following Go
// convention the interface is defined by the consumer (usecase), not the
// provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailAlreadyExists when
	// a user with the same email is already stored.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user matching the given email, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// SignupInput carries the registration fields. All of them are required.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Company   string
	JobTitle  string
}

type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// Signup registers a new user with a bcrypt-hashed credential and returns the
// new user id. The role is always "user"; the admin account is only ever
// created by the bootstrap seed.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (uint, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" ||
		in.Password == "" || in.Company == "" || in.JobTitle == "" {
		return 0, domain.ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hashed),
		Company:   in.Company,
		JobTitle:  in.JobTitle,
		Role:      entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login verifies the submitted credential and returns the stored user record.
// A bcrypt comparison runs even when the user does not exist so that unknown
// emails and wrong passwords take the same time and yield the same error.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Dummy hash keeps bcrypt.CompareHashAndPassword on every path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
