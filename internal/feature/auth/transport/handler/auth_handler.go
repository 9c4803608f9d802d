// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buildright/internal/api"
	"buildright/internal/feature/auth/domain"
	"buildright/internal/feature/auth/domain/entity"
	"buildright/internal/feature/auth/transport/http/dto"
	"buildright/internal/feature/auth/usecase"
)

// AuthUsecase defines the account operations the handler depends on.
// Following Go convention the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns its id.
	Signup(ctx context.Context, in usecase.SignupInput) (uint, error)
	// Login authenticates a user and returns the stored record.
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	auth AuthUsecase
	log  *zap.Logger
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Signup handles POST /signup.
// - 400 on validation failure or duplicate email
// - 201 with the new user id on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	userID, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Company:   req.Company,
		JobTitle:  req.JobTitle,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, api.Error("Email already exists"))
		case errors.Is(err, domain.ErrMissingFields):
			c.JSON(http.StatusBadRequest, api.Error("All fields are required"))
		default:
			h.log.Error("signup failed", zap.Error(err), zap.String("email", req.Email))
			c.JSON(http.StatusInternalServerError, api.Error("An error occurred during signup"))
		}
		return
	}

	h.log.Info("user signup successful", zap.Uint("user_id", userID), zap.String("email", req.Email))
	c.JSON(http.StatusCreated, dto.SignupResp{Success: true, UserID: userID})
}

// Login handles POST /login.
// Every credential failure yields the same 401 body, so callers cannot probe
// which emails are registered.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Warn("login rejected", zap.String("email", req.Email), zap.String("remote_addr", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, api.Error("Invalid credentials"))
			return
		}
		h.log.Error("login failed", zap.Error(err), zap.String("email", req.Email))
		c.JSON(http.StatusInternalServerError, api.Error("An error occurred during login"))
		return
	}

	h.log.Info("user login successful", zap.Uint("user_id", user.ID))
	c.JSON(http.StatusOK, dto.LoginResp{Success: true, User: user})
}
