package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buildright/internal/api"
	"buildright/internal/feature/admin/transport/http/dto"
	"buildright/internal/feature/admin/usecase"
	authdomain "buildright/internal/feature/auth/domain"
	authentity "buildright/internal/feature/auth/domain/entity"
)

// AdminUsecase is what the handler needs from the admin service layer.
type AdminUsecase interface {
	UserStats(ctx context.Context) (*usecase.UserStats, error)
	PredictionStats(ctx context.Context) (*usecase.PredictionStats, error)
	AdminDetails(ctx context.Context) (*authentity.User, error)
}

type AdminHandler struct {
	admin AdminUsecase
	log   *zap.Logger
}

func NewAdminHandler(admin AdminUsecase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	stats, err := h.admin.UserStats(c.Request.Context())
	if err != nil {
		h.log.Error("user stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.Error("Failed to get users statistics"))
		return
	}
	c.JSON(http.StatusOK, dto.AdminUsersResp{
		Success:     true,
		TotalUsers:  stats.TotalUsers,
		RecentUsers: stats.RecentUsers,
	})
}

// Predictions handles GET /admin/predictions.
func (h *AdminHandler) Predictions(c *gin.Context) {
	stats, err := h.admin.PredictionStats(c.Request.Context())
	if err != nil {
		h.log.Error("prediction stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.Error("Failed to get predictions statistics"))
		return
	}
	c.JSON(http.StatusOK, dto.AdminPredictionsResp{
		Success:           true,
		TotalPredictions:  stats.TotalPredictions,
		RecentPredictions: stats.RecentPredictions,
	})
}

// Details handles GET /admin/details.
func (h *AdminHandler) Details(c *gin.Context) {
	admin, err := h.admin.AdminDetails(c.Request.Context())
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.Error("Admin user not found"))
			return
		}
		h.log.Error("admin details failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.Error("Failed to get admin details"))
		return
	}
	c.JSON(http.StatusOK, dto.AdminDetailsResp{Success: true, Admin: admin})
}
