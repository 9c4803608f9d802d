// Package handler provides the HTTP handlers for the predictions feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"buildright/internal/api"
	"buildright/internal/feature/predictions/domain"
	"buildright/internal/feature/predictions/domain/entity"
	"buildright/internal/feature/predictions/transport/http/dto"
	"buildright/internal/feature/predictions/usecase"
)

// PredictionUsecase defines the prediction operations the handler depends on.
type PredictionUsecase interface {
	// Recommend obtains a material label from the recommendation engine.
	Recommend(ctx context.Context, in usecase.RecommendInput) (string, error)
	// Store persists an already-computed prediction and returns its id.
	Store(ctx context.Context, in usecase.StoreInput) (uint, error)
	// ListForUser returns a user's predictions, newest first.
	ListForUser(ctx context.Context, userID uint) ([]entity.Prediction, error)
}

// PredictionHandler handles HTTP requests for recommendations and prediction history.
type PredictionHandler struct {
	predictions PredictionUsecase
	log         *zap.Logger
}

// NewPredictionHandler creates a new instance of PredictionHandler.
func NewPredictionHandler(predictions PredictionUsecase, log *zap.Logger) *PredictionHandler {
	return &PredictionHandler{predictions: predictions, log: log}
}

// Predict handles POST /predict. It invokes the recommendation engine and
// returns the material label without persisting anything; the client stores
// the result through POST /predictions afterwards.
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req dto.PredictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error("All fields are required"))
		return
	}

	label, err := h.predictions.Recommend(c.Request.Context(), usecase.RecommendInput{
		Budget:            req.Budget,
		AreaSize:          req.AreaSize,
		EnvironmentalType: req.EnvironmentalType,
		ProjectType:       req.ProjectType,
		SoilType:          req.SoilType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, api.Error("All fields are required"))
			return
		}
		// Engine diagnostics are already logged by the invoker.
		h.log.Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.Error("Failed to get prediction"))
		return
	}

	c.JSON(http.StatusOK, dto.PredictResp{Success: true, Prediction: label})
}

// Store handles POST /predictions.
func (h *PredictionHandler) Store(c *gin.Context) {
	var req dto.StorePredictionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	id, err := h.predictions.Store(c.Request.Context(), usecase.StoreInput{
		UserID:            req.UserID,
		Budget:            req.Budget,
		AreaSize:          req.AreaSize,
		EnvironmentalType: req.EnvironmentalType,
		ProjectType:       req.ProjectType,
		SoilType:          req.SoilType,
		PredictedMaterial: req.PredictedMaterial,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, api.Error("All fields are required"))
			return
		}
		h.log.Error("store prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.Error("Failed to store prediction"))
		return
	}

	c.JSON(http.StatusCreated, dto.StorePredictionResp{Success: true, PredictionID: id})
}

// ListByUser handles GET /predictions/:userId.
func (h *PredictionHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Invalid user id"))
		return
	}

	predictions, err := h.predictions.ListForUser(c.Request.Context(), uint(userID))
	if err != nil {
		h.log.Error("list predictions failed", zap.Error(err), zap.Uint64("user_id", userID))
		c.JSON(http.StatusInternalServerError, api.Error("Failed to get predictions"))
		return
	}
	if predictions == nil {
		predictions = []entity.Prediction{}
	}

	c.JSON(http.StatusOK, dto.ListPredictionsResp{Success: true, Predictions: predictions})
}
