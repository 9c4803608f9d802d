package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"buildright/internal/feature/predictions/domain"
	"buildright/internal/feature/predictions/domain/entity"
	"buildright/internal/feature/predictions/usecase"
)

// mockPredictionUsecase is a mock implementation of the PredictionUsecase interface.
type mockPredictionUsecase struct {
	RecommendFunc   func(ctx context.Context, in usecase.RecommendInput) (string, error)
	StoreFunc       func(ctx context.Context, in usecase.StoreInput) (uint, error)
	ListForUserFunc func(ctx context.Context, userID uint) ([]entity.Prediction, error)
}

func (m *mockPredictionUsecase) Recommend(ctx context.Context, in usecase.RecommendInput) (string, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, in)
	}
	return "", domain.ErrEngineUnavailable
}

func (m *mockPredictionUsecase) Store(ctx context.Context, in usecase.StoreInput) (uint, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, in)
	}
	return 1, nil
}

func (m *mockPredictionUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.Prediction, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	return []entity.Prediction{}, nil
}

func newRouter(uc PredictionUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPredictionHandler(uc, zap.NewNop())

	r := gin.New()
	r.POST("/predict", h.Predict)
	r.POST("/predictions", h.Store)
	r.GET("/predictions/:userId", h.ListByUser)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload gin.H) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func predictBody() gin.H {
	return gin.H{
		"budget":             50000,
		"area_size":          120.5,
		"environmental_type": "Urban",
		"project_type":       "Residential",
		"soil_type":          "Clay",
	}
}

func TestPredictionHandler_Predict(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			RecommendFunc: func(ctx context.Context, in usecase.RecommendInput) (string, error) {
				assert.Equal(t, 120.5, in.AreaSize)
				return "Reinforced Concrete", nil
			},
		})

		w := postJSON(t, r, "/predict", predictBody())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"prediction":"Reinforced Concrete"}`, w.Body.String())
	})

	t.Run("missing field", func(t *testing.T) {
		body := predictBody()
		delete(body, "soil_type")

		r := newRouter(&mockPredictionUsecase{
			RecommendFunc: func(ctx context.Context, in usecase.RecommendInput) (string, error) {
				t.Error("Recommend should not be called")
				return "", nil
			},
		})
		w := postJSON(t, r, "/predict", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"All fields are required"}`, w.Body.String())
	})

	t.Run("unknown enum value", func(t *testing.T) {
		body := predictBody()
		body["environmental_type"] = "Lunar"

		r := newRouter(&mockPredictionUsecase{})
		w := postJSON(t, r, "/predict", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("engine failure yields the fixed error body", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			RecommendFunc: func(ctx context.Context, in usecase.RecommendInput) (string, error) {
				return "", domain.ErrEngineUnavailable
			},
		})
		w := postJSON(t, r, "/predict", predictBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to get prediction"}`, w.Body.String())
	})
}

func TestPredictionHandler_Store(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			StoreFunc: func(ctx context.Context, in usecase.StoreInput) (uint, error) {
				require.NotNil(t, in.UserID)
				assert.EqualValues(t, 7, *in.UserID)
				assert.Equal(t, "Reinforced Concrete", in.PredictedMaterial)
				return 11, nil
			},
		})

		body := predictBody()
		body["userId"] = 7
		body["predicted_material"] = "Reinforced Concrete"
		w := postJSON(t, r, "/predictions", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success":true,"predictionId":11}`, w.Body.String())
	})

	t.Run("anonymous submission omits userId", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			StoreFunc: func(ctx context.Context, in usecase.StoreInput) (uint, error) {
				assert.Nil(t, in.UserID)
				return 12, nil
			},
		})

		body := predictBody()
		body["predicted_material"] = "Timber"
		w := postJSON(t, r, "/predictions", body)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing material", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			StoreFunc: func(ctx context.Context, in usecase.StoreInput) (uint, error) {
				t.Error("Store should not be called")
				return 0, nil
			},
		})

		w := postJSON(t, r, "/predictions", predictBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store fault", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			StoreFunc: func(ctx context.Context, in usecase.StoreInput) (uint, error) {
				return 0, errors.New("disk full")
			},
		})

		body := predictBody()
		body["predicted_material"] = "Steel"
		w := postJSON(t, r, "/predictions", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to store prediction"}`, w.Body.String())
	})
}

func TestPredictionHandler_ListByUser(t *testing.T) {
	t.Run("success with history", func(t *testing.T) {
		owner := uint(7)
		r := newRouter(&mockPredictionUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint) ([]entity.Prediction, error) {
				assert.EqualValues(t, 7, userID)
				return []entity.Prediction{
					{ID: 2, UserID: &owner, AreaSize: 120.5, PredictedMaterial: "Steel"},
					{ID: 1, UserID: &owner, AreaSize: 80, PredictedMaterial: "Timber"},
				}, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/predictions/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success     bool                `json:"success"`
			Predictions []entity.Prediction `json:"predictions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.Predictions, 2)
		assert.Equal(t, 120.5, resp.Predictions[0].AreaSize)
	})

	t.Run("empty history is an array, not null", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint) ([]entity.Prediction, error) {
				return nil, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/predictions/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"predictions":[]}`, w.Body.String())
	})

	t.Run("non-numeric user id", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/predictions/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Invalid user id"}`, w.Body.String())
	})

	t.Run("store fault", func(t *testing.T) {
		r := newRouter(&mockPredictionUsecase{
			ListForUserFunc: func(ctx context.Context, userID uint) ([]entity.Prediction, error) {
				return nil, errors.New("connection reset")
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/predictions/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to get predictions"}`, w.Body.String())
	})
}
