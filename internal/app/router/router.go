// Package router assembles the gin engine: middleware chain and every route.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	adminhandler "buildright/internal/feature/admin/transport/handler"
	authhandler "buildright/internal/feature/auth/transport/handler"
	predhandler "buildright/internal/feature/predictions/transport/handler"
)

type Handlers struct {
	Auth        *authhandler.AuthHandler
	Predictions *predhandler.PredictionHandler
	Admin       *adminhandler.AdminHandler
}

func New(log *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(cors.Default())
	r.Use(metricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)

	r.POST("/predict", h.Predictions.Predict)
	r.POST("/predictions", h.Predictions.Store)
	r.GET("/predictions/:userId", h.Predictions.ListByUser)

	// TODO: gate these behind authentication once a session scheme lands.
	admin := r.Group("/admin")
	{
		admin.GET("/users", h.Admin.Users)
		admin.GET("/predictions", h.Admin.Predictions)
		admin.GET("/details", h.Admin.Details)
	}

	return r
}
