package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"perceptron/internal/models"
)

//go:generate mockgen -destination=mock_predictor_test.go -package=api . Predictor

// Predictor is the read-only side of a trained model.
type Predictor interface {
	Predict(X [][]float64) ([]int, error)
	Name() string
	Weights() []float64
}

type predictReq struct {
	Features []float64 `json:"features" binding:"required,min=1"`
}

type predictResp struct {
	Label int    `json:"label"`
	Model string `json:"model"`
}

type server struct {
	model  Predictor
	logger *zap.Logger
}

// NewRouter wires the prediction routes. When apiKey is set the
// prediction routes require a matching X-API-Key header.
func NewRouter(model Predictor, apiKey string, logger *zap.Logger) *gin.Engine {
	s := &server{model: model, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/model", s.handleModel)

	api := r.Group("/")
	api.Use(apiKeyMiddleware(apiKey))
	api.POST("/predict", s.handlePredict)
	api.POST("/batch", s.handleBatch)
	return r
}

func apiKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *server) handleModel(c *gin.Context) {
	w := s.model.Weights()
	c.JSON(http.StatusOK, gin.H{
		"model":    s.model.Name(),
		"features": len(w) - 1,
		"weights":  w,
	})
}

func (s *server) handlePredict(c *gin.Context) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	labels, ok := s.predict(c, [][]float64{req.Features})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, predictResp{Label: labels[0], Model: s.model.Name()})
}

func (s *server) handleBatch(c *gin.Context) {
	var items []predictReq
	if err := c.ShouldBindJSON(&items); err != nil || len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	X := make([][]float64, len(items))
	for i, it := range items {
		X[i] = it.Features
	}
	labels, ok := s.predict(c, X)
	if !ok {
		return
	}
	out := make([]predictResp, len(labels))
	for i, l := range labels {
		out[i] = predictResp{Label: l, Model: s.model.Name()}
	}
	c.JSON(http.StatusOK, out)
}

func (s *server) predict(c *gin.Context, X [][]float64) ([]int, bool) {
	labels, err := s.model.Predict(X)
	switch {
	case errors.Is(err, models.ErrShapeMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, false
	case err != nil:
		s.logger.Error("predict failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return nil, false
	}
	return labels, true
}
