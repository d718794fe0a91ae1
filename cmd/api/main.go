package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"perceptron/internal/api"
	"perceptron/internal/config"
	"perceptron/internal/models"
	"perceptron/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfgPath := flag.String("config", "", "YAML or TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	path := cfg.ModelPath()
	p, err := models.Load(path, models.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to load model", zap.String("path", path), zap.Error(err))
	}
	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("features", p.Features()),
		zap.Float64s("weights", p.Weights()),
	)

	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(p, cfg.APIKey, logger)
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
