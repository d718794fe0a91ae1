package main

import (
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"perceptron/internal/config"
	"perceptron/internal/data"
	"perceptron/internal/metrics"
	"perceptron/internal/models"
	"perceptron/internal/report"
	"perceptron/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfgPath := flag.String("config", "", "YAML or TOML config file")
	dataPath := flag.String("data", "", "CSV dataset (feature columns then label)")
	gate := flag.String("gate", "", "Train on a logic gate instead: and|or|nand|nor")
	regen := flag.Bool("regen", false, "Generate a linearly separable dataset at -data first")
	n := flag.Int("n", 0, "Number of synthetic samples")
	nFeatures := flag.Int("features", 0, "Number of synthetic features")
	eta := flag.Float64("eta", 0, "Learning rate")
	epochs := flag.Int("epochs", 0, "Number of epochs")
	seed := flag.Uint64("seed", 0, "Seed for weights, generator and split (0 = time based)")
	testFrac := flag.Float64("test_frac", 0, "Holdout fraction")
	modelDir := flag.String("model_dir", "", "Directory for the saved model")
	modelFile := flag.String("model_file", "", "Model file name; .gob and .json pick those codecs")
	curve := flag.Bool("curve", true, "Write the per epoch training curve (CSV and PNG)")
	curveImg := flag.String("curve_out_img", "", "PNG of the training curve")
	curveCsv := flag.String("curve_out_csv", "", "CSV of the training curve")
	flag.Parse()
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg.ApplyOverrides(config.Overrides{
		Eta:       *eta,
		Epochs:    *epochs,
		Features:  *nFeatures,
		Seed:      *seed,
		Data:      *dataPath,
		Gate:      *gate,
		Samples:   *n,
		TestFrac:  *testFrac,
		ModelDir:  *modelDir,
		ModelFile: *modelFile,
		Set:       set,
	})
	if *curveImg != "" {
		cfg.CurvePNG = *curveImg
	}
	if *curveCsv != "" {
		cfg.CurveCSV = *curveCsv
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	ds, err := loadDataset(cfg, *regen, logger)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}
	pos, neg := ds.Counts()
	logger.Info("class distribution", zap.Int("positive", pos), zap.Int("negative", neg))

	train, test := ds, ds
	if cfg.Gate == "" {
		train, test = data.StratifiedSplit(ds, cfg.TestFrac, cfg.Seed)
	}

	p := models.NewPerceptron(ds.Features(), cfg.Eta, cfg.Epochs, models.WithSeed(cfg.Seed), models.WithLogger(logger))
	start := time.Now()
	if err := p.Fit(train.X, train.Y); err != nil {
		logger.Fatal("training failed", zap.Error(err))
	}
	loss, err := p.TotalLoss()
	if err != nil {
		logger.Fatal("total loss", zap.Error(err))
	}
	logger.Info("training done",
		zap.Int("epochs", cfg.Epochs),
		zap.Float64("eta", cfg.Eta),
		zap.Float64("total_loss", loss),
		zap.Float64s("weights", p.Weights()),
		zap.Duration("took", time.Since(start)),
	)

	tx, ty := p.TrainingSet()
	if trainPreds, err := p.Predict(tx); err == nil {
		logger.Info("training accuracy", zap.Float64("accuracy", metrics.Accuracy(ty, trainPreds)))
	}

	preds, err := p.Predict(test.X)
	if err != nil {
		logger.Fatal("prediction failed", zap.Error(err))
	}
	s := metrics.Evaluate(test.Y, preds)
	logger.Info("holdout metrics",
		zap.String("model", p.Name()),
		zap.Int("samples", test.Len()),
		zap.Float64("accuracy", s.Accuracy),
		zap.Float64("precision", s.Precision),
		zap.Float64("recall", s.Recall),
		zap.Float64("f1", s.F1),
	)

	path, err := p.Save(cfg.ModelFile, cfg.ModelDir)
	if err != nil {
		logger.Fatal("failed to save model", zap.Error(err))
	}
	fmt.Println("Model:", p.Name(), "saved to", path)

	if *curve {
		if err := report.WriteCurveCSV(cfg.CurveCSV, p.History()); err != nil {
			logger.Warn("failed to write curve CSV", zap.Error(err))
		}
		if err := report.PlotCurvePNG(cfg.CurvePNG, p.History()); err != nil {
			logger.Warn("failed to write curve PNG", zap.Error(err))
		} else {
			logger.Info("training curve written", zap.String("png", cfg.CurvePNG), zap.String("csv", cfg.CurveCSV))
		}
	}
}

func loadDataset(cfg *config.Config, regen bool, logger *zap.Logger) (data.Dataset, error) {
	switch {
	case cfg.Gate != "":
		return data.Gate(cfg.Gate)
	case cfg.Data == "":
		return data.Dataset{}, fmt.Errorf("either a gate or a data path is required")
	case regen:
		logger.Info("generating separable dataset",
			zap.Int("n", cfg.Samples), zap.Int("features", cfg.Features), zap.String("out", cfg.Data))
		return data.GenerateSeparable(cfg.Samples, cfg.Features, cfg.Seed, cfg.Data)
	default:
		return data.LoadCSV(cfg.Data)
	}
}
