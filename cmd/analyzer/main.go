package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"perceptron/internal/data"
	"perceptron/internal/metrics"
	"perceptron/internal/models"
	"perceptron/internal/report"
)

func main() {
	modelPath := flag.String("model", "model/perceptron.bin", "Saved model")
	dataPath := flag.String("data", "", "CSV dataset to evaluate on")
	gate := flag.String("gate", "", "Evaluate on a logic gate: and|or|nand|nor")
	outImg := flag.String("out_img", "data/decision_boundary.png", "Decision boundary PNG (two feature models)")
	flag.Parse()

	p, err := models.Load(*modelPath, models.WithLogger(zap.NewNop()))
	if err != nil {
		fmt.Println("Failed to load model:", err)
		os.Exit(1)
	}

	var ds data.Dataset
	if *gate != "" {
		ds, err = data.Gate(*gate)
	} else {
		ds, err = data.LoadCSV(*dataPath)
	}
	if err != nil {
		fmt.Println("Failed to load dataset:", err)
		os.Exit(1)
	}

	preds, err := p.Predict(ds.X)
	if err != nil {
		fmt.Println("Prediction failed:", err)
		os.Exit(1)
	}
	s := metrics.Evaluate(ds.Y, preds)
	fmt.Printf("%s | features=%d | eta=%g | epochs=%d\n", p.Name(), p.Features(), p.Eta, p.Epochs)
	fmt.Printf("weights=%v\n", p.Weights())
	fmt.Printf("samples=%d | acc=%.3f | precision=%.3f | recall=%.3f | f1=%.3f\n",
		ds.Len(), s.Accuracy, s.Precision, s.Recall, s.F1)
	fmt.Printf("tp=%d fp=%d tn=%d fn=%d\n", s.TP, s.FP, s.TN, s.FN)

	if p.Features() != 2 {
		return
	}
	if err := report.PlotBoundaryPNG(*outImg, ds, p.Weights()); err != nil {
		fmt.Println("Failed to save PNG:", err)
	} else {
		fmt.Println("Decision boundary saved to:", *outImg)
	}
}
