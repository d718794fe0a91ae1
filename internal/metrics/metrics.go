package metrics

// Summary is the holdout report logged by the trainer and analyzer.
type Summary struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	TP, FP    int
	TN, FN    int
}

func Accuracy(y, p []int) float64 {
	if len(y) == 0 {
		return 0
	}
	c := 0
	for i := range y {
		if y[i] == p[i] {
			c++
		}
	}
	return float64(c) / float64(len(y))
}

func Confusion(y, p []int) (tp, fp, tn, fn int) {
	for i := range y {
		switch {
		case p[i] == 1 && y[i] == 1:
			tp++
		case p[i] == 1 && y[i] == 0:
			fp++
		case p[i] == 0 && y[i] == 0:
			tn++
		default:
			fn++
		}
	}
	return
}

func PRF1(y, p []int) (precision, recall, f1 float64) {
	tp, fp, _, fn := Confusion(y, p)
	if tp+fp > 0 {
		precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		recall = float64(tp) / float64(tp+fn)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return
}

func Evaluate(y, p []int) Summary {
	s := Summary{Accuracy: Accuracy(y, p)}
	s.TP, s.FP, s.TN, s.FN = Confusion(y, p)
	s.Precision, s.Recall, s.F1 = PRF1(y, p)
	return s
}
