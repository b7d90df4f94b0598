package classifier

import (
	"fmt"
	"math"

	"github.com/spacesedan/textsense/internal/vectorizer"
)

// NaiveBayes is a multinomial Naive Bayes classifier over TF-IDF weights
// with Laplace smoothing. Fields are exported for gob encoding.
type NaiveBayes struct {
	Classes       []string
	ClassDocs     map[string]int
	FeatureTotals map[string][]float64 // per-class summed feature weights
	ClassTotals   map[string]float64   // per-class total feature mass
	TotalDocs     int
	Dim           int
	Smoothing     float64
}

func NewNaiveBayes(smoothing float64) *NaiveBayes {
	if smoothing <= 0 {
		smoothing = 1.0
	}
	return &NaiveBayes{Smoothing: smoothing}
}

func (m *NaiveBayes) Name() string { return "naive_bayes" }

func (m *NaiveBayes) Fit(X []vectorizer.FeatureVector, y []string, dim int) error {
	if len(X) == 0 || len(X) != len(y) {
		return fmt.Errorf("naive_bayes: degenerate training set (%d samples, %d labels)", len(X), len(y))
	}

	m.Classes = sortedClasses(y)
	m.ClassDocs = make(map[string]int)
	m.FeatureTotals = make(map[string][]float64)
	m.ClassTotals = make(map[string]float64)
	m.TotalDocs = len(X)
	m.Dim = dim

	for _, class := range m.Classes {
		m.FeatureTotals[class] = make([]float64, dim)
	}

	for i, x := range X {
		class := y[i]
		m.ClassDocs[class]++
		totals := m.FeatureTotals[class]
		for idx, val := range x {
			totals[idx] += val
			m.ClassTotals[class] += val
		}
	}
	return nil
}

func (m *NaiveBayes) Predict(x vectorizer.FeatureVector) string {
	best, _ := m.posteriors(x)
	return best
}

func (m *NaiveBayes) PredictProba(x vectorizer.FeatureVector) (map[string]float64, bool) {
	_, logProbs := m.posteriors(x)

	// Normalize log-posteriors into probabilities summing to 1.
	maxLog := math.Inf(-1)
	for _, lp := range logProbs {
		if lp > maxLog {
			maxLog = lp
		}
	}
	probs := make(map[string]float64, len(logProbs))
	var sum float64
	for class, lp := range logProbs {
		probs[class] = math.Exp(lp - maxLog)
		sum += probs[class]
	}
	for class := range probs {
		probs[class] /= sum
	}
	return probs, true
}

func (m *NaiveBayes) posteriors(x vectorizer.FeatureVector) (string, map[string]float64) {
	logProbs := make(map[string]float64, len(m.Classes))

	best := ""
	bestScore := math.Inf(-1)
	for _, class := range m.Classes {
		lp := math.Log(float64(m.ClassDocs[class]) / float64(m.TotalDocs))
		denom := m.ClassTotals[class] + m.Smoothing*float64(m.Dim)
		totals := m.FeatureTotals[class]

		for idx, val := range x {
			var mass float64
			if idx < len(totals) {
				mass = totals[idx]
			}
			lp += val * math.Log((mass+m.Smoothing)/denom)
		}

		logProbs[class] = lp
		if lp > bestScore {
			bestScore = lp
			best = class
		}
	}
	return best, logProbs
}
