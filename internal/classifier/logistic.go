package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spacesedan/textsense/internal/vectorizer"
)

// LogisticRegression is a binary logistic classifier trained with stochastic
// gradient descent on the negative log-likelihood, with L2 regularization.
// Fields are exported for gob encoding.
type LogisticRegression struct {
	Classes      []string // Classes[1] is the sigmoid-positive class
	Weights      []float64
	Bias         float64
	MaxIter      int
	LearningRate float64
	L2           float64
}

func NewLogisticRegression(maxIter int, learningRate, l2 float64) *LogisticRegression {
	if maxIter <= 0 {
		maxIter = 200
	}
	if learningRate <= 0 {
		learningRate = 0.1
	}
	return &LogisticRegression{
		MaxIter:      maxIter,
		LearningRate: learningRate,
		L2:           l2,
	}
}

func (m *LogisticRegression) Name() string { return "logistic_regression" }

func (m *LogisticRegression) Fit(X []vectorizer.FeatureVector, y []string, dim int) error {
	if len(X) == 0 || len(X) != len(y) {
		return fmt.Errorf("logistic_regression: degenerate training set (%d samples, %d labels)", len(X), len(y))
	}

	m.Classes = sortedClasses(y)
	if len(m.Classes) != 2 {
		return fmt.Errorf("logistic_regression: expected 2 classes, got %d", len(m.Classes))
	}

	targets := make([]float64, len(y))
	for i, label := range y {
		if label == m.Classes[1] {
			targets[i] = 1
		}
	}

	m.Weights = make([]float64, dim)
	m.Bias = 0

	for iter := 0; iter < m.MaxIter; iter++ {
		for i, x := range X {
			p := sigmoid(m.score(x))
			grad := p - targets[i]

			if m.L2 > 0 {
				floats.Scale(1-m.LearningRate*m.L2, m.Weights)
			}
			for idx, val := range x {
				m.Weights[idx] -= m.LearningRate * grad * val
			}
			m.Bias -= m.LearningRate * grad
		}
	}
	return nil
}

func (m *LogisticRegression) Predict(x vectorizer.FeatureVector) string {
	if sigmoid(m.score(x)) >= 0.5 {
		return m.Classes[1]
	}
	return m.Classes[0]
}

func (m *LogisticRegression) PredictProba(x vectorizer.FeatureVector) (map[string]float64, bool) {
	p := sigmoid(m.score(x))
	return map[string]float64{
		m.Classes[0]: 1 - p,
		m.Classes[1]: p,
	}, true
}

func (m *LogisticRegression) score(x vectorizer.FeatureVector) float64 {
	score := m.Bias
	for idx, val := range x {
		if idx < len(m.Weights) {
			score += m.Weights[idx] * val
		}
	}
	return score
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
