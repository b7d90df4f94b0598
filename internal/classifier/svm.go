package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/spacesedan/textsense/internal/vectorizer"
)

// LinearSVM is a maximum-margin linear classifier trained with hinge-loss
// SGD and L2 regularization. It exposes no native class probabilities, so
// callers fall back to FallbackConfidence. Fields are exported for gob
// encoding.
type LinearSVM struct {
	Classes      []string // Classes[1] is the +1 class
	Weights      []float64
	Bias         float64
	MaxIter      int
	LearningRate float64
	L2           float64
}

func NewLinearSVM(maxIter int, learningRate, l2 float64) *LinearSVM {
	if maxIter <= 0 {
		maxIter = 1000
	}
	if learningRate <= 0 {
		learningRate = 0.01
	}
	return &LinearSVM{
		MaxIter:      maxIter,
		LearningRate: learningRate,
		L2:           l2,
	}
}

func (m *LinearSVM) Name() string { return "linear_svm" }

func (m *LinearSVM) Fit(X []vectorizer.FeatureVector, y []string, dim int) error {
	if len(X) == 0 || len(X) != len(y) {
		return fmt.Errorf("linear_svm: degenerate training set (%d samples, %d labels)", len(X), len(y))
	}

	m.Classes = sortedClasses(y)
	if len(m.Classes) != 2 {
		return fmt.Errorf("linear_svm: expected 2 classes, got %d", len(m.Classes))
	}

	targets := make([]float64, len(y))
	for i, label := range y {
		if label == m.Classes[1] {
			targets[i] = 1
		} else {
			targets[i] = -1
		}
	}

	m.Weights = make([]float64, dim)
	m.Bias = 0

	for iter := 0; iter < m.MaxIter; iter++ {
		for i, x := range X {
			margin := targets[i] * m.score(x)

			if m.L2 > 0 {
				floats.Scale(1-m.LearningRate*m.L2, m.Weights)
			}
			if margin < 1 {
				for idx, val := range x {
					m.Weights[idx] += m.LearningRate * targets[i] * val
				}
				m.Bias += m.LearningRate * targets[i]
			}
		}
	}
	return nil
}

func (m *LinearSVM) Predict(x vectorizer.FeatureVector) string {
	if m.score(x) >= 0 {
		return m.Classes[1]
	}
	return m.Classes[0]
}

// PredictProba always reports false: margins are not probabilities.
func (m *LinearSVM) PredictProba(vectorizer.FeatureVector) (map[string]float64, bool) {
	return nil, false
}

func (m *LinearSVM) score(x vectorizer.FeatureVector) float64 {
	score := m.Bias
	for idx, val := range x {
		if idx < len(m.Weights) {
			score += m.Weights[idx] * val
		}
	}
	return score
}
