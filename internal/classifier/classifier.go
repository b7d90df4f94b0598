package classifier

import (
	"fmt"
	"sort"

	"github.com/spacesedan/textsense/config"
	"github.com/spacesedan/textsense/internal/vectorizer"
)

// FallbackConfidence is reported for variants that expose no native class
// probabilities. Expressed as a percentage.
const FallbackConfidence = 100.0

// Model is one classifier variant over TF-IDF feature vectors.
type Model interface {
	Name() string

	// Fit trains on the full feature matrix. dim is the fixed dimensionality
	// of the fitted feature space.
	Fit(X []vectorizer.FeatureVector, y []string, dim int) error

	// Predict returns the label for one feature vector.
	Predict(x vectorizer.FeatureVector) string

	// PredictProba returns per-class probabilities summing to 1, or false if
	// the variant has no native probability estimates.
	PredictProba(x vectorizer.FeatureVector) (map[string]float64, bool)
}

// Candidate pairs a bank entry's registered name with its model.
type Candidate struct {
	Name  string
	Model Model
}

// NewBank builds the ordered candidate list from configuration. Order is
// load-bearing: the selector breaks exact F1 ties in favor of earlier
// candidates.
func NewBank(cfgs []config.CandidateConfig) ([]Candidate, error) {
	bank := make([]Candidate, 0, len(cfgs))
	for _, cfg := range cfgs {
		model, err := newModel(cfg)
		if err != nil {
			return nil, err
		}
		bank = append(bank, Candidate{Name: cfg.Name, Model: model})
	}
	if len(bank) == 0 {
		return nil, fmt.Errorf("model bank is empty")
	}
	return bank, nil
}

func newModel(cfg config.CandidateConfig) (Model, error) {
	switch cfg.Name {
	case "logistic_regression":
		return NewLogisticRegression(cfg.MaxIter, cfg.LearningRate, cfg.L2), nil
	case "naive_bayes":
		return NewNaiveBayes(cfg.Smoothing), nil
	case "linear_svm":
		return NewLinearSVM(cfg.MaxIter, cfg.LearningRate, cfg.L2), nil
	default:
		return nil, fmt.Errorf("unknown classifier variant %q", cfg.Name)
	}
}

// sortedClasses returns the distinct labels in y in a stable order.
func sortedClasses(y []string) []string {
	seen := make(map[string]bool)
	var classes []string
	for _, label := range y {
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	sort.Strings(classes)
	return classes
}
