package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CandidateConfig names one classifier variant in the model bank together
// with its hyperparameters. Fields that a variant does not use are ignored.
type CandidateConfig struct {
	Name         string  `yaml:"name"`
	MaxIter      int     `yaml:"max_iter"`
	LearningRate float64 `yaml:"learning_rate"`
	L2           float64 `yaml:"l2"`
	Smoothing    float64 `yaml:"smoothing"`
}

// TrainingConfig controls the offline training pipeline. The candidate list
// is ordered: ties on F1 fall to the earlier entry.
type TrainingConfig struct {
	TestSplit  float64           `yaml:"test_split"`
	Seed       int64             `yaml:"seed"`
	Parallel   bool              `yaml:"parallel"`
	Candidates []CandidateConfig `yaml:"candidates"`
}

func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		TestSplit: 0.2,
		Seed:      42,
		Candidates: []CandidateConfig{
			{Name: "logistic_regression", MaxIter: 200, LearningRate: 0.1, L2: 0.001},
			{Name: "naive_bayes", Smoothing: 1.0},
			{Name: "linear_svm", MaxIter: 1000, LearningRate: 0.01, L2: 0.0001},
		},
	}
}

// LoadTrainingConfig reads a YAML training config, falling back to defaults
// for anything the file leaves unset. A missing path returns the defaults.
func LoadTrainingConfig(path string) (TrainingConfig, error) {
	cfg := DefaultTrainingConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read training config %s: %w", path, err)
	}

	var overrides TrainingConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, fmt.Errorf("failed to parse training config %s: %w", path, err)
	}

	if overrides.TestSplit > 0 {
		cfg.TestSplit = overrides.TestSplit
	}
	if overrides.Seed != 0 {
		cfg.Seed = overrides.Seed
	}
	cfg.Parallel = overrides.Parallel
	if len(overrides.Candidates) > 0 {
		cfg.Candidates = overrides.Candidates
	}
	return cfg, nil
}
