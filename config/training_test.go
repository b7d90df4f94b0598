package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTrainingConfig(t *testing.T) {
	cfg := DefaultTrainingConfig()

	assert.Equal(t, 0.2, cfg.TestSplit)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Parallel)

	require.Len(t, cfg.Candidates, 3)
	assert.Equal(t, "logistic_regression", cfg.Candidates[0].Name)
	assert.Equal(t, "naive_bayes", cfg.Candidates[1].Name)
	assert.Equal(t, "linear_svm", cfg.Candidates[2].Name)
}

func TestLoadTrainingConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadTrainingConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTrainingConfig(), cfg)
}

func TestLoadTrainingConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.yaml")
	yaml := `
test_split: 0.3
seed: 7
parallel: true
candidates:
  - name: naive_bayes
    smoothing: 0.5
  - name: logistic_regression
    max_iter: 500
    learning_rate: 0.05
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadTrainingConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.TestSplit)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Parallel)

	// The configured list replaces the default bank, order preserved.
	require.Len(t, cfg.Candidates, 2)
	assert.Equal(t, "naive_bayes", cfg.Candidates[0].Name)
	assert.Equal(t, 0.5, cfg.Candidates[0].Smoothing)
	assert.Equal(t, 500, cfg.Candidates[1].MaxIter)
}

func TestLoadTrainingConfig_MissingFile(t *testing.T) {
	_, err := LoadTrainingConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTrainingConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := LoadTrainingConfig(path)
	assert.Error(t, err)
}
