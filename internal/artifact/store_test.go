package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/textsense/internal/classifier"
	"github.com/spacesedan/textsense/internal/vectorizer"
)

func trainedPair(t *testing.T) (classifier.Model, *vectorizer.Vectorizer) {
	t.Helper()

	docs := []string{
		"i love shopping for dresses and shoes",
		"baking cookies with the family today",
		"working on my car engine in the garage",
		"watching football and playing video games",
	}
	labels := []string{"female", "female", "male", "male"}

	vec := vectorizer.New()
	X, err := vec.FitTransform(docs)
	require.NoError(t, err)

	model := classifier.NewLogisticRegression(100, 0.1, 0.001)
	require.NoError(t, model.Fit(X, labels, vec.Dim()))
	return model, vec
}

func TestStore_RoundTrip(t *testing.T) {
	model, vec := trainedPair(t)
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(model, vec))

	loadedModel, loadedVec, err := store.Load()
	require.NoError(t, err)

	// Predictions on a fixed sample are bit-identical after the round trip.
	samples := []string{
		"i love shopping",
		"fixing the car",
		"baking a cake for everyone",
	}
	for _, text := range samples {
		orig := model.Predict(vec.Transform(text))
		loaded := loadedModel.Predict(loadedVec.Transform(text))
		assert.Equal(t, orig, loaded)

		origProbs, ok1 := model.PredictProba(vec.Transform(text))
		loadedProbs, ok2 := loadedModel.PredictProba(loadedVec.Transform(text))
		require.Equal(t, ok1, ok2)
		assert.Equal(t, origProbs, loadedProbs)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	model, vec := trainedPair(t)
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(model, vec))
	require.NoError(t, store.Save(model, vec))

	_, _, err := store.Load()
	assert.NoError(t, err)
}

func TestStore_MissingVectorizer(t *testing.T) {
	model, vec := trainedPair(t)
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(model, vec))
	require.NoError(t, os.Remove(filepath.Join(dir, VectorizerFile)))

	_, _, err := store.Load()
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Path, VectorizerFile)
}

func TestStore_MissingEverything(t *testing.T) {
	store := NewStore(t.TempDir())

	_, _, err := store.Load()
	var missing *MissingError
	assert.ErrorAs(t, err, &missing)
}

func TestStore_CorruptModel(t *testing.T) {
	model, vec := trainedPair(t)
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save(model, vec))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ModelFile), []byte("not a gob"), 0o644))

	_, _, err := store.Load()
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)

	// Corrupt and missing stay distinguishable.
	var missing *MissingError
	assert.False(t, errors.As(err, &missing))
}
