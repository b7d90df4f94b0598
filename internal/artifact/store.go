package artifact

import (
	"encoding/gob"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/textsense/internal/classifier"
	"github.com/spacesedan/textsense/internal/vectorizer"
)

const (
	ModelFile      = "gender_model.gob"
	VectorizerFile = "vectorizer.gob"
)

func init() {
	gob.Register(&classifier.LogisticRegression{})
	gob.Register(&classifier.NaiveBayes{})
	gob.Register(&classifier.LinearSVM{})
}

// modelEnvelope wraps the model interface so gob records the concrete type.
type modelEnvelope struct {
	Model classifier.Model
}

// Store persists the selected (model, vectorizer) pair as two independent
// gob files in one directory. Artifacts are immutable once written; a new
// training run overwrites them wholesale.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes both units, overwriting any prior artifact at the same
// location. If the second write fails after the first succeeded, the
// returned error still names the failed unit so the partial state is
// visible.
func (s *Store) Save(model classifier.Model, vec *vectorizer.Vectorizer) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return &WriteError{Path: s.dir, Err: err}
	}

	if err := encodeGob(s.modelPath(), modelEnvelope{Model: model}); err != nil {
		return err
	}
	if err := encodeGob(s.vectorizerPath(), vec); err != nil {
		return err
	}

	slog.Info("[ArtifactStore] Saved artifact",
		slog.String("model", s.modelPath()),
		slog.String("vectorizer", s.vectorizerPath()))
	return nil
}

// Load reads both units back. A missing unit yields *MissingError, an
// undecodable one *CorruptError; both are reportable, never a panic.
func (s *Store) Load() (classifier.Model, *vectorizer.Vectorizer, error) {
	var envelope modelEnvelope
	if err := decodeGob(s.modelPath(), &envelope); err != nil {
		return nil, nil, err
	}

	var vec vectorizer.Vectorizer
	if err := decodeGob(s.vectorizerPath(), &vec); err != nil {
		return nil, nil, err
	}

	return envelope.Model, &vec, nil
}

func (s *Store) modelPath() string      { return filepath.Join(s.dir, ModelFile) }
func (s *Store) vectorizerPath() string { return filepath.Join(s.dir, VectorizerFile) }

func encodeGob(path string, object any) error {
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(object); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := file.Sync(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func decodeGob(path string, objectPointer any) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &MissingError{Path: path}
		}
		return &CorruptError{Path: path, Err: err}
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(objectPointer); err != nil {
		return &CorruptError{Path: path, Err: err}
	}
	return nil
}
