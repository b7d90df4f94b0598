package training

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/spacesedan/textsense/config"
	"github.com/spacesedan/textsense/internal/artifact"
	"github.com/spacesedan/textsense/internal/classifier"
	"github.com/spacesedan/textsense/internal/corpus"
	"github.com/spacesedan/textsense/internal/evaluation"
	"github.com/spacesedan/textsense/internal/vectorizer"
)

// PositiveLabel is the class counted as positive for precision/recall/F1
// across the whole pipeline.
const PositiveLabel = corpus.LabelFemale

// Report is the outcome of one training run: per-candidate metrics in bank
// order, the winner, and the fitted objects ready to persist.
type Report struct {
	Results    []evaluation.Result
	Selected   evaluation.Result
	Model      classifier.Model
	Vectorizer *vectorizer.Vectorizer
}

// Run vectorizes the corpus, fits every configured candidate on the same
// training split, evaluates them on the held-out split and selects the
// winner. A candidate that fails to fit is logged and excluded, not fatal;
// all of them failing is.
func Run(docs []corpus.Document, cfg config.TrainingConfig) (*Report, error) {
	if len(docs) == 0 {
		return nil, corpus.ErrEmptyCorpus
	}

	texts := make([]string, len(docs))
	labels := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
		labels[i] = doc.Label
	}

	vec := vectorizer.New()
	matrix, err := vec.FitTransform(texts)
	if err != nil {
		return nil, err
	}

	trainX, trainY, testX, testY := split(matrix, labels, cfg.TestSplit, cfg.Seed)
	if len(trainX) == 0 || len(testX) == 0 {
		return nil, fmt.Errorf("corpus too small to split: %d documents", len(docs))
	}

	slog.Info("[Training] Corpus vectorized",
		slog.Int("train", len(trainX)),
		slog.Int("test", len(testX)),
		slog.Int("vocabulary", vec.Dim()))

	bank, err := classifier.NewBank(cfg.Candidates)
	if err != nil {
		return nil, err
	}

	fitErrs := fitAll(bank, trainX, trainY, vec.Dim(), cfg.Parallel)

	var results []evaluation.Result
	models := make(map[string]classifier.Model)
	for i, cand := range bank {
		if fitErrs[i] != nil {
			slog.Warn("[Training] Candidate failed to fit, excluding from selection",
				slog.String("candidate", cand.Name),
				slog.String("error", fitErrs[i].Error()))
			continue
		}

		predicted := make([]string, len(testX))
		for j, x := range testX {
			predicted[j] = cand.Model.Predict(x)
		}

		res := evaluation.Evaluate(cand.Name, predicted, testY, PositiveLabel)
		results = append(results, res)
		models[cand.Name] = cand.Model

		slog.Info("[Training] Candidate evaluated",
			slog.String("candidate", res.Candidate),
			slog.Float64("accuracy", res.Accuracy),
			slog.Float64("precision", res.Precision),
			slog.Float64("recall", res.Recall),
			slog.Float64("f1", res.F1))
	}

	selected, err := evaluation.SelectBest(results)
	if err != nil {
		return nil, err
	}

	slog.Info("[Training] Selected best model",
		slog.String("candidate", selected.Candidate),
		slog.Float64("f1", selected.F1))

	return &Report{
		Results:    results,
		Selected:   selected,
		Model:      models[selected.Candidate],
		Vectorizer: vec,
	}, nil
}

// RunAndSave runs the pipeline and persists the winning artifact pair.
func RunAndSave(docs []corpus.Document, cfg config.TrainingConfig, store *artifact.Store) (*Report, error) {
	report, err := Run(docs, cfg)
	if err != nil {
		return nil, err
	}
	if err := store.Save(report.Model, report.Vectorizer); err != nil {
		return nil, err
	}
	return report, nil
}

// fitAll trains every candidate on the identical matrix. Fits share nothing
// writable, so the parallel path needs no locking: each goroutine touches
// only its own error slot.
func fitAll(bank []classifier.Candidate, X []vectorizer.FeatureVector, y []string, dim int, parallel bool) []error {
	errs := make([]error, len(bank))

	if !parallel {
		for i, cand := range bank {
			errs[i] = cand.Model.Fit(X, y, dim)
		}
		return errs
	}

	var wg sync.WaitGroup
	for i, cand := range bank {
		wg.Add(1)
		go func(i int, cand classifier.Candidate) {
			defer wg.Done()
			errs[i] = cand.Model.Fit(X, y, dim)
		}(i, cand)
	}
	wg.Wait()
	return errs
}

// split shuffles deterministically with the configured seed and carves off
// the held-out fraction.
func split(X []vectorizer.FeatureVector, y []string, testFrac float64, seed int64) (trainX []vectorizer.FeatureVector, trainY []string, testX []vectorizer.FeatureVector, testY []string) {
	if testFrac <= 0 || testFrac >= 1 {
		testFrac = 0.2
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(X))

	testSize := int(float64(len(X)) * testFrac)
	for i, idx := range perm {
		if i < testSize {
			testX = append(testX, X[idx])
			testY = append(testY, y[idx])
		} else {
			trainX = append(trainX, X[idx])
			trainY = append(trainY, y[idx])
		}
	}
	return trainX, trainY, testX, testY
}
