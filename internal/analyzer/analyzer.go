package analyzer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/textsense/internal/artifact"
	"github.com/spacesedan/textsense/internal/classifier"
	"github.com/spacesedan/textsense/internal/mood"
	"github.com/spacesedan/textsense/internal/sentiment"
	"github.com/spacesedan/textsense/internal/vectorizer"
)

// Sentiment class labels derived from polarity.
const (
	SentimentVeryPositive = "Very Positive"
	SentimentPositive     = "Positive"
	SentimentVeryNegative = "Very Negative"
	SentimentNegative     = "Negative"
	SentimentNeutral      = "Neutral"
)

// Analysis is the full result for one document.
type Analysis struct {
	Text         string     `json:"text"`
	Label        string     `json:"label"`
	Confidence   float64    `json:"confidence"` // percentage in [0, 100]
	Sentiment    string     `json:"sentiment"`
	Polarity     float64    `json:"polarity"`
	Subjectivity float64    `json:"subjectivity"`
	Mood         mood.Label `json:"mood"`
}

// Session bundles the loaded model, fitted vectorizer and sentiment scorer
// for one inference session. All of it is read-only after construction, so
// any number of goroutines may call Predict concurrently.
type Session struct {
	model  classifier.Model
	vec    *vectorizer.Vectorizer
	scorer *sentiment.Scorer
}

// NewSession wraps an already-loaded artifact pair.
func NewSession(model classifier.Model, vec *vectorizer.Vectorizer) *Session {
	return &Session{
		model:  model,
		vec:    vec,
		scorer: sentiment.NewScorer(),
	}
}

// LoadSession reads the persisted artifact from store and builds a session
// around it. Artifact errors pass through untouched so callers can tell
// missing from corrupt.
func LoadSession(store *artifact.Store) (*Session, error) {
	model, vec, err := store.Load()
	if err != nil {
		return nil, err
	}

	slog.Info("[Analyzer] Artifact loaded",
		slog.String("model", model.Name()),
		slog.Int("vocabulary", vec.Dim()))

	return NewSession(model, vec), nil
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims
// the ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Predict runs the full analysis for one document. The step order is fixed:
// normalize, vectorize, classify, score sentiment, derive sentiment class,
// derive mood.
func (s *Session) Predict(text string) (Analysis, error) {
	normalized := NormalizeWhitespace(text)
	if normalized == "" {
		return Analysis{}, ErrEmptyInput
	}

	vec := s.vec.Transform(normalized)

	label, confidence, err := s.classify(vec)
	if err != nil {
		return Analysis{}, &AnalysisError{Step: "classify", Err: err}
	}

	reading := s.scorer.Score(normalized)

	return Analysis{
		Text:         normalized,
		Label:        label,
		Confidence:   confidence,
		Sentiment:    sentimentClass(reading.Polarity),
		Polarity:     reading.Polarity,
		Subjectivity: reading.Subjectivity,
		Mood:         mood.Analyze(normalized, reading.Polarity, reading.Subjectivity),
	}, nil
}

// PredictGender is the narrow contract: label plus confidence percentage.
func (s *Session) PredictGender(text string) (string, float64, error) {
	analysis, err := s.Predict(text)
	if err != nil {
		return "", 0, err
	}
	return analysis.Label, analysis.Confidence, nil
}

func (s *Session) classify(vec vectorizer.FeatureVector) (string, float64, error) {
	label := s.model.Predict(vec)
	if label == "" {
		return "", 0, fmt.Errorf("model %q returned no label", s.model.Name())
	}

	probs, ok := s.model.PredictProba(vec)
	if !ok {
		return label, classifier.FallbackConfidence, nil
	}

	top := probs[label]
	for _, p := range probs {
		if p > top {
			top = p
		}
	}
	return label, top * 100, nil
}

func sentimentClass(polarity float64) string {
	switch {
	case polarity > 0.3:
		return SentimentVeryPositive
	case polarity > 0:
		return SentimentPositive
	case polarity < -0.3:
		return SentimentVeryNegative
	case polarity < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
