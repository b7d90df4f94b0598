package vectorizer

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// ErrEmptyVocabulary is returned when fitting yields no usable terms.
var ErrEmptyVocabulary = errors.New("training corpus produced an empty vocabulary")

// FeatureVector is a sparse mapping from vocabulary index to TF-IDF weight.
type FeatureVector map[int]float64

// Vectorizer learns a vocabulary and IDF weights once at fit time and then
// produces TF-IDF vectors against that fixed vocabulary. Fields are exported
// for gob encoding; they must not be mutated after fitting.
type Vectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
	NumDocs    int
}

func New() *Vectorizer {
	return &Vectorizer{
		Vocabulary: make(map[string]int),
	}
}

// Tokenize lowercases the text and splits on any non-letter, non-digit rune.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// FitTransform learns the vocabulary and document frequencies from docs and
// returns their feature vectors in one pass.
func (v *Vectorizer) FitTransform(docs []string) ([]FeatureVector, error) {
	docFreq := make(map[string]int)
	tokenized := make([][]string, len(docs))

	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			docFreq[tok]++
			if _, ok := v.Vocabulary[tok]; !ok {
				v.Vocabulary[tok] = len(v.Vocabulary)
			}
		}
	}

	if len(v.Vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v.NumDocs = len(docs)
	v.IDF = make([]float64, len(v.Vocabulary))
	for term, df := range docFreq {
		// Smoothed IDF: ln((1+N)/(1+df)) + 1, so seen terms never zero out.
		v.IDF[v.Vocabulary[term]] = math.Log(float64(1+v.NumDocs)/float64(1+df)) + 1
	}

	vectors := make([]FeatureVector, len(docs))
	for i, tokens := range tokenized {
		vectors[i] = v.vectorize(tokens)
	}
	return vectors, nil
}

// Transform vectorizes one document against the fitted vocabulary. Terms the
// fit never saw contribute nothing.
func (v *Vectorizer) Transform(doc string) FeatureVector {
	return v.vectorize(Tokenize(doc))
}

// Dim returns the fixed dimensionality of the fitted feature space.
func (v *Vectorizer) Dim() int {
	return len(v.Vocabulary)
}

func (v *Vectorizer) vectorize(tokens []string) FeatureVector {
	vec := make(FeatureVector)
	for _, tok := range tokens {
		if idx, ok := v.Vocabulary[tok]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx := range vec {
		vec[idx] *= v.IDF[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}
