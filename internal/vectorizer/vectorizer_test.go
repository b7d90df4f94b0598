package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTransform(t *testing.T) {
	v := New()
	docs := []string{
		"the cat sat on the mat",
		"the dog sat on the log",
		"cats and dogs",
	}

	vectors, err := v.FitTransform(docs)
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	assert.Equal(t, len(v.Vocabulary), v.Dim())
	assert.Len(t, v.IDF, v.Dim())

	// Every fitted vector is L2-normalized.
	for _, vec := range vectors {
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
	}
}

func TestFitTransform_VocabularyDeterminism(t *testing.T) {
	docs := []string{"alpha beta", "beta gamma", "gamma alpha delta"}

	v1, v2 := New(), New()
	_, err := v1.FitTransform(docs)
	require.NoError(t, err)
	_, err = v2.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, v1.Vocabulary, v2.Vocabulary)
	assert.Equal(t, v1.IDF, v2.IDF)
}

func TestTransform_UnseenTermsContributeNothing(t *testing.T) {
	v := New()
	_, err := v.FitTransform([]string{"apples oranges", "oranges pears"})
	require.NoError(t, err)

	vec := v.Transform("zebras unicorns")
	assert.Empty(t, vec)

	mixed := v.Transform("apples zebras")
	require.Len(t, mixed, 1)
	_, ok := mixed[v.Vocabulary["apples"]]
	assert.True(t, ok)
}

func TestFitTransform_EmptyVocabulary(t *testing.T) {
	v := New()
	_, err := v.FitTransform([]string{"", "   ", "!!!"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"splits punctuation", "I love coding, and games!", []string{"i", "love", "coding", "and", "games"}},
		{"keeps digits", "top 10 lists", []string{"top", "10", "lists"}},
		{"empty", "  ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}
