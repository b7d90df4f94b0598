package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_RuleTable(t *testing.T) {
	tests := []struct {
		name string
		f    Features
		want Label
	}{
		{"very excited", Features{Polarity: 0.8, Exclamations: 2}, VeryExcited},
		{"excited", Features{Polarity: 0.6, Exclamations: 1}, Excited},
		{"happy", Features{Polarity: 0.4}, Happy},
		{"very angry", Features{Polarity: -0.8}, VeryAngry},
		{"angry", Features{Polarity: -0.6}, Angry},
		{"sad", Features{Polarity: -0.4}, Sad},
		{"very curious", Features{Questions: 3}, VeryCurious},
		{"curious", Features{Questions: 1}, Curious},
		{"very emphatic", Features{CapsRatio: 0.6}, VeryEmphatic},
		{"emphatic", Features{CapsRatio: 0.4}, Emphatic},
		{"very emotional", Features{Subjectivity: 0.95}, VeryEmotional},
		{"emotional", Features{Subjectivity: 0.85}, Emotional},
		{"very objective", Features{Subjectivity: 0.05}, VeryObjective},
		{"objective", Features{Subjectivity: 0.15}, Objective},
		{"neutral", Features{Subjectivity: 0.5}, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.f))
		})
	}
}

func TestClassify_OrderSensitivity(t *testing.T) {
	// Satisfies both the very-excited and very-curious predicates; the
	// earlier row must win.
	f := Features{Polarity: 0.8, Exclamations: 2, Questions: 3, Subjectivity: 0.5}
	assert.Equal(t, VeryExcited, Classify(f))

	// High polarity without exclamations skips the excitement rows and
	// lands on happy before the question rows.
	f = Features{Polarity: 0.8, Questions: 3, Subjectivity: 0.5}
	assert.Equal(t, Happy, Classify(f))
}

func TestClassify_StrictBoundaries(t *testing.T) {
	// Thresholds are strict; sitting exactly on one falls through.
	assert.NotEqual(t, Happy, Classify(Features{Polarity: 0.3, Subjectivity: 0.5}))
	assert.Equal(t, Neutral, Classify(Features{Polarity: 0.3, Subjectivity: 0.5}))

	assert.Equal(t, Neutral, Classify(Features{Polarity: -0.3, Subjectivity: 0.5}))
	assert.Equal(t, Sad, Classify(Features{Polarity: -0.31, Subjectivity: 0.5}))

	assert.Equal(t, Neutral, Classify(Features{Subjectivity: 0.2}))
	assert.Equal(t, Objective, Classify(Features{Subjectivity: 0.19}))
}

func TestExtractFeatures(t *testing.T) {
	f := ExtractFeatures("WHY is THIS happening?? help!", 0.1, 0.5)

	assert.Equal(t, 1, f.Exclamations)
	assert.Equal(t, 2, f.Questions)
	assert.Equal(t, 5, f.WordCount)
	assert.Equal(t, 0.1, f.Polarity)
	assert.Equal(t, 0.5, f.Subjectivity)
	assert.InDelta(t, 7.0/29.0, f.CapsRatio, 1e-9)
}

func TestExtractFeatures_EmptyText(t *testing.T) {
	f := ExtractFeatures("", 0, 0.5)
	assert.Zero(t, f.CapsRatio)
	assert.Zero(t, f.WordCount)
}

func TestAnalyze_AllCapsIsEmphatic(t *testing.T) {
	assert.Equal(t, VeryEmphatic, Analyze("THIS IS IMPORTANT", 0.1, 0.5))
}
