package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_PolarityDirection(t *testing.T) {
	scorer := NewScorer()

	happy := scorer.Score("I love this, it is absolutely wonderful and amazing!")
	angry := scorer.Score("I hate this, it is terrible and completely useless.")

	assert.Greater(t, happy.Polarity, 0.3)
	assert.Less(t, angry.Polarity, -0.3)
}

func TestScore_Ranges(t *testing.T) {
	scorer := NewScorer()

	for _, text := range []string{
		"The meeting is scheduled for three o'clock.",
		"WONDERFUL!!! best day ever!!!",
		"worst experience of my life, awful",
	} {
		reading := scorer.Score(text)
		assert.GreaterOrEqual(t, reading.Polarity, -1.0)
		assert.LessOrEqual(t, reading.Polarity, 1.0)
		assert.GreaterOrEqual(t, reading.Subjectivity, 0.0)
		assert.LessOrEqual(t, reading.Subjectivity, 1.0)
	}
}

func TestScore_FactualTextIsLessSubjective(t *testing.T) {
	scorer := NewScorer()

	factual := scorer.Score("The train departs at nine from platform four.")
	emotional := scorer.Score("I absolutely love this amazing wonderful fantastic thing!")

	assert.Less(t, factual.Subjectivity, emotional.Subjectivity)
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "check  out", RemoveLinks("check https://example.com/page out"))
	assert.Equal(t, "the docs here", RemoveLinks("the [docs here](https://example.com/docs)"))
}

func TestConvertMarkdownToText(t *testing.T) {
	plain := ConvertMarkdownToText("# Heading\n\nSome **bold** text with a [link](https://example.com).")

	assert.Contains(t, plain, "Heading")
	assert.Contains(t, plain, "bold")
	assert.NotContains(t, plain, "**")
	assert.NotContains(t, plain, "https://example.com")
	assert.NotContains(t, plain, "<")
}
