package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// Reading is the per-document sentiment signal. Polarity is the VADER
// compound score in [-1, 1]. Subjectivity in [0, 1] is the non-neutral
// proportion of the text: VADER has no native subjectivity, so the share of
// sentiment-bearing mass stands in for how opinion-laden the text is.
type Reading struct {
	Polarity     float64
	Subjectivity float64
}

// Scorer wraps a VADER analyzer. Zero-value is not usable; construct with
// NewScorer. Safe for concurrent use: scoring mutates no analyzer state.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := tagPattern.ReplaceAllString(string(output), " ")
	plainText = strings.Join(strings.Fields(plainText), " ")

	return RemoveLinks(plainText)
}

// Score analyzes one document, stripping markdown and links first so the
// reading reflects the prose rather than formatting.
func (s *Scorer) Score(text string) Reading {
	plainText := ConvertMarkdownToText(text)

	scores := s.analyzer.PolarityScores(plainText)
	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}

	return Reading{
		Polarity:     scores.Compound,
		Subjectivity: subjectivity,
	}
}
