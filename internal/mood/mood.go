package mood

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label is one discrete mood. The set is closed; moods are recomputed per
// call and never persisted.
type Label string

const (
	VeryExcited   Label = "Very Excited/Enthusiastic"
	Excited       Label = "Excited/Enthusiastic"
	Happy         Label = "Happy/Positive"
	VeryAngry     Label = "Very Angry/Frustrated"
	Angry         Label = "Angry/Frustrated"
	Sad           Label = "Sad/Negative"
	VeryCurious   Label = "Very Curious/Questioning"
	Curious       Label = "Curious/Questioning"
	VeryEmphatic  Label = "Very Emphatic/Intense"
	Emphatic      Label = "Emphatic/Intense"
	VeryEmotional Label = "Very Emotional"
	Emotional     Label = "Emotional"
	VeryObjective Label = "Very Objective/Factual"
	Objective     Label = "Objective/Factual"
	Neutral       Label = "Neutral"
)

// Features are the per-document inputs to the decision list. WordCount is
// computed alongside the others but no rule currently gates on it.
type Features struct {
	Polarity     float64
	Subjectivity float64
	Exclamations int
	Questions    int
	CapsRatio    float64
	WordCount    int
}

// ExtractFeatures derives the lexical counts for text and combines them
// with the given sentiment signal. CapsRatio is 0 for empty text.
func ExtractFeatures(text string, polarity, subjectivity float64) Features {
	f := Features{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Exclamations: strings.Count(text, "!"),
		Questions:    strings.Count(text, "?"),
		WordCount:    len(strings.Fields(text)),
	}

	if length := utf8.RuneCountInString(text); length > 0 {
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		f.CapsRatio = float64(upper) / float64(length)
	}
	return f
}

type rule struct {
	match  func(Features) bool
	result Label
}

// rules is evaluated strictly top to bottom; the first match wins. Earlier
// rows shadow later ones, so order changes classification for inputs that
// satisfy several predicates. Thresholds are strict comparisons.
var rules = []rule{
	{func(f Features) bool { return f.Polarity > 0.7 && f.Exclamations > 1 }, VeryExcited},
	{func(f Features) bool { return f.Polarity > 0.5 && f.Exclamations > 0 }, Excited},
	{func(f Features) bool { return f.Polarity > 0.3 }, Happy},
	{func(f Features) bool { return f.Polarity < -0.7 }, VeryAngry},
	{func(f Features) bool { return f.Polarity < -0.5 }, Angry},
	{func(f Features) bool { return f.Polarity < -0.3 }, Sad},
	{func(f Features) bool { return f.Questions > 2 }, VeryCurious},
	{func(f Features) bool { return f.Questions > 0 }, Curious},
	{func(f Features) bool { return f.CapsRatio > 0.5 }, VeryEmphatic},
	{func(f Features) bool { return f.CapsRatio > 0.3 }, Emphatic},
	{func(f Features) bool { return f.Subjectivity > 0.9 }, VeryEmotional},
	{func(f Features) bool { return f.Subjectivity > 0.8 }, Emotional},
	{func(f Features) bool { return f.Subjectivity < 0.1 }, VeryObjective},
	{func(f Features) bool { return f.Subjectivity < 0.2 }, Objective},
}

// Classify runs the decision list and returns the first matching mood, or
// Neutral when nothing fires.
func Classify(f Features) Label {
	for _, r := range rules {
		if r.match(f) {
			return r.result
		}
	}
	return Neutral
}

// Analyze is the one-call form: extract features for text, then classify.
func Analyze(text string, polarity, subjectivity float64) Label {
	return Classify(ExtractFeatures(text, polarity, subjectivity))
}
