package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LabelMale   = "male"
	LabelFemale = "female"
)

// ErrEmptyCorpus is returned when no usable rows remain after filtering.
var ErrEmptyCorpus = errors.New("corpus contains no usable documents")

// Document is one labeled training sample. Label is empty at inference time.
type Document struct {
	Text  string
	Label string
}

// SupportedLabel reports whether l is one of the two trained classes.
func SupportedLabel(l string) bool {
	return l == LabelMale || l == LabelFemale
}

// LoadCSV reads a corpus file with a header row containing at least the
// "text" and "gender" columns (any position). Rows with empty text or a
// label outside {male, female} are dropped, never fatal; an empty result
// after filtering is.
func LoadCSV(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV is LoadCSV over an arbitrary reader.
func ReadCSV(r io.Reader) ([]Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus header: %w", err)
	}

	textCol, genderCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "text":
			textCol = i
		case "gender":
			genderCol = i
		}
	}
	if textCol == -1 || genderCol == -1 {
		return nil, fmt.Errorf("corpus header missing required columns: got %v", header)
	}

	var docs []Document
	dropped := 0
	counts := map[string]int{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("[Corpus] Skipping malformed row",
				slog.String("error", err.Error()))
			dropped++
			continue
		}
		if textCol >= len(row) || genderCol >= len(row) {
			dropped++
			continue
		}

		text := strings.TrimSpace(row[textCol])
		label := strings.ToLower(strings.TrimSpace(row[genderCol]))
		if text == "" || !SupportedLabel(label) {
			dropped++
			continue
		}

		docs = append(docs, Document{Text: text, Label: label})
		counts[label]++
	}

	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	slog.Info("[Corpus] Loaded corpus",
		slog.Int("documents", len(docs)),
		slog.Int("dropped", dropped),
		slog.Int(LabelMale, counts[LabelMale]),
		slog.Int(LabelFemale, counts[LabelFemale]))

	return docs, nil
}
