package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/textsense/config"
	"github.com/spacesedan/textsense/internal/analyzer"
	"github.com/spacesedan/textsense/internal/artifact"
	"github.com/spacesedan/textsense/internal/history"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Interactive analysis loop with history",
	Long: `Reads one snippet per line and prints gender, confidence, sentiment and mood.
Commands: "history" shows recent analyses, "save <file>" exports the history,
"clear" wipes the screen. Ctrl-D exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := artifact.NewStore(resolveArtifactDir(cmd))
		session, err := analyzer.LoadSession(store)
		if err != nil {
			return err
		}

		var histStore *history.Store
		if path := config.GetAppConfig().HistoryDB; path != "" {
			histStore, err = history.Open(path)
			if err != nil {
				slog.Warn("[Analyze] History disabled",
					slog.String("error", err.Error()))
			} else {
				defer histStore.Close()
			}
		}

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("> ")
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
			case line == "clear":
				fmt.Print("\033[2J\033[H")
			case line == "history":
				showHistory(histStore)
			case strings.HasPrefix(line, "save "):
				saveHistory(histStore, strings.TrimSpace(strings.TrimPrefix(line, "save ")))
			default:
				runAnalysis(session, histStore, line)
			}
			fmt.Print("> ")
		}
		fmt.Println()
		return scanner.Err()
	},
}

func runAnalysis(session *analyzer.Session, histStore *history.Store, text string) {
	analysis, err := session.Predict(text)
	if err != nil {
		fmt.Printf("Analysis failed: %v\n", err)
		return
	}

	fmt.Printf("Gender: %s (%.2f%%)\n", analysis.Label, analysis.Confidence)
	fmt.Printf("Sentiment: %s (Polarity: %.2f, Subjectivity: %.2f)\n",
		analysis.Sentiment, analysis.Polarity, analysis.Subjectivity)
	fmt.Printf("Mood: %s\n", analysis.Mood)

	if histStore == nil {
		return
	}
	err = histStore.Insert(history.Entry{
		Timestamp:    time.Now(),
		Text:         analysis.Text,
		Label:        analysis.Label,
		Confidence:   analysis.Confidence,
		Sentiment:    analysis.Sentiment,
		Polarity:     analysis.Polarity,
		Subjectivity: analysis.Subjectivity,
		Mood:         string(analysis.Mood),
	})
	if err != nil {
		slog.Warn("[Analyze] Failed to record analysis",
			slog.String("error", err.Error()))
	}
}

func showHistory(histStore *history.Store) {
	if histStore == nil {
		fmt.Println("History is not enabled; set TEXTSENSE_HISTORY_DB.")
		return
	}
	entries, err := histStore.Recent(10)
	if err != nil {
		fmt.Printf("Failed to read history: %v\n", err)
		return
	}
	for _, e := range entries {
		fmt.Print(history.FormatEntry(e))
	}
}

func saveHistory(histStore *history.Store, path string) {
	if histStore == nil {
		fmt.Println("History is not enabled; set TEXTSENSE_HISTORY_DB.")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if err := histStore.Export(f); err != nil {
		fmt.Printf("Failed to export history: %v\n", err)
		return
	}
	fmt.Printf("History saved to %s\n", path)
}
