package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/textsense/internal/analyzer"
	"github.com/spacesedan/textsense/internal/artifact"
)

var predictCmd = &cobra.Command{
	Use:   "predict [text]",
	Short: "Analyze one snippet with the persisted model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := artifact.NewStore(resolveArtifactDir(cmd))
		session, err := analyzer.LoadSession(store)
		if err != nil {
			return err
		}

		analysis, err := session.Predict(strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("Text: %s\n", analysis.Text)
		fmt.Printf("Predicted gender: %s\n", analysis.Label)
		fmt.Printf("Confidence: %.2f%%\n", analysis.Confidence)
		fmt.Printf("Sentiment: %s (Polarity: %.2f, Subjectivity: %.2f)\n",
			analysis.Sentiment, analysis.Polarity, analysis.Subjectivity)
		fmt.Printf("Mood: %s\n", analysis.Mood)
		return nil
	},
}
