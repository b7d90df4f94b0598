package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/textsense/config"
	"github.com/spacesedan/textsense/internal/artifact"
	"github.com/spacesedan/textsense/internal/corpus"
	"github.com/spacesedan/textsense/internal/training"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the gender classifier and persist the best model",
	RunE: func(cmd *cobra.Command, args []string) error {
		corpusPath, _ := cmd.Flags().GetString("corpus")
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.LoadTrainingConfig(configPath)
		if err != nil {
			return err
		}

		docs, err := corpus.LoadCSV(corpusPath)
		if err != nil {
			return err
		}

		store := artifact.NewStore(resolveArtifactDir(cmd))
		report, err := training.RunAndSave(docs, cfg, store)
		if err != nil {
			return err
		}

		for _, res := range report.Results {
			fmt.Printf("\n%s Performance:\n", res.Candidate)
			fmt.Println(strings.Repeat("-", 50))
			fmt.Printf("Accuracy: %.4f\n", res.Accuracy)
			fmt.Printf("Precision: %.4f\n", res.Precision)
			fmt.Printf("Recall: %.4f\n", res.Recall)
			fmt.Printf("F1-score: %.4f\n", res.F1)
		}
		fmt.Printf("\nBest model selected: %s (F1 %.4f)\n", report.Selected.Candidate, report.Selected.F1)
		return nil
	},
}

func init() {
	trainCmd.Flags().String("corpus", "", "CSV corpus with text and gender columns")
	trainCmd.Flags().String("config", "", "Optional YAML training config")
	_ = trainCmd.MarkFlagRequired("corpus")
}
