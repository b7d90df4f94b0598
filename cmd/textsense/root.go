package main

import (
	"github.com/spf13/cobra"

	"github.com/spacesedan/textsense/config"
)

var rootCmd = &cobra.Command{
	Use:           "textsense",
	Short:         "Text gender, sentiment and mood analysis",
	Long:          "Textsense trains a gender classifier over free text and analyzes gender, sentiment and mood for short snippets.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("artifacts", "", "Directory holding the persisted model and vectorizer (overrides TEXTSENSE_ARTIFACT_DIR)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveArtifactDir returns the --artifacts flag when set, otherwise the
// environment-configured directory.
func resolveArtifactDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("artifacts"); dir != "" {
		return dir
	}
	return config.GetAppConfig().ArtifactDir
}
