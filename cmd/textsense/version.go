package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the textsense version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("textsense", version)
	},
}
