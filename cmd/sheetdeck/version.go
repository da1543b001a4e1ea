package main

import (
	"fmt"

	"github.com/sheetdeck/sheetdeck/pkg/sheetdeck"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sheetdeck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sheetdeck version %s\n", sheetdeck.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
