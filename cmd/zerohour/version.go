package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/zerohour"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of zerohour",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "zerohour version %s\n", strings.TrimSpace(zerohour.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
