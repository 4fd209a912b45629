package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flux/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("Flux Compiler v%s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Printf("  commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Printf("  built:  %s\n", version.BuildDate)
	}
}
