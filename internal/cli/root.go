package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Relationship management for people who forget to follow up",
	Long:  "Nexus tracks contacts, interaction history, and a lead pipeline, and tells you who is due for outreach. Single Go binary.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(enrichCmd)
}
