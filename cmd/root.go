// Package cmd implements the ytchannel command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ytchannel",
	Short: "Resolve YouTube channels and list their videos",
	Long: `ytchannel resolves a channel name, @handle, channel ID or channel URL
to its YouTube channel record and lists the channel's newest videos.

Run "ytchannel serve" for the HTTP API and web UI, or use the channel,
video and classify subcommands directly from the terminal.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
