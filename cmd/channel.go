package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// commandTimeout bounds upstream work for one-shot commands
const commandTimeout = 30 * time.Second

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "YouTube channel operations",
	Long:  `Operations for looking up YouTube channels.`,
}

// NewChannelInfoCommand creates the channel info command
func NewChannelInfoCommand(factory ServiceFactory) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info [QUERY]",
		Short: "Fetch YouTube channel information",
		Long: `Resolve a channel name, @handle, channel ID or channel URL and display
the channel's snippet, statistics, branding, content details and topics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			// Create service with timeout context
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			service, err := factory.CreateService(ctx)
			if err != nil {
				return err
			}

			channel, err := service.ResolveChannel(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch channel info: %w", err)
			}

			output, err := formatter.FormatChannel(channel)
			if err != nil {
				return fmt.Errorf("failed to format result: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "json", "Output format (json, text)")
	return cmd
}

func init() {
	channelCmd.AddCommand(NewChannelInfoCommand(NewServiceFactory()))
	rootCmd.AddCommand(channelCmd)
}
