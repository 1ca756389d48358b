package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-channel/internal/query"
)

// videoCmd represents the video command
var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "YouTube video operations",
	Long:  `Operations for listing a channel's videos.`,
}

// NewVideoListCommand creates the video list command
func NewVideoListCommand(factory ServiceFactory) *cobra.Command {
	var (
		format    string
		pageToken string
	)

	cmd := &cobra.Command{
		Use:   "list [CHANNEL_ID]",
		Short: "List the newest videos of a channel",
		Long: `List one page of a channel's videos, newest first. Pass the printed
next page token back with --page-token to continue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channelID := args[0]

			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			if !query.IsChannelID(channelID) {
				cmd.PrintErrf("Warning: %q does not look like a channel ID; resolve it with 'ytchannel channel info' first\n", channelID)
			}

			// Create service with timeout context
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			service, err := factory.CreateService(ctx)
			if err != nil {
				return err
			}

			page, err := service.ListVideos(ctx, channelID, pageToken)
			if err != nil {
				return fmt.Errorf("failed to list videos: %w", err)
			}

			output, err := formatter.FormatVideoPage(page)
			if err != nil {
				return fmt.Errorf("failed to format result: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "json", "Output format (json, text)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Continuation token from a previous page")
	return cmd
}

func init() {
	videoCmd.AddCommand(NewVideoListCommand(NewServiceFactory()))
	rootCmd.AddCommand(videoCmd)
}
