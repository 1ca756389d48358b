package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-channel/internal/query"
)

// NewClassifyCommand creates the classify command
func NewClassifyCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classify [INPUT]",
		Short: "Show how a channel query would be interpreted",
		Long: `Classify a channel query as a channel ID, handle or name without
contacting YouTube.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}

			descriptor, ok := query.Classify(args[0])
			if !ok {
				return fmt.Errorf("input must not be empty")
			}

			output, err := formatter.FormatDescriptor(descriptor)
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
	rootCmd.AddCommand(NewClassifyCommand())
}
