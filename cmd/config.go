package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-channel/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for ytchannel.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [API_KEY]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file holding the YouTube Data API key and server settings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var apiKey string
		if len(args) > 0 {
			apiKey = args[0]
		}

		if err := config.InitConfig(apiKey); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created configuration file: %s\n", configPath)
		if apiKey == "" {
			fmt.Fprintln(out, "Please edit the api_key in this file or set YOUTUBE_API_KEY.")
		}

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration file path and effective settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		// Load and display current config
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration file: %s\n\n", configPath)
		fmt.Fprintf(out, "YOUTUBE_API_KEY: %s\n", cfg.MaskedAPIKey())
		if cfg.APIEndpoint != "" {
			fmt.Fprintf(out, "YOUTUBE_API_ENDPOINT: %s\n", cfg.APIEndpoint)
		}
		fmt.Fprintf(out, "ADDR: %s\n", cfg.Addr())
		fmt.Fprintf(out, "ALLOWED_ORIGINS: %s\n", strings.Join(cfg.AllowedOriginList(), ","))
		fmt.Fprintf(out, "LOG_LEVEL: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "LOG_FORMAT: %s\n", cfg.LogFormat)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
