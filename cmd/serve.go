package cmd

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-channel/internal/config"
	"github.com/Taichi-iskw/yt-channel/internal/server"
	"github.com/Taichi-iskw/yt-channel/internal/service/youtube"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and web UI",
	Long: `
The serve command starts an HTTP server that provides:
- GET /api/channel?query=...    channel lookup by name, @handle, ID or URL
- GET /api/videos?channelId=... newest videos, paged with pageToken
- GET /api/classify?input=...   query classification without upstream calls
- GET /                         single-page web UI

Example:
  ytchannel serve                 # Listen on the configured port (default 5000)
  ytchannel serve --port 8080     # Use custom port
`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (overrides HOST)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to bind (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	// Handle shutdown signals
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, err := config.NewYouTubeService(ctx, cfg)
	if err != nil {
		return err
	}

	logger.Info("configuration loaded",
		slog.String("api_key", cfg.MaskedAPIKey()),
		slog.String("addr", cfg.Addr()),
		slog.Any("allowed_origins", cfg.AllowedOriginList()),
	)

	srv := server.NewServer(cfg, youtube.NewYouTubeService(api, logger), logger, server.DefaultOptions())
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

