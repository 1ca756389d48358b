package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Taichi-iskw/yt-channel/internal/config"
	"github.com/Taichi-iskw/yt-channel/internal/logging"
	"github.com/Taichi-iskw/yt-channel/internal/service/youtube"
)

// ServiceFactory creates YouTube service instances
type ServiceFactory interface {
	CreateService(ctx context.Context) (youtube.YouTubeService, error)
}

// configServiceFactory builds the service from the loaded configuration
type configServiceFactory struct{}

// NewServiceFactory creates a factory backed by config.NewConfig
func NewServiceFactory() ServiceFactory {
	return &configServiceFactory{}
}

// CreateService loads configuration and wires the service with its upstream client
func (f *configServiceFactory) CreateService(ctx context.Context) (youtube.YouTubeService, error) {
	cfg, logger, err := loadRuntime()
	if err != nil {
		return nil, err
	}

	api, err := config.NewYouTubeService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return youtube.NewYouTubeService(api, logger), nil
}

// loadRuntime loads configuration and builds the logger it describes
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}
