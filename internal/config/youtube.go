package config

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// NewYouTubeService creates a YouTube Data API client authenticated with the configured key
func NewYouTubeService(ctx context.Context, config *Config, extra ...option.ClientOption) (*youtube.Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.APIEndpoint != "" {
		opts = append(opts, option.WithEndpoint(config.APIEndpoint))
	}
	opts = append(opts, extra...)

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return service, nil
}
