package youtube

import (
	"context"
	"log/slog"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/Taichi-iskw/yt-channel/internal/logging"
	"github.com/Taichi-iskw/yt-channel/internal/model"
	"github.com/Taichi-iskw/yt-channel/internal/repository/channel"
	"github.com/Taichi-iskw/yt-channel/internal/repository/video"
)

// YouTubeService is interface for YouTube operations
type YouTubeService interface {
	ResolveChannel(ctx context.Context, queryText string) (*model.ChannelMetadata, error)
	ListVideos(ctx context.Context, channelID, pageToken string) (*model.VideoPage, error)
}

// youTubeService implements YouTubeService
type youTubeService struct {
	channelRepo channel.Repository
	videoRepo   video.Repository
	logger      *slog.Logger
}

// NewYouTubeService creates a new YouTubeService backed by the YouTube Data API
func NewYouTubeService(api *ytapi.Service, logger *slog.Logger) YouTubeService {
	return NewYouTubeServiceWithRepositories(
		channel.NewRepository(api),
		video.NewRepository(api),
		logger,
	)
}

// NewYouTubeServiceWithRepositories creates a new YouTubeService with custom repositories (for testing)
func NewYouTubeServiceWithRepositories(channelRepo channel.Repository, videoRepo video.Repository, logger *slog.Logger) YouTubeService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &youTubeService{
		channelRepo: channelRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}
