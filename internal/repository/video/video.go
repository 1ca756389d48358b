package video

import (
	"context"

	"google.golang.org/api/youtube/v3"

	"github.com/Taichi-iskw/yt-channel/internal/model"
	"github.com/Taichi-iskw/yt-channel/internal/repository"
)

// listParts is the part list requested for channel video listings
var listParts = []string{"snippet", "id"}

// Repository defines video listings against the YouTube Data API
type Repository interface {
	// ListByChannel returns one page of a channel's videos, newest first
	ListByChannel(ctx context.Context, channelID, pageToken string, maxResults int64) (*youtube.SearchListResponse, error)
}

// videoRepository implements Repository using the YouTube Data API
type videoRepository struct {
	service *youtube.Service
}

// NewRepository creates a new instance of Repository
func NewRepository(service *youtube.Service) Repository {
	return &videoRepository{
		service: service,
	}
}

// ListByChannel returns one page of a channel's videos, newest first.
// pageToken is forwarded verbatim and omitted when empty.
func (r *videoRepository) ListByChannel(ctx context.Context, channelID, pageToken string, maxResults int64) (*youtube.SearchListResponse, error) {
	call := r.service.Search.List(listParts).
		ChannelId(channelID).
		Order(model.VideoOrder).
		MaxResults(maxResults).
		Context(ctx)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, repository.HandleAPIError(err, "failed to list channel videos")
	}

	return resp, nil
}
