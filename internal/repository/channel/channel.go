package channel

import (
	"context"

	"google.golang.org/api/youtube/v3"

	apperrors "github.com/Taichi-iskw/yt-channel/internal/errors"
	"github.com/Taichi-iskw/yt-channel/internal/repository"
)

// searchParts is the part list requested for channel searches
var searchParts = []string{"snippet"}

// Repository defines channel lookups against the YouTube Data API
type Repository interface {
	// Search runs a channel-scoped free-text search
	Search(ctx context.Context, query string, maxResults int64) ([]*youtube.SearchResult, error)

	// GetByID retrieves a channel resource with the requested parts
	GetByID(ctx context.Context, id string, parts []string) (*youtube.Channel, error)
}

// channelRepository implements Repository using the YouTube Data API
type channelRepository struct {
	service *youtube.Service
}

// NewRepository creates a new instance of Repository
func NewRepository(service *youtube.Service) Repository {
	return &channelRepository{
		service: service,
	}
}

// Search runs a channel-scoped free-text search
func (r *channelRepository) Search(ctx context.Context, query string, maxResults int64) ([]*youtube.SearchResult, error) {
	call := r.service.Search.List(searchParts).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, repository.HandleAPIError(err, "failed to search channels")
	}

	return resp.Items, nil
}

// GetByID retrieves a channel resource with the requested parts
func (r *channelRepository) GetByID(ctx context.Context, id string, parts []string) (*youtube.Channel, error) {
	call := r.service.Channels.List(parts).
		Id(id).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, repository.HandleAPIError(err, "failed to get channel details")
	}

	if len(resp.Items) == 0 {
		return nil, apperrors.New(apperrors.CodeNotFound, "Channel not found")
	}

	return resp.Items[0], nil
}
