package youtube

import (
	"context"

	"github.com/stretchr/testify/mock"
	ytapi "google.golang.org/api/youtube/v3"
)

// mockChannelRepository is a mock implementation of channel.Repository for testing
type mockChannelRepository struct {
	mock.Mock
}

func (m *mockChannelRepository) Search(ctx context.Context, query string, maxResults int64) ([]*ytapi.SearchResult, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ytapi.SearchResult), args.Error(1)
}

func (m *mockChannelRepository) GetByID(ctx context.Context, id string, parts []string) (*ytapi.Channel, error) {
	args := m.Called(ctx, id, parts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ytapi.Channel), args.Error(1)
}

// mockVideoRepository is a mock implementation of video.Repository for testing
type mockVideoRepository struct {
	mock.Mock
}

func (m *mockVideoRepository) ListByChannel(ctx context.Context, channelID, pageToken string, maxResults int64) (*ytapi.SearchListResponse, error) {
	args := m.Called(ctx, channelID, pageToken, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ytapi.SearchListResponse), args.Error(1)
}
