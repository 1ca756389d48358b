package youtube

import (
	"context"
	"log/slog"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/Taichi-iskw/yt-channel/internal/errors"
	"github.com/Taichi-iskw/yt-channel/internal/model"
	"github.com/Taichi-iskw/yt-channel/internal/query"
)

// ResolveChannel finds the best matching channel for queryText and returns its metadata
func (s *youTubeService) ResolveChannel(ctx context.Context, queryText string) (*model.ChannelMetadata, error) {
	// Input validation
	if queryText == "" {
		return nil, errors.New(errors.CodeMissingQuery, "Missing channel query")
	}

	// Classification is logged only; every query goes through search
	if descriptor, ok := query.Classify(queryText); ok {
		s.logger.DebugContext(ctx, "channel query classified",
			slog.String("kind", string(descriptor.Kind)),
			slog.String("value", descriptor.Value),
		)
	}

	// Search for the single best channel match
	results, err := s.channelRepo.Search(ctx, queryText, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New(errors.CodeNotFound, "Channel not found")
	}

	channelID := searchResultChannelID(results[0])
	if channelID == "" {
		return nil, errors.New(errors.CodeNotFound, "Channel not found")
	}

	// Fetch full details for the matched ID
	metadata, err := s.channelRepo.GetByID(ctx, channelID, model.ChannelDetailParts)
	if err != nil {
		return nil, err
	}

	return metadata, nil
}

// searchResultChannelID extracts the channel ID from a channel search result
func searchResultChannelID(result *ytapi.SearchResult) string {
	if result == nil {
		return ""
	}
	if result.Snippet != nil && result.Snippet.ChannelId != "" {
		return result.Snippet.ChannelId
	}
	if result.Id != nil {
		return result.Id.ChannelId
	}
	return ""
}
