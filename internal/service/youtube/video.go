package youtube

import (
	"context"

	"github.com/Taichi-iskw/yt-channel/internal/errors"
	"github.com/Taichi-iskw/yt-channel/internal/model"
)

// ListVideos returns one page of a channel's videos, newest first.
// Accumulating pages across calls is left to the caller.
func (s *youTubeService) ListVideos(ctx context.Context, channelID, pageToken string) (*model.VideoPage, error) {
	// Input validation
	if channelID == "" {
		return nil, errors.New(errors.CodeMissingChannelID, "Missing channelId")
	}

	page, err := s.videoRepo.ListByChannel(ctx, channelID, pageToken, model.VideoPageSize)
	if err != nil {
		return nil, err
	}

	return page, nil
}
