package channel

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/yt-channel/internal/errors"
	"github.com/Taichi-iskw/yt-channel/internal/repository/common"
)

func TestChannelRepository_Search(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		status      int
		body        string
		wantIDs     []string
		wantErr     bool
		wantDetails string
	}{
		{
			name:   "single match",
			query:  "@somehandle",
			status: http.StatusOK,
			body: `{"kind":"youtube#searchListResponse","items":[
				{"id":{"kind":"youtube#channel","channelId":"UC123"},"snippet":{"channelId":"UC123","title":"Some Channel"}}
			]}`,
			wantIDs: []string{"UC123"},
		},
		{
			name:    "no results",
			query:   "nonexistent",
			status:  http.StatusOK,
			body:    `{"kind":"youtube#searchListResponse","items":[]}`,
			wantIDs: []string{},
		},
		{
			name:        "quota exceeded",
			query:       "anything",
			status:      http.StatusForbidden,
			body:        `{"error":{"code":403,"message":"quota","errors":[{"reason":"quotaExceeded","message":"quota"}]}}`,
			wantErr:     true,
			wantDetails: "quotaExceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup fake upstream
			upstream := common.NewFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				common.RespondJSON(w, tt.status, tt.body)
			})

			// Create repository
			repo := NewRepository(upstream.Service(t))

			// Execute test
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := repo.Search(ctx, tt.query, 1)

			// Verify result
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.CodeExternal, apperrors.CodeOf(err))
				assert.Contains(t, apperrors.DetailsOf(err), tt.wantDetails)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.Snippet.ChannelId)
			}
			assert.Equal(t, tt.wantIDs, ids)

			// Verify the upstream request shape
			requests := upstream.Requests()
			require.Len(t, requests, 1)
			params := requests[0].URL.Query()
			assert.Equal(t, "/youtube/v3/search", requests[0].URL.Path)
			assert.Equal(t, tt.query, params.Get("q"))
			assert.Equal(t, "channel", params.Get("type"))
			assert.Equal(t, "1", params.Get("maxResults"))
			assert.Equal(t, "snippet", strings.Join(params["part"], ","))
		})
	}
}

func TestChannelRepository_GetByID(t *testing.T) {
	parts := []string{"snippet", "statistics", "brandingSettings", "contentDetails", "topicDetails"}

	tests := []struct {
		name     string
		id       string
		body     string
		wantErr  bool
		wantCode string
	}{
		{
			name: "channel found",
			id:   "UC123",
			body: `{"items":[{"id":"UC123","snippet":{"title":"Some Channel"},"statistics":{"subscriberCount":"42"}}]}`,
		},
		{
			name:     "channel not found",
			id:       "UCmissing",
			body:     `{"items":[]}`,
			wantErr:  true,
			wantCode: apperrors.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := common.NewFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				common.RespondJSON(w, http.StatusOK, tt.body)
			})
			repo := NewRepository(upstream.Service(t))

			got, err := repo.GetByID(context.Background(), tt.id, parts)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, got.Id)
				assert.Equal(t, "Some Channel", got.Snippet.Title)
				assert.Equal(t, uint64(42), got.Statistics.SubscriberCount)
			}

			requests := upstream.Requests()
			require.Len(t, requests, 1)
			params := requests[0].URL.Query()
			assert.Equal(t, "/youtube/v3/channels", requests[0].URL.Path)
			assert.Equal(t, tt.id, params.Get("id"))
			assert.Equal(t, strings.Join(parts, ","), strings.Join(params["part"], ","))
		})
	}
}

func TestChannelRepository_TransportError(t *testing.T) {
	upstream := common.NewFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	service := upstream.Service(t)
	upstream.Server.Close()

	repo := NewRepository(service)
	_, err := repo.Search(context.Background(), "anything", 1)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternal, apperrors.CodeOf(err))
	assert.NotEmpty(t, apperrors.DetailsOf(err))
}
