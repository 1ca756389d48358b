package model

import "google.golang.org/api/youtube/v3"

// QueryKind identifies how a user-supplied channel query should be interpreted
type QueryKind string

const (
	QueryKindChannelID QueryKind = "channelId"
	QueryKindHandle    QueryKind = "handle"
	QueryKindName      QueryKind = "name"
)

// QueryDescriptor is a typed, disambiguated representation of user input
type QueryDescriptor struct {
	Kind  QueryKind `json:"kind"`
	Value string    `json:"value"`
}

// IsZero reports whether the descriptor carries no query
func (d QueryDescriptor) IsZero() bool {
	return d.Kind == "" && d.Value == ""
}

// ChannelMetadata is the upstream channel resource, passed through unmodified
type ChannelMetadata = youtube.Channel

// VideoPage is one page of the upstream channel video search, passed through unmodified
type VideoPage = youtube.SearchListResponse

// ChannelDetailParts lists the channel resource parts requested on resolution
var ChannelDetailParts = []string{
	"snippet",
	"statistics",
	"brandingSettings",
	"contentDetails",
	"topicDetails",
}

const (
	// VideoPageSize is the number of videos returned per listing page
	VideoPageSize int64 = 10
	// VideoOrder orders listings by publish date, newest first
	VideoOrder = "date"
)
