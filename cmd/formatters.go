package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Taichi-iskw/yt-channel/internal/model"
)

// Formatter defines interface for output formatting
type Formatter interface {
	FormatChannel(channel *model.ChannelMetadata) (string, error)
	FormatVideoPage(page *model.VideoPage) (string, error)
	FormatDescriptor(descriptor model.QueryDescriptor) (string, error)
}

// TextFormatter formats output as plain text
type TextFormatter struct{}

// FormatChannel formats a channel as a short summary
func (f *TextFormatter) FormatChannel(channel *model.ChannelMetadata) (string, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Channel ID: %s\n", channel.Id))
	if s := channel.Snippet; s != nil {
		output.WriteString(fmt.Sprintf("Title: %s\n", s.Title))
		if s.CustomUrl != "" {
			output.WriteString(fmt.Sprintf("Custom URL: %s\n", s.CustomUrl))
		}
		if s.Country != "" {
			output.WriteString(fmt.Sprintf("Country: %s\n", s.Country))
		}
		if s.PublishedAt != "" {
			output.WriteString(fmt.Sprintf("Published At: %s\n", s.PublishedAt))
		}
	}
	if st := channel.Statistics; st != nil {
		if !st.HiddenSubscriberCount {
			output.WriteString(fmt.Sprintf("Subscribers: %d\n", st.SubscriberCount))
		}
		output.WriteString(fmt.Sprintf("Videos: %d\n", st.VideoCount))
		output.WriteString(fmt.Sprintf("Views: %d\n", st.ViewCount))
	}
	if td := channel.TopicDetails; td != nil && len(td.TopicCategories) > 0 {
		output.WriteString("Topics:\n")
		for _, topic := range td.TopicCategories {
			output.WriteString(fmt.Sprintf("  - %s\n", topic))
		}
	}

	return output.String(), nil
}

// FormatVideoPage formats one listing page, one video per line
func (f *TextFormatter) FormatVideoPage(page *model.VideoPage) (string, error) {
	var output strings.Builder

	if len(page.Items) == 0 {
		output.WriteString("No videos found.\n")
	}
	for i, item := range page.Items {
		var videoID, title, published string
		if item.Id != nil {
			videoID = item.Id.VideoId
		}
		if item.Snippet != nil {
			title = item.Snippet.Title
			published = item.Snippet.PublishedAt
		}
		output.WriteString(fmt.Sprintf("[%d] %s  %s  %s\n", i+1, videoID, published, title))
	}
	if page.NextPageToken != "" {
		output.WriteString(fmt.Sprintf("\nNext page token: %s\n", page.NextPageToken))
	}

	return output.String(), nil
}

// FormatDescriptor formats a classified query
func (f *TextFormatter) FormatDescriptor(descriptor model.QueryDescriptor) (string, error) {
	return fmt.Sprintf("Kind: %s\nValue: %s\n", descriptor.Kind, descriptor.Value), nil
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

// FormatChannel formats a channel as the upstream JSON resource
func (f *JSONFormatter) FormatChannel(channel *model.ChannelMetadata) (string, error) {
	return marshalIndent(channel)
}

// FormatVideoPage formats a listing page as the upstream JSON response
func (f *JSONFormatter) FormatVideoPage(page *model.VideoPage) (string, error) {
	return marshalIndent(page)
}

// FormatDescriptor formats a classified query as JSON
func (f *JSONFormatter) FormatDescriptor(descriptor model.QueryDescriptor) (string, error) {
	return marshalIndent(descriptor)
}

func marshalIndent(v any) (string, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(jsonBytes) + "\n", nil
}

// GetFormatter returns the appropriate formatter based on format string
func GetFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
