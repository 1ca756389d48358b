// Package query turns free-form channel input into a typed query descriptor.
package query

import (
	"regexp"
	"strings"

	"github.com/Taichi-iskw/yt-channel/internal/model"
)

// channelIDPrefix is the literal prefix of raw YouTube channel IDs
const channelIDPrefix = "UC"

// channelURLPattern matches channel, custom, user and handle URLs on youtube.com.
// Group 1 is the path selector, group 2 the identifier up to the next / or ?.
var channelURLPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(channel/|c/|user/|@)([^/?]+)`)

// Classify maps input to a query descriptor. It returns false for empty input.
//
// Checks run in a fixed order: literal channel ID prefix, channel URL, leading @,
// then free-text fallback. A URL with an @ segment is therefore never taken for
// a bare handle, and a literal ID is never treated as search text.
func Classify(input string) (model.QueryDescriptor, bool) {
	if input == "" {
		return model.QueryDescriptor{}, false
	}

	if IsChannelID(input) {
		return model.QueryDescriptor{Kind: model.QueryKindChannelID, Value: input}, true
	}

	if match := channelURLPattern.FindStringSubmatch(input); match != nil {
		selector, value := strings.TrimSuffix(match[1], "/"), match[2]
		switch selector {
		case "channel":
			return model.QueryDescriptor{Kind: model.QueryKindChannelID, Value: value}, true
		case "@":
			return model.QueryDescriptor{Kind: model.QueryKindHandle, Value: value}, true
		default:
			// custom and legacy user URLs carry a display name, not a verified handle
			return model.QueryDescriptor{Kind: model.QueryKindName, Value: value}, true
		}
	}

	if strings.HasPrefix(input, "@") && len(input) > 1 {
		return model.QueryDescriptor{Kind: model.QueryKindHandle, Value: input[1:]}, true
	}

	return model.QueryDescriptor{Kind: model.QueryKindName, Value: input}, true
}

// IsChannelID reports whether s carries the raw channel ID prefix
func IsChannelID(s string) bool {
	return strings.HasPrefix(s, channelIDPrefix)
}
