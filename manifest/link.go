package manifest

import (
	"regexp"
	"strings"
)

// PlaylistMarker separates the signed base path from the playlist document in a manifest link.
const PlaylistMarker = "/v2/playlist"

// linkPattern requires an https prefix carrying the expiry token followed by
// the signature token before the playlist marker.
var linkPattern = regexp.MustCompile(`(https:.*exp.*hmac.*)` + regexp.QuoteMeta(PlaylistMarker))

// Prefix extracts the signed base path that stream URLs are built on.
func Prefix(link string) (string, error) {
	match := linkPattern.FindStringSubmatch(link)
	if match == nil {
		return "", ErrInvalidLinkFormat
	}

	return strings.TrimSpace(match[1]), nil
}
