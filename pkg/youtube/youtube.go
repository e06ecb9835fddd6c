package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`)
	bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video identifier out of any
// accepted YouTube URL form: watch?v=, youtu.be/, embed/, or a bare ID.
// Returns "" when no identifier can be extracted.
func ExtractVideoID(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	if m := urlPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if bareIDPattern.MatchString(url) {
		return url
	}
	return ""
}

// CanonicalWatchURL validates the given URL and normalizes it to the
// canonical watch form keyed by the extracted video identifier.
func CanonicalWatchURL(url string) (string, error) {
	videoID := ExtractVideoID(url)
	if videoID == "" {
		return "", fmt.Errorf("invalid YouTube URL: %q", strings.TrimSpace(url))
	}
	return WatchURL(videoID), nil
}

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func EmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}
