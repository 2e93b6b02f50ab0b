// Package youtube extracts video ids from the URL shapes YouTube hands out
// and builds thumbnail links for them.
package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	QualityDefault = "mqdefault"
	QualityHigh    = "hqdefault"
	QualityStd     = "sddefault"
	QualityMaxRes  = "maxresdefault"
)

var (
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	// Matches any of the known shapes inside free text.
	fallbackPattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:watch\?(?:.*&)?v=|embed/|v/))([^"&?/\s]{11})`)

	qualities = map[string]struct{}{
		QualityDefault: {}, QualityHigh: {}, QualityStd: {}, QualityMaxRes: {},
	}
)

// ExtractVideoID returns the 11-character id for youtu.be, watch?v=, /embed/
// and /v/ links. The second result is false when no valid id is found.
func ExtractVideoID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}

	if id := fromParsedURL(rawURL); id != "" {
		return id, IsValidID(id)
	}

	m := fallbackPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return m[1], IsValidID(m[1])
}

func fromParsedURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	path := strings.Trim(u.Path, "/")

	switch host {
	case "youtu.be":
		return firstSegment(path)
	case "youtube.com", "youtube-nocookie.com":
		if path == "watch" {
			return u.Query().Get("v")
		}
		for _, prefix := range []string{"embed/", "v/", "shorts/"} {
			if strings.HasPrefix(path, prefix) {
				return firstSegment(strings.TrimPrefix(path, prefix))
			}
		}
	}
	return ""
}

func firstSegment(path string) string {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

func IsValidID(id string) bool {
	return videoIDPattern.MatchString(id)
}

// ThumbnailURL builds the static thumbnail link. Unknown qualities fall back
// to mqdefault.
func ThumbnailURL(videoID, quality string) string {
	if _, ok := qualities[quality]; !ok {
		quality = QualityDefault
	}
	return "https://img.youtube.com/vi/" + videoID + "/" + quality + ".jpg"
}
