package video

import (
	"net/url"
	"strings"
)

// EmbedURL converts a YouTube link to its embed form. The video id is
// taken from the v query parameter when present, otherwise from the
// last path segment (youtu.be and /embed/ links). Unparseable input
// is returned unchanged.
func EmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	id := u.Query().Get("v")
	if id == "" {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segments) > 0 {
			id = segments[len(segments)-1]
		}
	}
	if id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + id
}
