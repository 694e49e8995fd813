package pipeline

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolve extracts the video identifier from a watch URL. The "v" query
// parameter wins; otherwise the last non-empty path segment is used, which
// covers short links such as https://youtu.be/<id>.
func Resolve(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrMalformedURL, rawURL)
	}

	if v := u.Query().Get("v"); v != "" {
		return v, nil
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], nil
		}
	}

	return "", fmt.Errorf("%w: no video identifier in %q", ErrMalformedURL, rawURL)
}
