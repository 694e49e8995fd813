package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultWatchURL = "https://www.youtube.com/watch"
	playerResponse  = "ytInitialPlayerResponse"
	// Caption bodies are small; anything larger is not a transcript.
	maxBodySize = 10 << 20
)

var (
	ErrVideoUnavailable = errors.New("video unavailable")
	ErrNoCaptions       = errors.New("no captions available")
)

// HTTPError is returned when YouTube answers with a non-200 status.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// CaptionTrack is one caption track listed in the player response.
type CaptionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

func (t CaptionTrack) autoGenerated() bool {
	return t.Kind == "asr"
}

type playerData struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		Renderer struct {
			CaptionTracks []CaptionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// Client fetches transcripts from YouTube caption tracks.
type Client struct {
	httpClient *http.Client
	watchURL   string
	language   string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithWatchURL points the client at a different watch page endpoint.
func WithWatchURL(u string) Option {
	return func(cl *Client) {
		cl.watchURL = u
	}
}

// WithLanguage sets the preferred caption language code.
func WithLanguage(lang string) Option {
	return func(cl *Client) {
		cl.language = lang
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		watchURL:   defaultWatchURL,
		language:   "en",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the ordered transcript segments for a video.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	page, err := c.get(ctx, c.watchURL+"?v="+url.QueryEscape(videoID))
	if err != nil {
		return nil, fmt.Errorf("error fetching watch page: %w", err)
	}

	tracks, err := captionTracks(page)
	if err != nil {
		return nil, err
	}

	track := pickTrack(tracks, c.language)
	slog.Debug("selected caption track",
		slog.String("video_id", videoID),
		slog.String("language", track.LanguageCode),
		slog.Bool("auto_generated", track.autoGenerated()),
	)

	trackURL, err := vttURL(track.BaseURL)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, trackURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching captions: %w", err)
	}

	segments, err := ParseVTT(string(body))
	if err != nil {
		return nil, fmt.Errorf("error parsing captions: %w", err)
	}
	return segments, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.Redacted()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	return body, nil
}

// captionTracks finds the player response embedded in a watch page and
// returns its caption tracks.
func captionTracks(page []byte) ([]CaptionTrack, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("error parsing watch page: %w", err)
	}

	var (
		data  playerData
		found bool
		perr  error
	)
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		idx := strings.Index(text, playerResponse)
		if idx == -1 {
			return true
		}
		brace := strings.Index(text[idx:], "{")
		if brace == -1 {
			return true
		}
		// Decode stops after the first JSON value, ignoring the trailing ";".
		if err := json.NewDecoder(strings.NewReader(text[idx+brace:])).Decode(&data); err != nil {
			perr = fmt.Errorf("error decoding player response: %w", err)
			return false
		}
		found = true
		return false
	})
	if perr != nil {
		return nil, perr
	}
	if !found {
		return nil, fmt.Errorf("%w: player response not found", ErrVideoUnavailable)
	}

	if status := data.PlayabilityStatus.Status; status != "" && status != "OK" {
		return nil, fmt.Errorf("%w: %s %s", ErrVideoUnavailable, status, data.PlayabilityStatus.Reason)
	}

	tracks := data.Captions.Renderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrNoCaptions
	}
	return tracks, nil
}

// pickTrack prefers a manual track in lang, then an auto-generated one in
// lang, then whatever is listed first.
func pickTrack(tracks []CaptionTrack, lang string) CaptionTrack {
	var auto *CaptionTrack
	for i, t := range tracks {
		if !strings.EqualFold(t.LanguageCode, lang) {
			continue
		}
		if !t.autoGenerated() {
			return t
		}
		if auto == nil {
			auto = &tracks[i]
		}
	}
	if auto != nil {
		return *auto
	}
	return tracks[0]
}

func vttURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid caption track URL: %w", err)
	}
	q := u.Query()
	q.Set("fmt", "vtt")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
