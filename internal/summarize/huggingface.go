package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultHuggingFaceURL   = "https://router.huggingface.co/hf-inference"
	DefaultHuggingFaceModel = "facebook/bart-large-cnn"
)

type HuggingFaceConfig struct {
	BaseURL    string
	Model      string
	Token      string
	HTTPClient *http.Client
}

// HuggingFace calls the Inference API summarization task.
type HuggingFace struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength int `json:"max_length"`
	MinLength int `json:"min_length"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error any `json:"error"`
}

func NewHuggingFace(cfg HuggingFaceConfig) *HuggingFace {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultHuggingFaceURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultHuggingFaceModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &HuggingFace{
		httpClient: cfg.HTTPClient,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/models/" + cfg.Model,
		token:      cfg.Token,
	}
}

func (h *HuggingFace) Summarize(ctx context.Context, text string, bounds Bounds) (string, error) {
	if h.token == "" {
		return "", ErrMissingCredentials
	}

	payload, err := json.Marshal(hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MaxLength: bounds.MaxLength,
			MinLength: bounds.MinLength,
		},
	})
	if err != nil {
		return "", fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var summaries []hfSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}
	if len(summaries) == 0 {
		return "", fmt.Errorf("empty summarization response")
	}
	return summaries[0].SummaryText, nil
}

func errorMessage(body []byte) string {
	var e hfError
	if err := json.Unmarshal(body, &e); err == nil && e.Error != nil {
		return fmt.Sprint(e.Error)
	}
	return strings.TrimSpace(string(body))
}
