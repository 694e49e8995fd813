package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"jamesfarrell.me/youtube-summarizer/internal/pipeline"
)

const (
	msgNoURL            = "No video URL provided."
	msgInvalidURL       = "Invalid video URL."
	msgNoTranscript     = "Transcript not available for this video."
	msgSummarizeFailed  = "An error occurred during summarization."
	msgServerError      = "An error occurred on the server."
	maxRequestBodyBytes = 1 << 20
)

// Summarizer runs the summarization pipeline for one video URL.
type Summarizer interface {
	Run(ctx context.Context, rawURL string) (string, error)
}

type SummarizeRequest struct {
	URL string `json:"url"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SummarizeHandler struct {
	pipeline Summarizer
}

func NewSummarizeHandler(p Summarizer) *SummarizeHandler {
	return &SummarizeHandler{pipeline: p}
}

func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		slog.Debug("error decoding request body", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgNoURL})
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgNoURL})
		return
	}

	summary, err := h.pipeline.Run(r.Context(), req.URL)
	if err != nil {
		status, msg := errorStatus(err)
		slog.Error("summarize request failed",
			slog.String("url", req.URL),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		writeJSON(w, status, ErrorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, SummarizeResponse{Summary: summary})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrMalformedURL):
		return http.StatusBadRequest, msgInvalidURL
	case errors.Is(err, pipeline.ErrTranscriptUnavailable):
		return http.StatusNotFound, msgNoTranscript
	case errors.Is(err, pipeline.ErrSummarizationFailed):
		return http.StatusInternalServerError, msgSummarizeFailed
	default:
		return http.StatusInternalServerError, msgServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("error writing response", slog.Any("error", err))
	}
}
