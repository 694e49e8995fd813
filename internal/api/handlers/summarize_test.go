package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jamesfarrell.me/youtube-summarizer/internal/pipeline"
)

type stubPipeline struct {
	summary string
	err     error
	gotURL  string
}

func (s *stubPipeline) Run(ctx context.Context, rawURL string) (string, error) {
	s.gotURL = rawURL
	return s.summary, s.err
}

func TestSummarizeHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		stub       *stubPipeline
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"url":"https://www.youtube.com/watch?v=abc123"}`,
			stub:       &stubPipeline{summary: "It was good."},
			wantStatus: http.StatusOK,
			wantBody:   `{"summary":"It was good."}`,
		},
		{
			name:       "missing url",
			body:       `{}`,
			stub:       &stubPipeline{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"No video URL provided."}`,
		},
		{
			name:       "blank url",
			body:       `{"url":"   "}`,
			stub:       &stubPipeline{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"No video URL provided."}`,
		},
		{
			name:       "undecodable body",
			body:       `not json`,
			stub:       &stubPipeline{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"No video URL provided."}`,
		},
		{
			name:       "malformed url",
			body:       `{"url":"abc123"}`,
			stub:       &stubPipeline{err: fmt.Errorf("%w: not absolute", pipeline.ErrMalformedURL)},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid video URL."}`,
		},
		{
			name:       "transcript unavailable",
			body:       `{"url":"https://youtu.be/abc123"}`,
			stub:       &stubPipeline{err: fmt.Errorf("%w: no captions", pipeline.ErrTranscriptUnavailable)},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Transcript not available for this video."}`,
		},
		{
			name:       "summarization failed",
			body:       `{"url":"https://youtu.be/abc123"}`,
			stub:       &stubPipeline{err: &pipeline.SummarizationError{Index: 1, Err: errors.New("429: rate limited")}},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred during summarization."}`,
		},
		{
			name:       "anything else",
			body:       `{"url":"https://youtu.be/abc123"}`,
			stub:       &stubPipeline{err: context.Canceled},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An error occurred on the server."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSummarizeHandler(tt.stub)
			req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Summarize(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSummarizeHandlerHidesCause(t *testing.T) {
	stub := &stubPipeline{err: &pipeline.SummarizationError{Index: 0, Err: errors.New("secret upstream body")}}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(`{"url":"https://youtu.be/x"}`))

	NewSummarizeHandler(stub).Summarize(rec, req)

	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Equal(t, "https://youtu.be/x", stub.gotURL)
}
