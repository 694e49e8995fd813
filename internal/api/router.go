package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"jamesfarrell.me/youtube-summarizer/internal/api/handlers"
	"jamesfarrell.me/youtube-summarizer/internal/api/middleware"
)

// NewRouter serves POST /summarize only. CORS is open to every origin.
// Logging wraps everything, so 404s, 405s and preflights answered by the
// CORS handler are logged too.
func NewRouter(summarizer handlers.Summarizer) http.Handler {
	r := mux.NewRouter()

	summarizeHandler := handlers.NewSummarizeHandler(summarizer)
	r.HandleFunc("/summarize", summarizeHandler.Summarize).Methods(http.MethodPost)

	return middleware.Logging(cors.AllowAll().Handler(r))
}
