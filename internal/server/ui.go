package server

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed static/index.html
var indexHTML []byte

// handleIndex serves the single-page UI
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexHTML); err != nil {
		s.logger.Error("failed to write index page", slog.Any("error", err))
	}
}
