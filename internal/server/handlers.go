package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Taichi-iskw/yt-channel/internal/errors"
	"github.com/Taichi-iskw/yt-channel/internal/query"
)

// dataResponse wraps a successful payload
type dataResponse struct {
	Data any `json:"data"`
}

// errorResponse is the body of every failed API call
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// handleChannel resolves ?query= to channel metadata
func (s *Server) handleChannel(w http.ResponseWriter, r *http.Request) {
	metadata, err := s.service.ResolveChannel(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.CodeMissingQuery:
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing channel query"})
		case errors.CodeNotFound:
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Channel not found"})
		default:
			s.logUpstreamFailure(r, "YouTube API error", err)
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "Failed to fetch data",
				Details: detailsPayload(err),
			})
		}
		return
	}

	s.writeJSON(w, http.StatusOK, dataResponse{Data: metadata})
}

// handleVideos returns one upstream page of a channel's videos verbatim
func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, err := s.service.ListVideos(r.Context(), params.Get("channelId"), params.Get("pageToken"))
	if err != nil {
		if errors.CodeOf(err) == errors.CodeMissingChannelID {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing channelId"})
			return
		}
		s.logUpstreamFailure(r, "Failed to fetch videos", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to fetch videos",
			Details: detailsPayload(err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

// handleClassify reports how ?input= would be interpreted
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	descriptor, ok := query.Classify(r.URL.Query().Get("input"))
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing input"})
		return
	}
	s.writeJSON(w, http.StatusOK, dataResponse{Data: descriptor})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response with the given status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (s *Server) logUpstreamFailure(r *http.Request, msg string, err error) {
	s.logger.ErrorContext(r.Context(), msg,
		slog.String("details", errors.DetailsOf(err)),
		slog.Any("error", err),
		slog.String("request_id", requestIDFrom(r.Context())),
	)
}

// detailsPayload forwards upstream JSON error bodies as JSON and anything else as a string
func detailsPayload(err error) any {
	details := errors.DetailsOf(err)
	if json.Valid([]byte(details)) {
		return json.RawMessage(details)
	}
	return details
}
