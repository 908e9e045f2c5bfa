package handler

import (
	"net/http"
	"time"
)

// healthResponse mirrors the reference backend: {"ok":true,"ts":<unix ms>}.
type healthResponse struct {
	OK bool  `json:"ok"`
	TS int64 `json:"ts"`
}

// GetHealth handles GET /health.
// It returns HTTP 200 with {"ok":true} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true, TS: time.Now().UnixMilli()})
}
