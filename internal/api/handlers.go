package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type chatRequest struct {
	Message string `json:"message"`
	CVPath  string `json:"cv_path,omitempty"`
}

// handleChat answers a question about the loaded documents. The response
// body is always the structured result JSON, including load and completion
// failures; only malformed requests get an HTTP error status.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		jsonError(w, "message is required", http.StatusBadRequest)
		return
	}

	result := s.responder.Answer(r.Context(), req.Message, req.CVPath)

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(result.JSON()))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
