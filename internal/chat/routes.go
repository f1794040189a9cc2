package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

// RegisterRoutes mounts the chat endpoints on the given router.
func RegisterRoutes(r chi.Router, proxy *Proxy) {
	r.Post("/api/chat", handleChat(proxy))
	r.Get("/api/personas", handlePersonas)
}

func handleChat(proxy *Proxy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := DecodeRequest(r.Body)
		if err != nil {
			writeError(w, err)
			return
		}

		resp, err := proxy.Handle(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handlePersonas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, persona.List())
}

func writeError(w http.ResponseWriter, err error) {
	status, body := Classify(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
