package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/aaronzipp/blobarena/internal/game"
	"github.com/aaronzipp/blobarena/internal/protocol"
)

// HandleState returns the current players and food as JSON
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	ctx.Arena.RLock()
	players, foods := game.Snapshot(ctx.Arena.World)
	ctx.Arena.RUnlock()

	respondJSON(w, http.StatusOK, protocol.Update{Players: players, Foods: foods})
}

// HandleHealth reports that the server is up
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
