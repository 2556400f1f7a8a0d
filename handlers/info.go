package handlers

import (
	"encoding/json"
	"net/http"
)

const version = "0.1.0"

// InfoHandler describes the service and its endpoints.
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"project_name":      "hits",
		"version":           version,
		"badge_url_example": "/badge/your-key",
		"svg_url_example":   "/svg/your-key?style=flat",
		"stats_url_example": "/stats/your-key",
		"websocket_url":     "/ws",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
