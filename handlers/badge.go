package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hits/badge"
	"hits/models"
)

// BadgeHandler increments the key and responds with the shields.io JSON
// document for the total.
func BadgeHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	total, err := recordHit(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	setNoCacheHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.NewShieldsBadge(strconv.FormatInt(total, 10)))
}

// SVGBadgeHandler increments the key and renders the total as an SVG badge.
// Style and colors come from the query string.
func SVGBadgeHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	total, err := recordHit(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	svg := badge.Render(badge.Params{
		Style:        badge.ParseStyle(q.Get("style")),
		Label:        q.Get("label"),
		Message:      strconv.FormatInt(total, 10),
		LabelColor:   q.Get("label_color"),
		MessageColor: q.Get("message_color"),
	})

	setNoCacheHeaders(w)
	w.Header().Set("Content-Type", "image/svg+xml;charset=utf-8")
	w.Write([]byte(svg))
}

// setNoCacheHeaders keeps proxies and GitHub's camo from freezing a badge.
func setNoCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
