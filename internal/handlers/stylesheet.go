package handlers

import (
	"net/http"

	applog "fastdesign/internal/log"
)

// Stylesheet serves the concatenated Fast stylesheet for the request's theme.
func Stylesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	bundle := currentBundle(r)
	if bundle.CSS == "" {
		applog.Error(r.Context(), "stylesheet requested before bundles were loaded", "theme", bundle.Name)
		http.Error(w, "stylesheet unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Vary", "Cookie")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(bundle.CSS)); err != nil {
		applog.Error(r.Context(), "failed to write stylesheet", "error", err)
	}
}
