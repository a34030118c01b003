package handlers

import (
	"encoding/json"
	"net/http"

	"fastdesign/internal/fast/styles"
	applog "fastdesign/internal/log"
)

// StyleParams serves the style parameters of the request's theme as JSON.
func StyleParams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	style, ok := requestStyle(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, style)
}

// BokehTheme serves the Bokeh theme for the request's theme. Query keys named
// after style fields override those fields before projection.
func BokehTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	style, ok := requestStyle(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, style.BokehTheme())
}

func requestStyle(w http.ResponseWriter, r *http.Request) (styles.Style, bool) {
	bundle := currentBundle(r)

	overrides := map[string]string{}
	for key, values := range r.URL.Query() {
		if key == "theme" || len(values) == 0 {
			continue
		}
		if !styles.IsField(key) {
			http.Error(w, "unknown style field: "+key, http.StatusBadRequest)
			return styles.Style{}, false
		}
		overrides[key] = values[0]
	}
	if len(overrides) == 0 {
		return bundle.Style, true
	}

	style, err := bundle.Style.Overlay(overrides)
	if err != nil {
		applog.Debug(r.Context(), "rejected style override", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return styles.Style{}, false
	}
	return style, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		applog.Error(r.Context(), "failed to encode json response", "error", err)
	}
}
