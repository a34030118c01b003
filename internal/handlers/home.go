package handlers

import (
	"net/http"

	"fastdesign/internal/views/layout"
)

// Home renders the Fast gallery page for the request's theme.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	bundle := currentBundle(r)
	content := layout.Accordion(bundle.Style, "Palette", layout.Swatches(bundle.Style))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Page("Fast Gallery", bundle, content).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
