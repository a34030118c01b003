package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applog "fastdesign/internal/log"
	"fastdesign/models"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

func loadPreference(r *http.Request) (*models.ThemePreference, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}
	id := clientID(r)
	if id == "" {
		return nil, errNoClient
	}

	pref := &models.ThemePreference{}
	if err := database.WithContext(r.Context()).Where("client_id = ?", id).First(pref).Error; err != nil {
		return nil, err
	}
	return pref, nil
}

func savePreference(r *http.Request, id, theme string) error {
	if database == nil {
		return gorm.ErrInvalidDB
	}
	pref := &models.ThemePreference{ClientID: id, Theme: theme}
	return database.WithContext(r.Context()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "updated_at"}),
	}).Create(pref).Error
}

// UpdatePreferences stores the visitor's theme in the session and, when a
// database is configured, persists it against the visitor's client id.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := strings.ToLower(strings.TrimSpace(r.FormValue("theme")))
	if !models.ValidTheme(themeValue) {
		applog.Debug(r.Context(), "received invalid theme selection", "value", themeValue)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}

	id := ensureClientID(r)
	if database == nil {
		applog.Debug(r.Context(), "database not configured; skipping preference persistence")
	} else {
		applog.Debug(r.Context(), "updating theme preference", "clientID", id, "theme", themeValue)
		if err := savePreference(r, id, themeValue); err != nil {
			applog.Error(r.Context(), "failed to persist theme preference", "error", err)
			http.Error(w, "failed to save preferences", http.StatusInternalServerError)
			return
		}
	}

	setSessionTheme(r, themeValue)

	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
	} else if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	response := preferencesResponse{Theme: themeValue}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		applog.Error(r.Context(), "failed to encode preferences response", "error", err)
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
