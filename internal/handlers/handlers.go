package handlers

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fastdesign/internal/fast/styles"
	applog "fastdesign/internal/log"
	"fastdesign/models"
)

const (
	sessionThemeKey    = "fast:theme"
	sessionClientIDKey = "fast:client:id"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	bundles        styles.Bundles
	defaultTheme   = models.ThemeDefault
)

// Dependencies are the shared values the HTTP handlers read.
type Dependencies struct {
	Sessions     *scs.SessionManager
	Database     *gorm.DB
	Bundles      styles.Bundles
	DefaultTheme string
}

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(deps Dependencies) {
	sessionManager = deps.Sessions
	database = deps.Database
	bundles = deps.Bundles
	defaultTheme = models.NormalizeTheme(deps.DefaultTheme)
}

// requestTheme picks the theme for r: an explicit ?theme= wins, then the
// session, then the stored preference, then the configured default.
func requestTheme(r *http.Request) string {
	if value, ok := r.URL.Query()["theme"]; ok && len(value) > 0 {
		return models.NormalizeTheme(value[0])
	}

	if sessionManager != nil {
		if theme := sessionManager.GetString(r.Context(), sessionThemeKey); theme != "" {
			return models.NormalizeTheme(theme)
		}
	}

	if pref, err := loadPreference(r); err == nil {
		return models.NormalizeTheme(pref.Theme)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, errNoClient) && !errors.Is(err, gorm.ErrInvalidDB) {
		applog.Error(r.Context(), "failed to load theme preference", "error", err)
	}

	return defaultTheme
}

func currentBundle(r *http.Request) styles.Bundle {
	return bundles.Get(requestTheme(r))
}

var errNoClient = errors.New("no client id in session")

func clientID(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.GetString(r.Context(), sessionClientIDKey)
}

func ensureClientID(r *http.Request) string {
	if id := clientID(r); id != "" {
		return id
	}
	id := uuid.NewString()
	if sessionManager != nil {
		sessionManager.Put(r.Context(), sessionClientIDKey, id)
	}
	return id
}

func setSessionTheme(r *http.Request, theme string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionThemeKey, theme)
}
