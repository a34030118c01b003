package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fastdesign/internal/fast/assets"
	"fastdesign/internal/fast/styles"
	"fastdesign/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&models.ThemePreference{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	return db
}

func configureForTest(t *testing.T, db *gorm.DB) *scs.SessionManager {
	t.Helper()
	loaded, err := styles.LoadBundles(assets.CSS)
	if err != nil {
		t.Fatalf("load bundles: %v", err)
	}
	sm := scs.New()
	Configure(Dependencies{Sessions: sm, Database: db, Bundles: loaded, DefaultTheme: models.ThemeDefault})
	t.Cleanup(func() {
		Configure(Dependencies{})
	})
	return sm
}

func serve(sm *scs.SessionManager, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	sm.LoadAndSave(h).ServeHTTP(rr, req)
	return rr
}

func withCookies(req *http.Request, rr *httptest.ResponseRecorder) *http.Request {
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequestThemeFallsBackToConfiguredDefault(t *testing.T) {
	configureForTest(t, nil)
	Configure(Dependencies{Bundles: bundles, DefaultTheme: "DARK"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := requestTheme(req); got != models.ThemeDark {
		t.Fatalf("requestTheme = %q, want %q", got, models.ThemeDark)
	}

	req = httptest.NewRequest(http.MethodGet, "/?theme=bogus", nil)
	if got := requestTheme(req); got != models.ThemeDefault {
		t.Fatalf("requestTheme = %q, want %q for unknown query theme", got, models.ThemeDefault)
	}
}

func TestRequestThemeUsesStoredPreference(t *testing.T) {
	db := openTestDB(t)
	sm := configureForTest(t, db)

	const id = "5d1c7f0e-8f0a-4c47-9b3b-000000000042"
	if err := db.Create(&models.ThemePreference{ClientID: id, Theme: models.ThemeDark}).Error; err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	seedClient := func(w http.ResponseWriter, r *http.Request) {
		sm.Put(r.Context(), sessionClientIDKey, id)
	}
	first := serve(sm, seedClient, httptest.NewRequest(http.MethodGet, "/", nil))

	var got string
	probe := func(w http.ResponseWriter, r *http.Request) {
		got = requestTheme(r)
	}
	serve(sm, probe, withCookies(httptest.NewRequest(http.MethodGet, "/", nil), first))

	if got != models.ThemeDark {
		t.Fatalf("requestTheme = %q, want stored %q", got, models.ThemeDark)
	}
}
