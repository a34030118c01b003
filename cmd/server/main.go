package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"fastdesign/internal/config"
	"fastdesign/internal/db"
	"fastdesign/internal/db/mock"
	"fastdesign/internal/fast/assets"
	"fastdesign/internal/fast/styles"
	applog "fastdesign/internal/log"
	"fastdesign/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

// Indirections so tests can replace the process edges.
var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	setLogFormatFunc    = applog.SetFormat
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	stylesheetFSFunc    = stylesheetFS
	loadBundlesFunc     = styles.LoadBundles
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}
	if err := setLogFormatFunc(cfg.Logging.Format); err != nil {
		applog.Error(ctx, "invalid log format", "format", cfg.Logging.Format, "error", err)
		return 1
	}

	stylesheets := stylesheetFSFunc(ctx, cfg.Theme)
	bundles, err := loadBundlesFunc(stylesheets)
	if err != nil {
		applog.Error(ctx, "failed to load fast stylesheets", "error", err)
		return 1
	}
	applog.Info(ctx, "fast theme bundles loaded",
		"defaultBytes", len(bundles.Default.CSS),
		"darkBytes", len(bundles.Dark.CSS),
	)

	database, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		return 1
	}

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database:     database,
		Bundles:      bundles,
		DefaultTheme: cfg.Theme.Default,
		Stylesheets:  stylesheets,
	})
	if err != nil {
		applog.Error(ctx, "failed to create server", "error", err)
		return 1
	}

	shutdown, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
		return 0
	case sig := <-shutdown:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
	}

	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		return 1
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(ctx, "server encountered an error", "error", err)
		return 1
	}
	return 0
}

func stylesheetFS(ctx context.Context, cfg config.ThemeConfig) fs.FS {
	if cfg.CSSDir == "" {
		return assets.CSS
	}
	applog.Info(ctx, "reading fast stylesheets from directory", "dir", cfg.CSSDir)
	return os.DirFS(cfg.CSSDir)
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch {
	case cfg.UseMock:
		applog.Info(ctx, "using in-memory mock database")
		return newMockDatabaseFunc(ctx)
	case cfg.URL == "":
		applog.Info(ctx, "no database configured; theme preferences live in the session only")
		return nil, nil
	default:
		return configureDatabase(cfg)
	}
}
