package server

import (
	"context"
	"io/fs"
	"net/http"

	"fastdesign/internal/handlers"
	applog "fastdesign/internal/log"
)

func newRouter(stylesheets fs.FS) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/assets/fast.css", handlers.Stylesheet)
	applog.Debug(context.Background(), "route registered", "path", "/assets/fast.css")
	mux.HandleFunc("/theme/style.json", handlers.StyleParams)
	applog.Debug(context.Background(), "route registered", "path", "/theme/style.json")
	mux.HandleFunc("/theme/bokeh.json", handlers.BokehTheme)
	applog.Debug(context.Background(), "route registered", "path", "/theme/bokeh.json")
	mux.HandleFunc("/preferences", handlers.UpdatePreferences)
	applog.Debug(context.Background(), "route registered", "path", "/preferences")
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	if stylesheets != nil {
		mux.Handle("/assets/css/", http.StripPrefix("/assets/css/", http.FileServer(http.FS(stylesheets))))
		applog.Debug(context.Background(), "route registered", "path", "/assets/css/", "static", true)
	}
	return mux
}
