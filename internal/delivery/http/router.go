package http

import (
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "businessghat/docs"
	"businessghat/internal/delivery/http/controllers"
	"businessghat/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// public is served for every path no API route claims.
func NewRouter(eventsController *controllers.LumaEventsController, siteController *controllers.SiteController, public fs.FS, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Event feed
	mux.HandleFunc("GET /events", eventsController.ListEvents)
	mux.HandleFunc("GET /luma-events", eventsController.ListEvents)

	// Site metadata and content
	mux.HandleFunc("GET /site", siteController.GetMetadata)
	mux.HandleFunc("GET /content", siteController.GetContent)
	mux.HandleFunc("GET /content/{section}", siteController.GetContentSection)

	// Ops
	mux.HandleFunc("GET /health", handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("GET /", http.FileServerFS(public))

	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
