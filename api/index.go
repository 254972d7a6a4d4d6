package handler

import (
	"net/http"
	"studio/config"
	"studio/di"
	"studio/shared/logger"
)

// Handler adapts the application for serverless hosting. The outbox worker
// does not run here; deploy it separately or rely on cmd/app for delivery.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	app.HTTP.Handler().ServeHTTP(w, r)
}
