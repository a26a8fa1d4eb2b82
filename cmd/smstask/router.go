package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/popeskul/smstask/internal/api"
)

func setupRouter(handler api.ServerInterface) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "api/openapi.yaml")
	})

	return api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseURL:    "/api/v1",
		BaseRouter: r,
	})
}
