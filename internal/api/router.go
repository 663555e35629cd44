package api

import (
	"net/http"

	"geocoord/internal/api/handlers"
	"geocoord/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(parser *services.Parser) http.Handler {
	mux := http.NewServeMux()

	coordHandler := &handlers.CoordinateHandler{Parser: parser}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/coordinates/parse", coordHandler.Parse)
	mux.HandleFunc("/coordinates/compare", coordHandler.Compare)

	return loggingMiddleware(mux)
}
