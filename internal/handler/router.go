package handler

import (
	"net/http"

	"match-pairs-api/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(matchHandler *MatchHandler, logger domain.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger), Recoverer(logger))

	router.HandleFunc("/", matchHandler.Root).Methods("GET")
	router.HandleFunc("/health", matchHandler.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/generate-matches", matchHandler.GenerateMatches).Methods("POST")

	// The API is meant to be called from any front end, so CORS is fully open
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	return c.Handler(router)
}
