package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/trailboard/norquay/internal/config"
)

// NewRouter wires every endpoint, the optional static directory and the
// middleware chain.
func NewRouter(svc *Service, cfg *config.Config) http.Handler {
	router := mux.NewRouter()
	router.Use(withRequestID)
	router.Use(accessLog)

	for _, ep := range Endpoints(svc, cfg) {
		for _, path := range ep.Paths {
			router.Handle(path, ep).Methods(http.MethodGet)
		}
	}

	if cfg.PublicDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir))).Methods(http.MethodGet)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(handlers.CompressHandler(cors(router)))
}
