// Package api fourcc REST API
//
// @title           fourcc REST API
// @version         1.0.0
// @description     Conversions between four-character codes, integers and bytes.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/swaggo/swag"
)

const shutdownTimeout = 5 * time.Second

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>fourcc API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// NewRouter builds the HTTP handler with all routes configured. A nil
// metrics gets a fresh NewMetrics.
func NewRouter(config ServerConfig, metrics *Metrics) http.Handler {
	if metrics == nil {
		metrics = NewMetrics()
	}
	server := NewServer(config, metrics)

	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	if config.LogRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Get("/schema", metrics.InstrumentHandler("GET", "/api/v1/schema", server.handleSchema))

		r.Get("/fourcc/u32/{value}", metrics.InstrumentHandler("GET", "/api/v1/fourcc/u32/{value}", server.handleUint32))
		r.Get("/fourcc/hex/{hex}", metrics.InstrumentHandler("GET", "/api/v1/fourcc/hex/{hex}", server.handleHex))
		r.Get("/fourcc/{code}", metrics.InstrumentHandler("GET", "/api/v1/fourcc/{code}", server.handleText))
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", handleSwagger)

	return r
}

func handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))
	case "/swagger/swagger.json":
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			log.Printf("Error generating swagger doc: %v", err)
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	default:
		http.NotFound(w, r)
	}
}

// StartServer serves the API until ctx is cancelled, then shuts down gracefully
func StartServer(ctx context.Context, config ServerConfig) error {
	SwaggerInfo.Host = fmt.Sprintf("localhost:%d", config.Port)

	metrics := NewMetrics()
	srv := &http.Server{
		Addr:              config.Addr(),
		Handler:           NewRouter(config, metrics),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting fourcc REST API server on %s", srv.Addr)
		log.Printf("Metrics available at: http://%s/metrics", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Printf("Shutting down fourcc REST API server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
