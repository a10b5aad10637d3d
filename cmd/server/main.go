package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/makito233/fin-erp-yml-config/catalog"
	"github.com/makito233/fin-erp-yml-config/expression"
	"github.com/makito233/fin-erp-yml-config/internal/logger"
	"github.com/makito233/fin-erp-yml-config/mapping"
	"github.com/makito233/fin-erp-yml-config/payload"
)

// exportFilename is the download name for exported configurations.
const exportFilename = "sap-order-payload-mapping.yml"

type Server struct {
	db     *sql.DB
	store  mapping.ConfigStore
	cache  mapping.ConfigsCache
	router *chi.Mux
}

// NewServer wires the configuration store. With a database URL it uses
// PostgreSQL; without one it falls back to the in-memory store, which is
// enough for simulation-only deployments.
func NewServer(databaseURL string) (*Server, error) {
	s := &Server{
		cache: mapping.NewInMemoryConfigsCache(mapping.DefaultCacheConfig()),
	}

	if databaseURL == "" {
		logger.Info("no DATABASE_URL set, using in-memory configuration store")
		s.store = mapping.NewInMemoryConfigStore()
	} else {
		db, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		s.db = db
		s.store = mapping.NewPostgresConfigStore(db)
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/api/v1/health", s.handleHealth)

	// Simulation and configuration tooling
	r.Post("/api/v1/simulate", s.handleSimulate)
	r.Post("/api/v1/extract", s.handleExtract)
	r.Post("/api/v1/defaults", s.handleDefaults)
	r.Post("/api/v1/validate", s.handleValidate)
	r.Post("/api/v1/export", s.handleExport)
	r.Post("/api/v1/import", s.handleImport)

	// Reference catalog
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/invoicing-items", s.handleListInvoicingItems)
		r.Get("/invoicing-items/{name}", s.handleGetInvoicingItem)
		r.Get("/money-movements", s.handleListMoneyMovements)
		r.Get("/money-movements/{name}", s.handleGetMoneyMovement)
	})

	// Stored configurations
	r.Route("/api/v1/configurations", func(r chi.Router) {
		r.Get("/", s.handleListConfigurations)
		r.Post("/", s.handleCreateConfiguration)

		r.Route("/{configId}", func(r chi.Router) {
			r.Get("/", s.handleGetConfiguration)
			r.Put("/", s.handleUpdateConfiguration)
			r.Delete("/", s.handleDeleteConfiguration)
		})
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	respondJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// resolveConfig turns the two accepted configuration forms into a parsed
// configuration, preferring the structured one.
func resolveConfig(cfg *mapping.Configuration, yamlText string) (*mapping.Configuration, error) {
	if cfg != nil {
		return cfg, nil
	}
	if yamlText == "" {
		return nil, fmt.Errorf("configuration or yaml is required")
	}
	return mapping.Parse([]byte(yamlText))
}

// Simulation handler
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	cfg, err := resolveConfig(req.Configuration, req.YAML)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid configuration", err)
		return
	}

	ctx := req.Context
	if ctx == nil {
		ctx = expression.BuildDefaults(expression.Extract(cfg))
	}

	country := req.Country
	if country == "" {
		if c, ok := ctx.Variables["financialSourceCountryCodeValue"].(string); ok && c != "" {
			country = c
		} else {
			country = "ES"
		}
	}

	result := payload.Generate(cfg, ctx, country)

	respondJSON(w, http.StatusOK, SimulateResponse{
		Payload: result.Payload,
		Errors:  result.Errors,
		Country: country,
	})
}

// Variable extraction handler
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	cfg, err := resolveConfig(req.Configuration, req.YAML)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid configuration", err)
		return
	}

	respondJSON(w, http.StatusOK, expression.Extract(cfg))
}

// Default context handler
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	cfg, err := resolveConfig(req.Configuration, req.YAML)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid configuration", err)
		return
	}

	extracted := expression.Extract(cfg)
	respondJSON(w, http.StatusOK, DefaultsResponse{
		Extracted: extracted,
		Context:   expression.BuildDefaults(extracted),
	})
}

// Validation handler
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	cfg := req.Configuration
	if cfg == nil {
		parsed, err := mapping.Parse([]byte(req.YAML))
		if err != nil {
			respondJSON(w, http.StatusOK, ValidateResponse{
				Valid:  false,
				Errors: []string{err.Error()},
			})
			return
		}
		cfg = parsed
	}

	errs := mapping.Validate(cfg)
	if errs == nil {
		errs = []string{}
	}
	respondJSON(w, http.StatusOK, ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

// Export handler, returns the canonical YAML form for download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	cfg, err := resolveConfig(req.Configuration, req.YAML)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid configuration", err)
		return
	}

	out := mapping.Encode(cfg)
	w.Header().Set("Content-Type", "text/yaml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, out)
}

// Import handler, accepts raw YAML and returns the structured configuration
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	cfg, err := mapping.Parse(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "malformed configuration", err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// Catalog handlers

func (s *Server) handleListInvoicingItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"groups": catalog.InvoicingItemGroups(),
		"names":  catalog.InvoicingItemNames(),
	})
}

func (s *Server) handleGetInvoicingItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	item, ok := catalog.InvoicingItemByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "invoicing item not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleListMoneyMovements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"groups": catalog.MoneyMovementGroups(),
		"names":  catalog.MoneyMovementNames(),
	})
}

func (s *Server) handleGetMoneyMovement(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	movement, ok := catalog.MoneyMovementByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "money movement not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, movement)
}

// Stored configuration handlers

func (s *Server) handleListConfigurations(w http.ResponseWriter, r *http.Request) {
	configs := s.cache.Get()
	if configs == nil {
		var err error
		configs, err = s.store.List()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list configurations", err)
			return
		}
		s.cache.Set(configs)
	}

	resp := ConfigurationsListResponse{Configurations: []ConfigurationResponse{}}
	for _, c := range configs {
		resp.Configurations = append(resp.Configurations, toConfigurationResponse(c))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateConfiguration(w http.ResponseWriter, r *http.Request) {
	var req CreateConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.YAML == "" {
		respondError(w, http.StatusBadRequest, "name and yaml are required", nil)
		return
	}
	if _, err := mapping.Parse([]byte(req.YAML)); err != nil {
		respondError(w, http.StatusBadRequest, "malformed configuration", err)
		return
	}

	stored := &mapping.StoredConfiguration{
		ID:   uuid.NewString(),
		Name: req.Name,
		YAML: req.YAML,
	}
	if err := s.store.Add(stored); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store configuration", err)
		return
	}
	s.cache.Invalidate()

	respondJSON(w, http.StatusCreated, toConfigurationResponse(stored))
}

func (s *Server) handleGetConfiguration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "configId")
	stored, err := s.store.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "configuration not found", err)
		return
	}
	respondJSON(w, http.StatusOK, toConfigurationResponse(stored))
}

func (s *Server) handleUpdateConfiguration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "configId")

	var req UpdateConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.YAML == "" {
		respondError(w, http.StatusBadRequest, "name and yaml are required", nil)
		return
	}
	if _, err := mapping.Parse([]byte(req.YAML)); err != nil {
		respondError(w, http.StatusBadRequest, "malformed configuration", err)
		return
	}

	stored := &mapping.StoredConfiguration{
		ID:   id,
		Name: req.Name,
		YAML: req.YAML,
	}
	if err := s.store.Update(stored); err != nil {
		respondError(w, http.StatusNotFound, "configuration not found", err)
		return
	}
	s.cache.Invalidate()

	respondJSON(w, http.StatusOK, toConfigurationResponse(stored))
}

func (s *Server) handleDeleteConfiguration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "configId")
	if err := s.store.Delete(id); err != nil {
		respondError(w, http.StatusNotFound, "configuration not found", err)
		return
	}
	s.cache.Invalidate()

	w.WriteHeader(http.StatusNoContent)
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := ErrorResponse{Error: message}
	if err != nil {
		response.Details = err.Error()
	}
	respondJSON(w, status, response)
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")

	server, err := NewServer(databaseURL)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}
	if server.db != nil {
		defer server.db.Close()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("server starting", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
