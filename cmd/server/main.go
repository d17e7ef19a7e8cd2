package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cms/internal/auth"
	"cms/internal/config"
	"cms/internal/handler"
	"cms/internal/middleware"
	"cms/internal/repository"
	serviceAuth "cms/internal/service/auth"
	serviceCMS "cms/internal/service/cms"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"driver", cfg.DatabaseDriver,
	)

	// Admin routes need a token verifier; refuse to start without one
	if cfg.AdminJWKSURL == "" {
		log.Fatalf("ADMIN_JWKS_URL is required")
	}
	jwtVerifier, err := auth.NewJWTVerifier(cfg.AdminJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Open the record store
	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if cfg.AutoMigrate {
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		logger.Info("schema ensured", "table_prefix", cfg.TablePrefix)
	}

	// Create services
	validator := serviceCMS.NewResourceValidator(store.Folders, store.Files)
	counterService := serviceCMS.NewCounterService(store.Files, store.Folders, store.Comments, logger)
	folderService := serviceCMS.NewFolderService(store.Folders, store.TxManager, cfg, logger)
	treeService := serviceCMS.NewTreeService(store.Folders, cfg.FolderMaxDepth, logger)
	authorizer := serviceAuth.NewOwnerBasedAuthorizer(store.Files)
	fileService := serviceCMS.NewFileService(store.Files, store.Folders, store.Admins, counterService, validator, authorizer, logger)
	paginationService := serviceCMS.NewPaginationService(store.Files, store.Folders, store.Admins, cfg, logger)
	commentService := serviceCMS.NewCommentService(store.Comments, counterService, validator, logger)

	// Create handlers
	handlers := &handler.Handlers{
		Health:  handler.NewHealthHandler(store, store.Driver, logger),
		Tree:    handler.NewTreeHandler(treeService, logger),
		Folder:  handler.NewFolderHandler(folderService, paginationService, cfg, logger),
		File:    handler.NewFileHandler(fileService, paginationService, counterService, logger),
		Image:   handler.NewImageHandler(fileService, paginationService, logger),
		Comment: handler.NewCommentHandler(commentService, logger),
	}

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handlers, middleware.RequireAdmin(jwtVerifier, logger))

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → Recovery → Routes
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Shut down cleanly on SIGINT/SIGTERM
	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-shutdownCtx.Done()
		logger.Info("server shutting down")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
