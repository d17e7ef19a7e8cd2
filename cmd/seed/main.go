package main

import (
	"context"
	"flag"
	"log"

	"cms/internal/config"
	"cms/internal/repository"
	"cms/internal/seed"
	serviceAuth "cms/internal/service/auth"
	serviceCMS "cms/internal/service/cms"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed content")
	clearData := flag.Bool("clear-data", false, "Clear all rows (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer logCloser.Close()

	switch {
	case *clearData:
		log.Printf("Clearing data only (environment: %s, driver: %s, prefix: %s)", cfg.Environment, cfg.DatabaseDriver, cfg.TablePrefix)
	case *schemaOnly:
		log.Printf("Setting up schema only (environment: %s, driver: %s, prefix: %s)", cfg.Environment, cfg.DatabaseDriver, cfg.TablePrefix)
	default:
		log.Printf("Seeding database (environment: %s, driver: %s, prefix: %s)", cfg.Environment, cfg.DatabaseDriver, cfg.TablePrefix)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := store.DropTables(ctx); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	// Seeding assumes an empty store: ids and short names come from the fixture
	log.Println("Clearing existing data...")
	if err := store.ClearData(ctx); err != nil {
		log.Fatalf("Failed to clear data: %v", err)
	}

	if *clearData {
		log.Println("Data cleared successfully")
		return
	}

	fx, err := seed.DefaultFixture()
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	// Create services
	validator := serviceCMS.NewResourceValidator(store.Folders, store.Files)
	counterService := serviceCMS.NewCounterService(store.Files, store.Folders, store.Comments, logger)
	folderService := serviceCMS.NewFolderService(store.Folders, store.TxManager, cfg, logger)
	authorizer := serviceAuth.NewOwnerBasedAuthorizer(store.Files)
	fileService := serviceCMS.NewFileService(store.Files, store.Folders, store.Admins, counterService, validator, authorizer, logger)
	commentService := serviceCMS.NewCommentService(store.Comments, counterService, validator, logger)

	seeder := seed.NewSeeder(store.Admins, folderService, fileService, commentService, logger)
	result, err := seeder.Apply(ctx, fx)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeding complete: %d admins, %d folders, %d files, %d comments",
		result.Admins, result.Folders, result.Files, result.Comments)
}
