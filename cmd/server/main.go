package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dermalens/backend/config"
	httpDelivery "github.com/dermalens/backend/internal/delivery/http"
	"github.com/dermalens/backend/internal/infrastructure/cache"
	"github.com/dermalens/backend/internal/infrastructure/gemini"
	"github.com/dermalens/backend/internal/infrastructure/shopify"
	"github.com/dermalens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting DermaLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Credential pool for the generative model. Refusing to start without
	// at least one key is enforced both here and in config validation.
	pool, err := gemini.NewPool(context.Background(), gemini.PoolConfig{
		APIKeys:        cfg.Gemini.APIKeys,
		Model:          cfg.Gemini.Model,
		AttemptTimeout: cfg.Gemini.AttemptTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create Gemini credential pool: %v", err)
	}
	defer pool.Close()
	log.Printf("Gemini: model=%s, credentials=%d, attempt timeout=%s",
		cfg.Gemini.Model, pool.Size(), cfg.Gemini.AttemptTimeout)

	// Storefront catalog: fetched once, cached for the process lifetime
	storefront := shopify.NewClient(
		shopify.Endpoint(cfg.Shopify.StoreDomain, cfg.Shopify.APIVersion),
		cfg.Shopify.StoreDomain,
		cfg.Shopify.StorefrontToken,
		cfg.Shopify.PageSize,
	)
	catalogCache := cache.NewCatalogCache(storefront)
	log.Printf("Shopify: store=%s, api=%s, page size=%d",
		cfg.Shopify.StoreDomain, cfg.Shopify.APIVersion, cfg.Shopify.PageSize)

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(pool)
	recommendationService := usecase.NewRecommendationService(
		pool,
		catalogCache,
		usecase.RecommendationServiceConfig{},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, recommendationService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
