package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dermalens/backend/internal/domain"
)

// defaultMaxCandidates bounds how much of a partition is embedded into a
// recommendation prompt
const defaultMaxCandidates = 150

// RecommendationServiceConfig holds tunables for the recommendation flow
type RecommendationServiceConfig struct {
	HairKeywords  []string // defaults to the package vocabulary
	MaxCandidates int      // defaults to defaultMaxCandidates
}

// RecommendationService produces purchasable product recommendations by
// joining model output against the cached storefront catalog
type RecommendationService struct {
	invoker       domain.ModelInvoker
	catalog       domain.CatalogProvider
	hairKeywords  []string
	maxCandidates int
}

// NewRecommendationService creates a new recommendation service with dependencies
func NewRecommendationService(
	invoker domain.ModelInvoker,
	catalog domain.CatalogProvider,
	config RecommendationServiceConfig,
) *RecommendationService {
	keywords := config.HairKeywords
	if len(keywords) == 0 {
		keywords = defaultHairKeywords
	}

	maxCandidates := config.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = defaultMaxCandidates
	}

	return &RecommendationService{
		invoker:       invoker,
		catalog:       catalog,
		hairKeywords:  keywords,
		maxCandidates: maxCandidates,
	}
}

// RecommendSkincare recommends from the skincare partition (everything that
// is not a hair product)
func (s *RecommendationService) RecommendSkincare(ctx context.Context, req *domain.RecommendationRequest) ([]domain.RecommendedProduct, error) {
	return s.recommend(ctx, req, ModeExclude, "skincare")
}

// RecommendHair recommends from the hair/scalp partition
func (s *RecommendationService) RecommendHair(ctx context.Context, req *domain.RecommendationRequest) ([]domain.RecommendedProduct, error) {
	return s.recommend(ctx, req, ModeInclude, "hair care")
}

// recommend is the shared flow: cached catalog -> partition -> model call
// with the catalog embedded -> hydrate
func (s *RecommendationService) recommend(
	ctx context.Context,
	req *domain.RecommendationRequest,
	mode PartitionMode,
	kind string,
) ([]domain.RecommendedProduct, error) {
	if req == nil || req.Analysis == nil {
		return nil, fmt.Errorf("%w: analysis payload is required", domain.ErrInvalidRequest)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	subset := Partition(catalog, s.hairKeywords, mode)
	if len(subset) == 0 {
		return nil, fmt.Errorf("%w: no %s products in catalog", domain.ErrCatalogUnavailable, kind)
	}
	if len(subset) > s.maxCandidates {
		subset = subset[:s.maxCandidates]
	}

	raw, err := s.invoker.Invoke(ctx, &domain.GenerationRequest{
		Parts:  []domain.Part{domain.TextPart(buildRecommendationPrompt(req, subset, kind))},
		Schema: recommendationSchema(),
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []domain.RecommendationEntry `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedModelOutput, err)
	}

	return Hydrate(parsed.Recommendations, subset), nil
}
