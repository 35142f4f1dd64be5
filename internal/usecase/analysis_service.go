package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

// AnalyzeRequest carries the photos and optional context for one analysis call
type AnalyzeRequest struct {
	Images  []domain.ImageInput
	Profile *domain.Profile
}

// ReportRequest carries a prior analysis for narrative rendering
type ReportRequest struct {
	Analysis *domain.SkinAnalysis
	Profile  *domain.Profile
}

// ChatRequest carries one chat message plus prior turns
type ChatRequest struct {
	Message string
	History []domain.ChatTurn
}

// AnalysisService relays photo analysis, report, and chat requests to the
// generative model. Failover across credentials lives inside the invoker;
// this layer only shapes prompts and validates output.
type AnalysisService struct {
	invoker domain.ModelInvoker
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(invoker domain.ModelInvoker) *AnalysisService {
	return &AnalysisService{invoker: invoker}
}

// AnalyzeSkin sends the photos to the model under the analysis schema and
// parses the structured result
func (s *AnalysisService) AnalyzeSkin(ctx context.Context, req *AnalyzeRequest) (*domain.SkinAnalysis, error) {
	if req == nil || len(req.Images) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", domain.ErrInvalidRequest)
	}

	parts := []domain.Part{domain.TextPart(buildAnalysisPrompt(req.Profile))}
	for _, img := range req.Images {
		if len(img.Data) == 0 {
			return nil, fmt.Errorf("%w: empty image data", domain.ErrInvalidRequest)
		}
		parts = append(parts, domain.ImagePart(img.MIMEType, img.Data))
	}

	raw, err := s.invoker.Invoke(ctx, &domain.GenerationRequest{
		Parts:  parts,
		Schema: skinAnalysisSchema(),
	})
	if err != nil {
		return nil, err
	}

	var analysis domain.SkinAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedModelOutput, err)
	}
	return &analysis, nil
}

// GenerateReport renders a prior analysis as a free-text report
func (s *AnalysisService) GenerateReport(ctx context.Context, req *ReportRequest) (string, error) {
	if req == nil || req.Analysis == nil {
		return "", fmt.Errorf("%w: analysis payload is required", domain.ErrInvalidRequest)
	}

	return s.invoker.Invoke(ctx, &domain.GenerationRequest{
		Parts: []domain.Part{domain.TextPart(buildReportPrompt(req.Analysis, req.Profile))},
	})
}

// Chat relays a conversational message to the model
func (s *AnalysisService) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidRequest)
	}

	return s.invoker.Invoke(ctx, &domain.GenerationRequest{
		Parts: []domain.Part{domain.TextPart(buildChatPrompt(req.Message, req.History))},
	})
}

// stripCodeFence tolerates models that wrap JSON output in a markdown fence
// despite the response mime type
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
