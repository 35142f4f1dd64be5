package http

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermalens/backend/internal/domain"
	"github.com/dermalens/backend/internal/usecase"
)

// AnalysisService is the analysis/report/chat contract the handler depends on
type AnalysisService interface {
	AnalyzeSkin(ctx context.Context, req *usecase.AnalyzeRequest) (*domain.SkinAnalysis, error)
	GenerateReport(ctx context.Context, req *usecase.ReportRequest) (string, error)
	Chat(ctx context.Context, req *usecase.ChatRequest) (string, error)
}

// RecommendationService is the recommendation contract the handler depends on
type RecommendationService interface {
	RecommendSkincare(ctx context.Context, req *domain.RecommendationRequest) ([]domain.RecommendedProduct, error)
	RecommendHair(ctx context.Context, req *domain.RecommendationRequest) ([]domain.RecommendedProduct, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis AnalysisService
	recs     RecommendationService
}

// NewHandler creates a new HTTP handler
func NewHandler(analysis AnalysisService, recs RecommendationService) *Handler {
	return &Handler{analysis: analysis, recs: recs}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dermalens-backend",
		"version": "1.0.0",
	})
}

type imagePayload struct {
	Data     string `json:"data" binding:"required"` // base64-encoded
	MIMEType string `json:"mimeType"`
}

type analyzeSkinRequest struct {
	Images  []imagePayload  `json:"images" binding:"required,min=1"`
	Profile *domain.Profile `json:"profile"`
}

// AnalyzeSkin handles photo analysis requests
func (h *Handler) AnalyzeSkin(c *gin.Context) {
	var body analyzeSkinRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images array is required"})
		return
	}

	images := make([]domain.ImageInput, 0, len(body.Images))
	for _, img := range body.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image data must be base64-encoded"})
			return
		}
		mimeType := img.MIMEType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		images = append(images, domain.ImageInput{Data: data, MIMEType: mimeType})
	}

	analysis, err := h.analysis.AnalyzeSkin(c.Request.Context(), &usecase.AnalyzeRequest{
		Images:  images,
		Profile: body.Profile,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// RecommendSkincare handles skincare recommendation requests
func (h *Handler) RecommendSkincare(c *gin.Context) {
	h.recommend(c, h.recs.RecommendSkincare)
}

// RecommendHair handles hair care recommendation requests
func (h *Handler) RecommendHair(c *gin.Context) {
	h.recommend(c, h.recs.RecommendHair)
}

func (h *Handler) recommend(
	c *gin.Context,
	recommend func(context.Context, *domain.RecommendationRequest) ([]domain.RecommendedProduct, error),
) {
	var body domain.RecommendationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis payload is required"})
		return
	}

	products, err := recommend(c.Request.Context(), &body)
	if err != nil {
		respondError(c, err)
		return
	}

	if products == nil {
		products = []domain.RecommendedProduct{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": products})
}

type reportRequest struct {
	Analysis *domain.SkinAnalysis `json:"analysis" binding:"required"`
	Profile  *domain.Profile      `json:"profile"`
}

// GenerateReport handles text report requests
func (h *Handler) GenerateReport(c *gin.Context) {
	var body reportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis payload is required"})
		return
	}

	report, err := h.analysis.GenerateReport(c.Request.Context(), &usecase.ReportRequest{
		Analysis: body.Analysis,
		Profile:  body.Profile,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

type chatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []domain.ChatTurn `json:"history"`
}

// Chat handles chat requests
func (h *Handler) Chat(c *gin.Context) {
	var body chatRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.analysis.Chat(c.Request.Context(), &usecase.ChatRequest{
		Message: body.Message,
		History: body.History,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// respondError maps domain failures onto HTTP statuses. Failover inside the
// invocation layer is invisible here; only terminal failures arrive.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMalformedModelOutput):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrCatalogUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
