package usecase

import "github.com/dermalens/backend/internal/domain"

// skinAnalysisSchema constrains the photo-analysis model output to the
// domain.SkinAnalysis shape
func skinAnalysisSchema() *domain.Schema {
	return &domain.Schema{
		Type:     domain.TypeObject,
		Required: []string{"skinType", "overallScore", "concerns", "summary"},
		Properties: map[string]*domain.Schema{
			"skinType": {
				Type: domain.TypeString,
				Enum: []string{"normal", "dry", "oily", "combination", "sensitive"},
			},
			"overallScore": {
				Type:        domain.TypeNumber,
				Description: "overall skin health from 0 (poor) to 100 (excellent)",
			},
			"concerns": {
				Type: domain.TypeArray,
				Items: &domain.Schema{
					Type:     domain.TypeObject,
					Required: []string{"name", "severity", "description", "confidence"},
					Properties: map[string]*domain.Schema{
						"name": {Type: domain.TypeString},
						"severity": {
							Type: domain.TypeString,
							Enum: []string{"low", "moderate", "high"},
						},
						"description": {Type: domain.TypeString},
						"confidence": {
							Type:        domain.TypeNumber,
							Description: "detection confidence between 0 and 1",
						},
					},
				},
			},
			"summary": {Type: domain.TypeString},
		},
	}
}

// recommendationSchema constrains the recommendation output to a list of
// catalog references with routine slot labels
func recommendationSchema() *domain.Schema {
	return &domain.Schema{
		Type:     domain.TypeObject,
		Required: []string{"recommendations"},
		Properties: map[string]*domain.Schema{
			"recommendations": {
				Type: domain.TypeArray,
				Items: &domain.Schema{
					Type:     domain.TypeObject,
					Required: []string{"productId", "productName", "slot"},
					Properties: map[string]*domain.Schema{
						"productId": {
							Type:        domain.TypeString,
							Description: "variant ID copied verbatim from the catalog listing",
						},
						"productName": {Type: domain.TypeString},
						"slot": {
							Type:        domain.TypeString,
							Description: "routine step, e.g. cleanser, treatment, moisturizer, sunscreen",
						},
						"reason": {Type: domain.TypeString, Nullable: true},
					},
				},
			},
		},
	}
}
