package usecase

import (
	"fmt"
	"strings"

	"github.com/dermalens/backend/internal/domain"
)

const skinAnalysisPrompt = `You are a dermatology assistant. Examine the attached photo(s) of the
user's skin and produce a structured assessment. Identify the skin type, score overall skin health
from 0 to 100, and list every visible concern (acne, dryness, redness, hyperpigmentation, fine
lines, enlarged pores, and similar) with its severity and your confidence. Be specific and
factual; do not invent concerns that are not visible.`

// buildAnalysisPrompt appends optional user context to the base analysis prompt
func buildAnalysisPrompt(profile *domain.Profile) string {
	var b strings.Builder
	b.WriteString(skinAnalysisPrompt)
	writeProfile(&b, profile)
	return b.String()
}

// buildRecommendationPrompt embeds the partitioned catalog so the model can
// only reference purchasable products. kind names the partition ("skincare"
// or "hair care") for the instruction text.
func buildRecommendationPrompt(req *domain.RecommendationRequest, products []domain.Product, kind string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a %s advisor. Based on the user's skin analysis below, build a product
routine using ONLY products from the catalog that follows. For each pick, copy the productId and
productName exactly as listed and assign a routine slot (e.g. cleanser, treatment, moisturizer,
sunscreen). Recommend at most one product per slot and skip slots with no suitable product.

`, kind)

	writeAnalysis(&b, req.Analysis)

	if len(req.Goals) > 0 {
		fmt.Fprintf(&b, "User goals: %s\n", strings.Join(req.Goals, ", "))
	}
	writeProfile(&b, req.Profile)

	b.WriteString("\nCatalog:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- productId: %s | productName: %s | price: %s", p.VariantID, p.Name, p.Price)
		if len(p.Tags) > 0 {
			fmt.Fprintf(&b, " | tags: %s", strings.Join(p.Tags, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// buildReportPrompt asks for a free-text narrative of a prior analysis
func buildReportPrompt(analysis *domain.SkinAnalysis, profile *domain.Profile) string {
	var b strings.Builder
	b.WriteString(`Write a friendly, plain-language skin health report for the user based on the
analysis below. Explain each concern, what likely causes it, and general care advice. Do not
recommend specific commercial products. Keep it under 400 words.

`)
	writeAnalysis(&b, analysis)
	writeProfile(&b, profile)
	return b.String()
}

// buildChatPrompt flattens prior turns into a single conversational prompt
func buildChatPrompt(message string, history []domain.ChatTurn) string {
	var b strings.Builder
	b.WriteString(`You are a helpful skincare and hair care assistant. Answer the user's question
concisely. If asked for medical advice beyond cosmetic care, recommend seeing a dermatologist.

`)
	for _, turn := range history {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Text)
	}
	fmt.Fprintf(&b, "user: %s\n", message)
	return b.String()
}

func writeAnalysis(b *strings.Builder, analysis *domain.SkinAnalysis) {
	if analysis == nil {
		return
	}
	fmt.Fprintf(b, "Skin analysis: type=%s, overall score=%.0f/100\n", analysis.SkinType, analysis.OverallScore)
	for _, concern := range analysis.Concerns {
		fmt.Fprintf(b, "- %s (%s): %s\n", concern.Name, concern.Severity, concern.Description)
	}
	if analysis.Summary != "" {
		fmt.Fprintf(b, "Summary: %s\n", analysis.Summary)
	}
}

func writeProfile(b *strings.Builder, profile *domain.Profile) {
	if profile == nil {
		return
	}
	b.WriteString("\nUser profile:")
	if profile.Age > 0 {
		fmt.Fprintf(b, " age %d.", profile.Age)
	}
	if profile.Gender != "" {
		fmt.Fprintf(b, " gender %s.", profile.Gender)
	}
	if profile.SkinType != "" {
		fmt.Fprintf(b, " self-reported skin type %s.", profile.SkinType)
	}
	b.WriteString("\n")
}
