package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dermalens/backend/internal/domain"
)

// MockInvoker is a mock implementation of domain.ModelInvoker
type MockInvoker struct {
	output  string
	err     error
	calls   int
	lastReq *domain.GenerationRequest
}

func (m *MockInvoker) Invoke(ctx context.Context, req *domain.GenerationRequest) (string, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

func someImage() domain.ImageInput {
	return domain.ImageInput{Data: []byte{0xFF, 0xD8, 0xFF}, MIMEType: "image/jpeg"}
}

func TestAnalyzeSkin(t *testing.T) {
	ctx := context.Background()

	t.Run("parses structured output", func(t *testing.T) {
		invoker := &MockInvoker{output: `{
			"skinType": "combination",
			"overallScore": 72,
			"concerns": [
				{"name": "acne", "severity": "moderate", "description": "inflamed lesions on chin", "confidence": 0.9}
			],
			"summary": "Mostly healthy with localized breakouts."
		}`}
		svc := NewAnalysisService(invoker)

		analysis, err := svc.AnalyzeSkin(ctx, &AnalyzeRequest{Images: []domain.ImageInput{someImage()}})
		if err != nil {
			t.Fatalf("AnalyzeSkin() error = %v, want nil", err)
		}
		if analysis.SkinType != "combination" {
			t.Errorf("SkinType = %s, want combination", analysis.SkinType)
		}
		if analysis.OverallScore != 72 {
			t.Errorf("OverallScore = %v, want 72", analysis.OverallScore)
		}
		if len(analysis.Concerns) != 1 || analysis.Concerns[0].Name != "acne" {
			t.Errorf("Concerns = %+v, want one acne concern", analysis.Concerns)
		}
	})

	t.Run("sends images and schema to the invoker", func(t *testing.T) {
		invoker := &MockInvoker{output: `{"skinType":"dry","overallScore":60,"concerns":[],"summary":"ok"}`}
		svc := NewAnalysisService(invoker)

		_, err := svc.AnalyzeSkin(ctx, &AnalyzeRequest{
			Images: []domain.ImageInput{someImage(), someImage()},
		})
		if err != nil {
			t.Fatalf("AnalyzeSkin() error = %v, want nil", err)
		}

		req := invoker.lastReq
		if req.Schema == nil {
			t.Error("analysis request must carry an output schema")
		}
		imageParts := 0
		for _, part := range req.Parts {
			if part.Image != nil {
				imageParts++
			}
		}
		if imageParts != 2 {
			t.Errorf("image parts = %d, want 2", imageParts)
		}
		if req.Parts[0].Image != nil {
			t.Error("first part should be the text prompt")
		}
	})

	t.Run("tolerates code-fenced output", func(t *testing.T) {
		invoker := &MockInvoker{output: "```json\n{\"skinType\":\"oily\",\"overallScore\":55,\"concerns\":[],\"summary\":\"ok\"}\n```"}
		svc := NewAnalysisService(invoker)

		analysis, err := svc.AnalyzeSkin(ctx, &AnalyzeRequest{Images: []domain.ImageInput{someImage()}})
		if err != nil {
			t.Fatalf("AnalyzeSkin() error = %v, want nil", err)
		}
		if analysis.SkinType != "oily" {
			t.Errorf("SkinType = %s, want oily", analysis.SkinType)
		}
	})

	t.Run("rejects non-conforming output as a parse failure", func(t *testing.T) {
		invoker := &MockInvoker{output: "I'm sorry, I cannot analyze this image."}
		svc := NewAnalysisService(invoker)

		_, err := svc.AnalyzeSkin(ctx, &AnalyzeRequest{Images: []domain.ImageInput{someImage()}})
		if !errors.Is(err, domain.ErrMalformedModelOutput) {
			t.Errorf("AnalyzeSkin() error = %v, want ErrMalformedModelOutput", err)
		}
	})

	t.Run("requires at least one image", func(t *testing.T) {
		invoker := &MockInvoker{}
		svc := NewAnalysisService(invoker)

		_, err := svc.AnalyzeSkin(ctx, &AnalyzeRequest{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("AnalyzeSkin() error = %v, want ErrInvalidRequest", err)
		}
		if invoker.calls != 0 {
			t.Errorf("invoker calls = %d, want 0 for invalid request", invoker.calls)
		}
	})

	t.Run("propagates invoker failure unchanged", func(t *testing.T) {
		invoker := &MockInvoker{err: domain.ErrPoolExhausted}
		svc := NewAnalysisService(invoker)

		_, err := svc.AnalyzeSkin(ctx, &AnalyzeRequest{Images: []domain.ImageInput{someImage()}})
		if !errors.Is(err, domain.ErrPoolExhausted) {
			t.Errorf("AnalyzeSkin() error = %v, want ErrPoolExhausted", err)
		}
	})
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()
	analysis := &domain.SkinAnalysis{SkinType: "dry", OverallScore: 64, Summary: "dry patches"}

	t.Run("returns free text without schema", func(t *testing.T) {
		invoker := &MockInvoker{output: "Your skin is mostly healthy."}
		svc := NewAnalysisService(invoker)

		report, err := svc.GenerateReport(ctx, &ReportRequest{Analysis: analysis})
		if err != nil {
			t.Fatalf("GenerateReport() error = %v, want nil", err)
		}
		if report != "Your skin is mostly healthy." {
			t.Errorf("report = %q", report)
		}
		if invoker.lastReq.Schema != nil {
			t.Error("report request must not carry an output schema")
		}
		if !strings.Contains(invoker.lastReq.Parts[0].Text, "dry") {
			t.Error("report prompt should embed the analysis")
		}
	})

	t.Run("requires an analysis payload", func(t *testing.T) {
		svc := NewAnalysisService(&MockInvoker{})

		_, err := svc.GenerateReport(ctx, &ReportRequest{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("GenerateReport() error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("embeds history in order", func(t *testing.T) {
		invoker := &MockInvoker{output: "Twice a day is plenty."}
		svc := NewAnalysisService(invoker)

		reply, err := svc.Chat(ctx, &ChatRequest{
			Message: "How often should I cleanse?",
			History: []domain.ChatTurn{
				{Role: "user", Text: "I have oily skin."},
				{Role: "model", Text: "Noted."},
			},
		})
		if err != nil {
			t.Fatalf("Chat() error = %v, want nil", err)
		}
		if reply != "Twice a day is plenty." {
			t.Errorf("reply = %q", reply)
		}

		prompt := invoker.lastReq.Parts[0].Text
		oily := strings.Index(prompt, "oily skin")
		question := strings.Index(prompt, "How often should I cleanse?")
		if oily == -1 || question == -1 || oily > question {
			t.Errorf("prompt should contain history before the new message:\n%s", prompt)
		}
	})

	t.Run("rejects empty message", func(t *testing.T) {
		svc := NewAnalysisService(&MockInvoker{})

		_, err := svc.Chat(ctx, &ChatRequest{Message: "   "})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("Chat() error = %v, want ErrInvalidRequest", err)
		}
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"anonymous fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
