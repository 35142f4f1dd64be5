package gemini

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/dermalens/backend/internal/domain"
)

// toGenaiParts converts domain content parts to SDK parts, preserving order
func toGenaiParts(parts []domain.Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.Image != nil {
			out = append(out, genai.ImageData(subtype(p.ImageMIME), p.Image))
		} else {
			out = append(out, genai.Text(p.Text))
		}
	}
	return out
}

// subtype strips the "image/" prefix; the SDK wants the bare format name
func subtype(mimeType string) string {
	const prefix = "image/"
	if len(mimeType) > len(prefix) && mimeType[:len(prefix)] == prefix {
		return mimeType[len(prefix):]
	}
	return mimeType
}

// toGenaiSchema converts the domain output-shape constraint to the SDK's
// schema type
func toGenaiSchema(s *domain.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGenaiType(s.Type),
		Description: s.Description,
		Nullable:    s.Nullable,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toGenaiSchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}

	return out
}

func toGenaiType(t domain.SchemaType) genai.Type {
	switch t {
	case domain.TypeObject:
		return genai.TypeObject
	case domain.TypeArray:
		return genai.TypeArray
	case domain.TypeString:
		return genai.TypeString
	case domain.TypeNumber:
		return genai.TypeNumber
	case domain.TypeInteger:
		return genai.TypeInteger
	case domain.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
