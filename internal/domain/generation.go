package domain

// Part is one element of a generation request: either text or inline image
// data tagged with a mime type. A part is an image part when Image is non-nil.
type Part struct {
	Text      string
	Image     []byte
	ImageMIME string
}

// TextPart builds a text content part
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart builds an inline image content part
func ImagePart(mimeType string, data []byte) Part {
	return Part{Image: data, ImageMIME: mimeType}
}

// GenerationRequest bundles the content parts and the optional output-shape
// constraint for one generative model call. Constructed per call; never persisted.
type GenerationRequest struct {
	Parts  []Part
	Schema *Schema // nil for free-text endpoints (report, chat)
}

// SchemaType enumerates the JSON value kinds a Schema can require
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
)

// Schema describes the exact required shape of the model's JSON output:
// nested objects/arrays of primitives, with a per-object required field list
// and an optional nullability flag. Provider-agnostic; the gemini package
// maps it to the SDK's schema type.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	Nullable    bool
	Enum        []string
}
