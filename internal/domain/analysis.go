package domain

// ImageInput is one client-supplied photo, decoded from its transport encoding
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// Profile carries optional user context forwarded into prompts
type Profile struct {
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	SkinType string `json:"skinType,omitempty"` // self-reported; the model may disagree
}

// Concern is a single issue the model detected in the submitted photos
type Concern struct {
	Name        string  `json:"name"`
	Severity    string  `json:"severity"` // "low", "moderate", "high"
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// SkinAnalysis is the structured result of a photo analysis call
type SkinAnalysis struct {
	SkinType     string    `json:"skinType"`
	OverallScore float64   `json:"overallScore"` // 0-100
	Concerns     []Concern `json:"concerns"`
	Summary      string    `json:"summary"`
}

// ChatTurn is one prior exchange in a chat conversation
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// RecommendationRequest carries the analysis context a client submits when
// asking for purchasable product recommendations
type RecommendationRequest struct {
	Analysis *SkinAnalysis `json:"analysis"`
	Goals    []string      `json:"goals,omitempty"`
	Profile  *Profile      `json:"profile,omitempty"`
}
