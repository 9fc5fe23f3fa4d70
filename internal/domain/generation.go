package domain

// Generation providers
const (
	ProviderGroq   = "groq"
	ProviderVertex = "vertex"
)

// PDF text extractors
const (
	ExtractorFitz  = "fitz"
	ExtractorPlain = "plain"
)

// GenerationRequest is a single system+user prompt round-trip to a completion model.
type GenerationRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}
