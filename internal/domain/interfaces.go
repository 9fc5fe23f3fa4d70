package domain

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/domain/mock_interfaces.go -package=mock_domain

// MatchService turns an uploaded PDF into quiz pairs
type MatchService interface {
	GenerateMatches(ctx context.Context, upload Upload) (*MatchPairsResponse, error)
}

// TextExtractor pulls plain text out of a PDF held in memory
type TextExtractor interface {
	Extract(ctx context.Context, pdf []byte) (*ExtractedText, error)
}

// Generator sends a prompt to a completion model and returns its raw reply
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGenerationProvider() string
	GetGenerationModel() string
	GetGroqAPIKey() string
	GetGroqBaseURL() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetPDFExtractor() string
}
