package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"match-pairs-api/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

const (
	defaultServerPort  = "8000"
	defaultMaxFileSize = 50 * 1024 * 1024 // 50MB
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultVertexModel = "gemini-2.0-flash-001"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string `env:"PORT" validate:"required,numeric"`
	MaxFileSize        int64  `env:"MAX_FILE_SIZE" validate:"gt=0"`
	LogLevel           string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	GenerationProvider string `env:"GENERATION_PROVIDER" validate:"oneof=groq vertex"`
	GenerationModel    string `env:"GENERATION_MODEL" validate:"required"`
	GroqAPIKey         string `env:"GROQ_API_KEY" validate:"required_if=GenerationProvider groq"`
	GroqBaseURL        string `env:"GROQ_BASE_URL" validate:"omitempty,url"`
	GCPProjectID       string `env:"GCP_PROJECT_ID" validate:"required_if=GenerationProvider vertex"`
	GCPLocation        string `env:"GCP_LOCATION"`
	PDFExtractor       string `env:"PDF_EXTRACTOR" validate:"oneof=fitz plain"`
}

// NewConfig creates a new configuration instance from the environment with default values
func NewConfig() *AppConfig {
	v := viper.New()

	v.SetDefault("server_port", defaultServerPort)
	v.SetDefault("max_file_size", defaultMaxFileSize)
	v.SetDefault("log_level", "info")
	v.SetDefault("generation_provider", domain.ProviderGroq)
	v.SetDefault("groq_base_url", defaultGroqBaseURL)
	v.SetDefault("gcp_location", "us-central1")
	v.SetDefault("pdf_extractor", domain.ExtractorFitz)

	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	_ = v.BindEnv("server_port", "PORT", "SERVER_PORT")
	_ = v.BindEnv("max_file_size", "MAX_FILE_SIZE")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("generation_provider", "GENERATION_PROVIDER")
	_ = v.BindEnv("generation_model", "GENERATION_MODEL")
	_ = v.BindEnv("groq_api_key", "GROQ_API_KEY")
	_ = v.BindEnv("groq_base_url", "GROQ_BASE_URL")
	_ = v.BindEnv("gcp_project_id", "GCP_PROJECT_ID")
	_ = v.BindEnv("gcp_location", "GCP_LOCATION")
	_ = v.BindEnv("pdf_extractor", "PDF_EXTRACTOR")

	cfg := &AppConfig{
		ServerPort:         strings.TrimSpace(v.GetString("server_port")),
		MaxFileSize:        parseInt64OrDefault(v.GetString("max_file_size"), defaultMaxFileSize),
		LogLevel:           strings.ToLower(v.GetString("log_level")),
		GenerationProvider: strings.ToLower(strings.TrimSpace(v.GetString("generation_provider"))),
		GenerationModel:    strings.TrimSpace(v.GetString("generation_model")),
		GroqAPIKey:         strings.TrimSpace(v.GetString("groq_api_key")),
		GroqBaseURL:        strings.TrimSpace(v.GetString("groq_base_url")),
		GCPProjectID:       strings.TrimSpace(v.GetString("gcp_project_id")),
		GCPLocation:        strings.TrimSpace(v.GetString("gcp_location")),
		PDFExtractor:       strings.ToLower(strings.TrimSpace(v.GetString("pdf_extractor"))),
	}

	if cfg.GenerationModel == "" {
		cfg.GenerationModel = defaultModelFor(cfg.GenerationProvider)
	}

	return cfg
}

// Validate checks the configuration and returns every problem found, joined.
// Each problem is a *domain.ValidationError named after its environment variable.
func (c *AppConfig) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	problems := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, &domain.ValidationError{Message: fe.Translate(trans)})
	}
	return errors.Join(problems...)
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("env")
		if name == "" {
			return fld.Name
		}
		return name
	})

	return validate, trans, nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum accepted request body size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGenerationProvider returns the generation backend name (groq or vertex)
func (c *AppConfig) GetGenerationProvider() string {
	return c.GenerationProvider
}

// GetGenerationModel returns the model identifier sent to the provider
func (c *AppConfig) GetGenerationModel() string {
	return c.GenerationModel
}

// GetGroqAPIKey returns the Groq API key
func (c *AppConfig) GetGroqAPIKey() string {
	return c.GroqAPIKey
}

// GetGroqBaseURL returns the OpenAI-compatible endpoint for Groq
func (c *AppConfig) GetGroqBaseURL() string {
	return c.GroqBaseURL
}

// GetGCPProjectID returns the Google Cloud project used for Vertex AI
func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

// GetGCPLocation returns the Vertex AI region
func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

// GetPDFExtractor returns the text extractor name (fitz or plain)
func (c *AppConfig) GetPDFExtractor() string {
	return c.PDFExtractor
}

func defaultModelFor(provider string) string {
	if provider == domain.ProviderVertex {
		return defaultVertexModel
	}
	return defaultGroqModel
}

func parseInt64OrDefault(value string, defaultValue int64) int64 {
	if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil && intValue > 0 {
		return intValue
	}
	return defaultValue
}
