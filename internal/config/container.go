package config

import (
	"context"
	"fmt"
	"io"

	"match-pairs-api/internal/domain"
	"match-pairs-api/internal/infra/groq"
	"match-pairs-api/internal/infra/vertex"
	"match-pairs-api/internal/service"
	"match-pairs-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config       domain.Config
	Logger       domain.Logger
	Extractor    domain.TextExtractor
	Generator    domain.Generator
	MatchService domain.MatchService

	closers []io.Closer
}

// NewContainer creates a new dependency injection container.
// cfg is expected to have passed Validate.
func NewContainer(ctx context.Context, cfg *AppConfig) (*Container, error) {
	appLogger := logger.NewLogger(cfg.GetLogLevel())
	c := &Container{
		Config: cfg,
		Logger: appLogger,
	}

	extractor, err := newExtractor(cfg, appLogger)
	if err != nil {
		return nil, err
	}
	c.Extractor = extractor

	if err := c.initGenerator(ctx, cfg); err != nil {
		return nil, err
	}

	c.MatchService = service.NewMatchService(c.Extractor, c.Generator, appLogger)

	appLogger.Info("Container initialized",
		"provider", cfg.GetGenerationProvider(),
		"model", cfg.GetGenerationModel(),
		"extractor", cfg.GetPDFExtractor(),
	)
	return c, nil
}

func newExtractor(cfg domain.Config, log domain.Logger) (domain.TextExtractor, error) {
	switch cfg.GetPDFExtractor() {
	case domain.ExtractorFitz:
		return service.NewPDFProcessor(log), nil
	case domain.ExtractorPlain:
		return service.NewPlainPDFReader(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownExtractor, cfg.GetPDFExtractor())
	}
}

func (c *Container) initGenerator(ctx context.Context, cfg domain.Config) error {
	switch cfg.GetGenerationProvider() {
	case domain.ProviderGroq:
		c.Generator = groq.NewClient(cfg.GetGroqAPIKey(), cfg.GetGroqBaseURL(), cfg.GetGenerationModel())
	case domain.ProviderVertex:
		client, err := vertex.NewClient(ctx, cfg.GetGCPProjectID(), cfg.GetGCPLocation(), cfg.GetGenerationModel())
		if err != nil {
			return err
		}
		c.Generator = client
		c.closers = append(c.closers, client)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownProvider, cfg.GetGenerationProvider())
	}
	return nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// Close releases clients that hold connections
func (c *Container) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
