package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"match-pairs-api/internal/domain"
	apperrors "match-pairs-api/pkg/errors"
)

const (
	msgInvalidFileType = "Invalid file type. Please upload a PDF file."
	msgNoTextExtracted = "No text could be extracted from the PDF. The file might be empty or contain only images."

	replyPreviewChars = 200
)

type MatchService struct {
	extractor domain.TextExtractor
	generator domain.Generator
	logger    domain.Logger
}

func NewMatchService(
	extractor domain.TextExtractor,
	generator domain.Generator,
	logger domain.Logger,
) *MatchService {
	return &MatchService{
		extractor: extractor,
		generator: generator,
		logger:    logger,
	}
}

// GenerateMatches runs the upload through extraction, generation and reply validation.
// Every returned error is an *apperrors.AppError.
func (s *MatchService) GenerateMatches(ctx context.Context, upload domain.Upload) (*domain.MatchPairsResponse, error) {
	if !hasPDFExtension(upload.Filename) {
		s.logger.Warn("Rejected upload with non-PDF name", "filename", upload.Filename)
		return nil, apperrors.NewInvalidInputError(msgInvalidFileType)
	}

	s.logger.Info("Processing PDF", "filename", upload.Filename)

	pdfBytes, err := io.ReadAll(upload.Body)
	if err != nil {
		s.logger.Error("Failed to read upload", err, "filename", upload.Filename)
		return nil, apperrors.NewUnexpectedError(err)
	}
	s.logger.Info("PDF read", "filename", upload.Filename, "size_bytes", len(pdfBytes))

	extracted, err := s.extractor.Extract(ctx, pdfBytes)
	if err != nil {
		s.logger.Error("Failed to extract text from PDF", err, "filename", upload.Filename)
		return nil, apperrors.NewUnexpectedError(err)
	}
	if strings.TrimSpace(extracted.Text) == "" {
		s.logger.Warn("PDF contained no text", "filename", upload.Filename, "pages", extracted.PageCount)
		return nil, apperrors.NewInvalidInputError(msgNoTextExtracted)
	}
	s.logger.Info("Extracted text from PDF",
		"chars", utf8.RuneCountInString(extracted.Text),
		"pages", extracted.PageCount,
	)

	reply, err := s.generator.Generate(ctx, buildGenerationRequest(extracted.Text))
	if err != nil {
		s.logger.Error("Generation request failed", err)
		return nil, apperrors.NewUnexpectedError(fmt.Errorf("generation failed: %w", err))
	}
	s.logger.Info("Received generation reply",
		"length", len(reply),
		"preview", preview(reply, replyPreviewChars),
	)

	parsed, err := parseReply(cleanReply(reply))
	if err != nil {
		s.logger.Error("Generation reply rejected", err)
		return nil, err
	}
	if parsed.Received > domain.MaxMatchPairs {
		s.logger.Warn("Model returned more pairs than requested",
			"received", parsed.Received,
			"kept", domain.MaxMatchPairs,
		)
	}
	if parsed.Discarded > 0 {
		s.logger.Warn("Discarded malformed pairs", "discarded", parsed.Discarded)
	}

	s.logger.Info("Generated matching pairs", "pairs", len(parsed.Pairs))
	return &domain.MatchPairsResponse{Pairs: parsed.Pairs}, nil
}

func hasPDFExtension(filename string) bool {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	return strings.HasSuffix(strings.ToLower(name), ".pdf") && len(name) > len(".pdf")
}
