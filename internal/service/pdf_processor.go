package service

import (
	"context"
	"fmt"
	"strings"

	"match-pairs-api/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFProcessor extracts text with MuPDF
type PDFProcessor struct {
	logger domain.Logger
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(logger domain.Logger) *PDFProcessor {
	return &PDFProcessor{
		logger: logger,
	}
}

// Extract concatenates the text of every page of pdfBytes.
// Pages that fail to extract are logged and skipped.
func (p *PDFProcessor) Extract(ctx context.Context, pdfBytes []byte) (*domain.ExtractedText, error) {
	// Open PDF document from bytes
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	var sb strings.Builder

	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

		text, err := doc.Text(pageNum)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}
		sb.WriteString(sanitizeText(text))
	}

	return &domain.ExtractedText{
		Text:      sb.String(),
		PageCount: numPages,
	}, nil
}

// sanitizeText removes NUL and other control characters, keeping tab, newline and carriage return.
// Invalid UTF-8 is dropped.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			continue
		case r == '�':
			continue
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
