package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"match-pairs-api/internal/domain"

	"github.com/ledongthuc/pdf"
)

// PlainPDFReader extracts text with a pure Go PDF parser, for builds without cgo.
type PlainPDFReader struct {
	logger domain.Logger
}

// NewPlainPDFReader creates a new pure Go extractor
func NewPlainPDFReader(logger domain.Logger) *PlainPDFReader {
	return &PlainPDFReader{logger: logger}
}

// Extract concatenates the plain text of every page of pdfBytes.
// The parser panics on some malformed files; those panics are returned as errors.
func (p *PlainPDFReader) Extract(ctx context.Context, pdfBytes []byte) (result *domain.ExtractedText, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	var sb strings.Builder

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum, "total", numPages, "error", err)
			continue
		}
		sb.WriteString(sanitizeText(text))
	}

	return &domain.ExtractedText{
		Text:      sb.String(),
		PageCount: numPages,
	}, nil
}
