package handler

import (
	"errors"
	"fmt"
	"net/http"

	"match-pairs-api/internal/domain"
	apperrors "match-pairs-api/pkg/errors"
)

const (
	rootMessage = "Match the Following API - Upload a PDF to generate matching pairs"

	// multipartMemory is how much of the upload is held in memory before spilling to disk
	multipartMemory = 32 << 20
)

type MatchHandler struct {
	matchService domain.MatchService
	logger       domain.Logger
	maxFileSize  int64
}

func NewMatchHandler(matchService domain.MatchService, logger domain.Logger, maxFileSize int64) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		logger:       logger,
		maxFileSize:  maxFileSize,
	}
}

// Root handles GET /
func (h *MatchHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

// Health handles GET /health
func (h *MatchHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "match-pairs-api"})
}

// GenerateMatches handles POST /api/generate-matches
func (h *MatchHandler) GenerateMatches(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("Upload rejected, body too large", "limit", h.maxFileSize)
			writeAppError(w, apperrors.NewInvalidInputError(
				fmt.Sprintf("File too large. Maximum upload size is %d bytes.", h.maxFileSize)))
			return
		}
		h.logger.Warn("Upload rejected, no file field", "error", err)
		writeAppError(w, apperrors.NewInvalidInputError("No file uploaded. Send the PDF in the 'file' form field."))
		return
	}
	defer file.Close()

	resp, err := h.matchService.GenerateMatches(r.Context(), domain.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
