package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"match-pairs-api/internal/domain"
	mock_domain "match-pairs-api/internal/mocks/domain"
	apperrors "match-pairs-api/pkg/errors"
	"match-pairs-api/pkg/logger"
)

func pdfUpload(name string) domain.Upload {
	body := []byte("%PDF-1.4 fake")
	return domain.Upload{Filename: name, Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func pairsJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"term": "Term %d", "definition": "Definition number %d"}`, i+1, i+1)
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func TestMatchService_GenerateMatches(t *testing.T) {
	const text = "Photosynthesis converts light energy into chemical energy in plants."

	tests := []struct {
		name       string
		upload     domain.Upload
		setup      func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator)
		want       []domain.MatchPair
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "non-PDF filename is rejected before extraction",
			upload:     domain.Upload{Filename: "notes.txt", Body: strings.NewReader("hello")},
			setup:      func(*mock_domain.MockTextExtractor, *mock_domain.MockGenerator) {},
			wantStatus: 400,
			wantMsg:    "Invalid file type. Please upload a PDF file.",
		},
		{
			name:   "whitespace-only text is rejected before generation",
			upload: pdfUpload("scan.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, _ *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: " \n\t ", PageCount: 3}, nil)
			},
			wantStatus: 400,
			wantMsg:    "No text could be extracted from the PDF. The file might be empty or contain only images.",
		},
		{
			name:   "single pair",
			upload: pdfUpload("biology.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(`[{"term":"Photosynthesis","definition":"Process converting light to chemical energy"}]`, nil)
			},
			want: []domain.MatchPair{
				{Term: "Photosynthesis", Definition: "Process converting light to chemical energy"},
			},
		},
		{
			name:   "fenced reply is unwrapped",
			upload: pdfUpload("Biology.PDF"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("```json\n"+pairsJSON(5)+"\n```", nil)
			},
			want: []domain.MatchPair{
				{Term: "Term 1", Definition: "Definition number 1"},
				{Term: "Term 2", Definition: "Definition number 2"},
				{Term: "Term 3", Definition: "Definition number 3"},
				{Term: "Term 4", Definition: "Definition number 4"},
				{Term: "Term 5", Definition: "Definition number 5"},
			},
		},
		{
			name:   "extra pairs are dropped",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(pairsJSON(7), nil)
			},
			want: []domain.MatchPair{
				{Term: "Term 1", Definition: "Definition number 1"},
				{Term: "Term 2", Definition: "Definition number 2"},
				{Term: "Term 3", Definition: "Definition number 3"},
				{Term: "Term 4", Definition: "Definition number 4"},
				{Term: "Term 5", Definition: "Definition number 5"},
			},
		},
		{
			name:   "malformed entries are discarded",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`[
					{"term": "A", "definition": "Alpha"},
					{"term": "B"},
					"loose string",
					{"term": 3, "definition": "Three"},
					{"term": "  ", "definition": "Blank term"},
					{"term": " C ", "definition": " Gamma "}
				]`, nil)
			},
			want: []domain.MatchPair{
				{Term: "A", Definition: "Alpha"},
			},
		},
		{
			name:   "no valid entries",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(`[{"term": "A"}, {"definition": "B"}]`, nil)
			},
			wantStatus: 500,
			wantMsg:    "Invalid response format from AI: No valid matching pairs found in response",
		},
		{
			name:   "empty array",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`[]`, nil)
			},
			wantStatus: 500,
			wantMsg:    "Invalid response format from AI: No matching pairs generated",
		},
		{
			name:   "object instead of array",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(`{"term": "A", "definition": "B"}`, nil)
			},
			wantStatus: 500,
			wantMsg:    "Invalid response format from AI: Response is not a JSON array",
		},
		{
			name:   "prose reply",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("Here are your pairs: none", nil)
			},
			wantStatus: 500,
			wantMsg:    "Failed to parse AI response as JSON. Error: ",
		},
		{
			name:   "generation failure",
			upload: pdfUpload("chapter.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, generator *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(&domain.ExtractedText{Text: text, PageCount: 1}, nil)
				generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("401 invalid api key"))
			},
			wantStatus: 500,
			wantMsg:    "An error occurred while processing the PDF: ",
		},
		{
			name:   "unreadable PDF",
			upload: pdfUpload("broken.pdf"),
			setup: func(extractor *mock_domain.MockTextExtractor, _ *mock_domain.MockGenerator) {
				extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("failed to open PDF: no trailer"))
			},
			wantStatus: 500,
			wantMsg:    "An error occurred while processing the PDF: failed to open PDF: no trailer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			extractor := mock_domain.NewMockTextExtractor(ctrl)
			generator := mock_domain.NewMockGenerator(ctrl)
			tt.setup(extractor, generator)

			svc := NewMatchService(extractor, generator, logger.NewLoggerWithOutput("debug", io.Discard))
			got, err := svc.GenerateMatches(context.Background(), tt.upload)

			if tt.wantStatus != 0 {
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok, "expected AppError, got %T", err)
				assert.Equal(t, tt.wantStatus, appErr.StatusCode)
				assert.True(t, strings.HasPrefix(appErr.Message, tt.wantMsg), "message %q", appErr.Message)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Pairs)
		})
	}
}

func TestMatchService_GenerateMatches_Prompt(t *testing.T) {
	longText := strings.Repeat("é", maxPromptChars+500)

	ctrl := gomock.NewController(t)
	extractor := mock_domain.NewMockTextExtractor(ctrl)
	generator := mock_domain.NewMockGenerator(ctrl)

	upload := pdfUpload("long.pdf")
	extractor.EXPECT().Extract(gomock.Any(), []byte("%PDF-1.4 fake")).
		Return(&domain.ExtractedText{Text: longText, PageCount: 12}, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.GenerationRequest) (string, error) {
			assert.Equal(t, matchSystemPrompt, req.SystemPrompt)
			assert.Equal(t, 0.7, req.Temperature)
			assert.Equal(t, 2000, req.MaxTokens)

			prefix := "Generate 5 match-the-following pairs from this text:\n\n"
			require.True(t, strings.HasPrefix(req.UserPrompt, prefix))
			assert.Equal(t, strings.Repeat("é", maxPromptChars), strings.TrimPrefix(req.UserPrompt, prefix))
			return pairsJSON(5), nil
		})

	svc := NewMatchService(extractor, generator, logger.NewLoggerWithOutput("error", io.Discard))
	got, err := svc.GenerateMatches(context.Background(), upload)
	require.NoError(t, err)
	assert.Len(t, got.Pairs, 5)
}

func TestHasPDFExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"lecture.pdf", true},
		{"LECTURE.PDF", true},
		{"dir/sub/notes.Pdf", true},
		{`C:\Users\me\notes.pdf`, true},
		{"notes.pdf.exe", false},
		{"notes.txt", false},
		{".pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasPDFExtension(tt.name); got != tt.want {
			t.Fatalf("hasPDFExtension(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
