package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-pairs-api/internal/domain"
)

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o600))
	return path
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Setenv("MATCH_API_URL", "")
	cmd := newRootCommand()

	assert.Equal(t, "matchclient <pdf-file>", cmd.Use)
	assert.Equal(t, defaultBaseURL, cmd.Flags().Lookup("base-url").DefValue)
	assert.Equal(t, defaultOutput, cmd.Flags().Lookup("output").DefValue)
}

func TestNewRootCommand_BaseURLFromEnv(t *testing.T) {
	t.Setenv("MATCH_API_URL", "http://quiz.internal:9000")
	cmd := newRootCommand()

	assert.Equal(t, "http://quiz.internal:9000", cmd.Flags().Lookup("base-url").DefValue)
}

func TestRoot_Success(t *testing.T) {
	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generateMatchesPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		_, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			gotFilename = header.Filename
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.MatchPairsResponse{Pairs: []domain.MatchPair{
			{Term: "Photosynthèse", Definition: "Conversion de la lumière en énergie chimique"},
			{Term: "Mitochondria", Definition: "Organelle producing <ATP> & heat"},
		}})
	}))
	defer srv.Close()

	output := filepath.Join(t.TempDir(), "pairs.json")
	out, err := executeRoot(t, writeTempPDF(t), "--base-url", srv.URL, "--output", output)
	require.NoError(t, err, out)

	assert.Equal(t, "lecture.pdf", gotFilename)
	assert.Contains(t, out, "Generated 2 matching pairs")
	assert.Contains(t, out, "1. Term: Photosynthèse")
	assert.Contains(t, out, "   Definition: Conversion de la lumière en énergie chimique")
	assert.Contains(t, out, "2. Term: Mitochondria")
	assert.Contains(t, out, "Results saved to "+output)

	saved, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "\"term\": \"Photosynthèse\"")
	assert.Contains(t, string(saved), "<ATP> & heat")

	var decoded domain.MatchPairsResponse
	require.NoError(t, json.Unmarshal(saved, &decoded))
	assert.Len(t, decoded.Pairs, 2)
}

func TestRoot_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Invalid file type. Please upload a PDF file."}`))
	}))
	defer srv.Close()

	output := filepath.Join(t.TempDir(), "pairs.json")
	out, err := executeRoot(t, writeTempPDF(t), "--base-url", srv.URL, "--output", output)
	require.Error(t, err)

	assert.Contains(t, out, "✗ Error: 400")
	assert.Contains(t, out, "Detail: Invalid file type. Please upload a PDF file.")
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output file expected on failure")
}

func TestRoot_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.pdf")
	out, err := executeRoot(t, missing)
	require.Error(t, err)

	assert.Contains(t, out, "✗ Error: PDF file not found at "+missing)
}

func TestRoot_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	out, err := executeRoot(t, writeTempPDF(t), "--base-url", baseURL, "--output", filepath.Join(t.TempDir(), "x.json"))
	require.Error(t, err)

	assert.Contains(t, out, "✗ Error: Could not connect to "+baseURL)
	assert.Contains(t, out, "Make sure the API server is running")
}

func TestRoot_RequiresOneArgument(t *testing.T) {
	_, err := executeRoot(t)
	assert.Error(t, err)
}
