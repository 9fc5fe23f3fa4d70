// Command matchclient uploads a PDF to the match pairs API and saves the generated pairs.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"match-pairs-api/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultOutput  = "generated_matches.json"
	requestTimeout = 2 * time.Minute
)

type options struct {
	baseURL string
	output  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}

	command := &cobra.Command{
		Use:           "matchclient <pdf-file>",
		Short:         "Upload a PDF and print the generated match-the-following pairs",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := run(cmd.Context(), out, opts, args[0]); err != nil {
				printFailure(out, opts.baseURL, err)
				return err
			}
			return nil
		},
	}

	baseURL := os.Getenv("MATCH_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	command.Flags().StringVar(&opts.baseURL, "base-url", baseURL, "API base URL (env MATCH_API_URL)")
	command.Flags().StringVarP(&opts.output, "output", "o", defaultOutput, "file to write the generated pairs to")

	return command
}

func run(ctx context.Context, out io.Writer, opts options, pdfPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	info, err := os.Stat(pdfPath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("PDF file not found at %s", pdfPath)
	}

	fmt.Fprintln(out, "Testing Match the Following API")
	fmt.Fprintf(out, "Uploading %s (%d bytes) to %s%s...\n", pdfPath, info.Size(), opts.baseURL, generateMatchesPath)

	client := newMatchClient(opts.baseURL, requestTimeout)
	defer client.Close()

	resp, err := client.GenerateMatches(ctx, pdfPath)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "✓ Success! Generated %d matching pairs:\n\n", len(resp.Pairs))
	printPairs(out, resp.Pairs)

	if err := writeResults(opts.output, resp); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	color.New(color.FgGreen).Fprintf(out, "\n✓ Results saved to %s\n", opts.output)
	return nil
}

func printPairs(out io.Writer, pairs []domain.MatchPair) {
	bold := color.New(color.Bold)
	for i, pair := range pairs {
		bold.Fprintf(out, "%d. Term: %s\n", i+1, pair.Term)
		fmt.Fprintf(out, "   Definition: %s\n\n", pair.Definition)
	}
}

// writeResults stores resp as indented JSON, keeping non-ASCII text unescaped
func writeResults(path string, resp *domain.MatchPairsResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func printFailure(out io.Writer, baseURL string, err error) {
	red := color.New(color.FgRed)

	var statusErr *statusError
	switch {
	case errors.Is(err, errConnect):
		red.Fprintf(out, "✗ Error: Could not connect to %s\n", baseURL)
		fmt.Fprintln(out, "Make sure the API server is running: go run ./cmd/server")
	case errors.As(err, &statusErr):
		red.Fprintf(out, "✗ Error: %d\n", statusErr.StatusCode)
		fmt.Fprintf(out, "Detail: %s\n", statusErr.Detail)
	default:
		red.Fprintf(out, "✗ Error: %v\n", err)
	}
}
