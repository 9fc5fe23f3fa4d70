package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"match-pairs-api/internal/domain"

	"resty.dev/v3"
)

const generateMatchesPath = "/api/generate-matches"

// errConnect means the server could not be reached at all
var errConnect = errors.New("could not connect")

// statusError is a non-2xx reply from the server
type statusError struct {
	StatusCode int
	Detail     string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Detail)
}

type errorBody struct {
	Detail string `json:"detail"`
}

type matchClient struct {
	httpClient *resty.Client
}

func newMatchClient(baseURL string, timeout time.Duration) *matchClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)

	return &matchClient{httpClient: client}
}

func (c *matchClient) Close() error {
	return c.httpClient.Close()
}

// GenerateMatches uploads the PDF at path as the "file" form field.
func (c *matchClient) GenerateMatches(ctx context.Context, path string) (*domain.MatchPairsResponse, error) {
	result := &domain.MatchPairsResponse{}
	failure := &errorBody{}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetFile("file", path).
		SetResult(result).
		SetError(failure).
		Post(generateMatchesPath)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			return nil, fmt.Errorf("%w: %v", errConnect, err)
		}
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	if response.IsError() {
		detail := failure.Detail
		if detail == "" {
			detail = response.String()
		}
		return nil, &statusError{StatusCode: response.StatusCode(), Detail: detail}
	}

	return result, nil
}
