package service

import (
	"encoding/json"
	"strings"

	"match-pairs-api/internal/domain"
	apperrors "match-pairs-api/pkg/errors"
)

const codeFence = "```"

// cleanReply trims the raw model reply and, when it opens with a code fence, keeps only the
// fenced body without its language tag. It is a narrow heuristic for the common
// "```json ... ```" wrapping, not a markdown parser.
func cleanReply(raw string) string {
	reply := strings.TrimSpace(raw)
	if !strings.HasPrefix(reply, codeFence) {
		return reply
	}

	body := strings.TrimPrefix(reply, codeFence)
	if end := strings.Index(body, codeFence); end >= 0 {
		body = body[:end]
	}

	// A language tag is the remainder of the opening fence line, e.g. "json".
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && isLanguageTag(body[:nl]) {
		body = body[nl+1:]
	} else if nl < 0 && strings.HasPrefix(strings.ToLower(body), "json") {
		body = body[len("json"):]
	}

	return strings.TrimSpace(body)
}

func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	for _, r := range s {
		isWord := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '+'
		if !isWord {
			return false
		}
	}
	return true
}

// replyParse is the outcome of parseReply, kept for logging.
type replyParse struct {
	Pairs     []domain.MatchPair
	Received  int
	Discarded int
}

// parseReply decodes a cleaned reply into at most domain.MaxMatchPairs valid pairs.
// Entries that are not objects with non-blank string term and definition are discarded;
// the request only fails when none survive.
func parseReply(cleaned string) (*replyParse, error) {
	var payload interface{}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, apperrors.NewUpstreamFormatError(err)
	}

	items, ok := payload.([]interface{})
	if !ok {
		return nil, apperrors.NewUpstreamValidationError("Response is not a JSON array")
	}
	if len(items) == 0 {
		return nil, apperrors.NewUpstreamValidationError("No matching pairs generated")
	}

	result := &replyParse{Received: len(items)}
	if len(items) > domain.MaxMatchPairs {
		items = items[:domain.MaxMatchPairs]
	}

	pairs := make([]domain.MatchPair, 0, len(items))
	for _, item := range items {
		pair, ok := toMatchPair(item)
		if !ok {
			result.Discarded++
			continue
		}
		pairs = append(pairs, pair)
	}

	if len(pairs) == 0 {
		return nil, apperrors.NewUpstreamValidationError("No valid matching pairs found in response")
	}
	if len(pairs) > domain.MaxMatchPairs {
		pairs = pairs[:domain.MaxMatchPairs]
	}

	result.Pairs = pairs
	return result, nil
}

func toMatchPair(item interface{}) (domain.MatchPair, bool) {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return domain.MatchPair{}, false
	}
	term, ok := obj["term"].(string)
	if !ok {
		return domain.MatchPair{}, false
	}
	definition, ok := obj["definition"].(string)
	if !ok {
		return domain.MatchPair{}, false
	}

	pair := domain.MatchPair{
		Term:       strings.TrimSpace(term),
		Definition: strings.TrimSpace(definition),
	}
	if err := pair.Validate(); err != nil {
		return domain.MatchPair{}, false
	}
	return pair, true
}
