package service

import (
	"fmt"

	"match-pairs-api/internal/domain"
)

const (
	// maxPromptChars bounds token usage; the cut is not sentence-aware.
	maxPromptChars = 4000

	generationTemperature = 0.7
	generationMaxTokens   = 2000
)

const matchSystemPrompt = `You are an expert educational content creator specializing in creating "match the following" quiz questions.

Your task is to analyze the provided text and generate exactly 5 high-quality matching pairs that test understanding of key concepts.

CRITICAL INSTRUCTIONS:
1. You MUST respond with ONLY a valid JSON array
2. Do NOT include any explanatory text, markdown formatting, or code blocks
3. The JSON array must contain exactly 5 objects
4. Each object must have exactly two keys: "term" and "definition"
5. Terms should be concise (1-5 words)
6. Definitions should be clear and specific (5-20 words)
7. Ensure the pairs test different concepts from the text
8. Make sure terms and definitions are distinct enough to avoid ambiguity

Example of the EXACT format required:
[{"term": "Photosynthesis", "definition": "Process by which plants convert light energy into chemical energy"}, {"term": "Mitochondria", "definition": "Organelle responsible for cellular respiration and ATP production"}]

Remember: Respond with ONLY the JSON array, nothing else.`

// buildGenerationRequest embeds the first maxPromptChars characters of text in the fixed prompt.
func buildGenerationRequest(text string) domain.GenerationRequest {
	return domain.GenerationRequest{
		SystemPrompt: matchSystemPrompt,
		UserPrompt: fmt.Sprintf("Generate %d match-the-following pairs from this text:\n\n%s",
			domain.MaxMatchPairs, truncateRunes(text, maxPromptChars)),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	}
}

// truncateRunes returns the first n characters of s, counting runes rather than bytes.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// preview shortens s for log output.
func preview(s string, n int) string {
	if t := truncateRunes(s, n); len(t) < len(s) {
		return t + "..."
	}
	return s
}
