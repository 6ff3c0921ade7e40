package jsonutils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reFence         = regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	reObj           = regexp.MustCompile(`(?s)\{.*\}`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// ExtractJSON tries to extract a JSON object from LLM output.
//
// Priority:
// 1. Triple-backtick fenced ```json ... ```
// 2. Any {...} JSON object
//
// It also sanitizes common LLM formatting issues like stray trailing commas
// and invisible Unicode characters.
func ExtractJSON(input string) string {
	// Remove BOMs and zero-width characters
	input = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\uFEFF' || r == '\u200B' || r == '\u200C' || r == '\u200D' {
			return -1
		}
		return r
	}, input))

	// Case 1: fenced block
	if match := reFence.FindStringSubmatch(input); len(match) > 1 {
		input = strings.TrimSpace(match[1])
	} else {
		// Case 2: raw object (greedy match from first { to last })
		if match := reObj.FindString(input); match != "" {
			input = strings.TrimSpace(match)
		}
	}

	// Remove any trailing commas before closing braces/brackets
	input = reTrailingComma.ReplaceAllString(input, "$1")

	return strings.TrimSpace(input)
}

// ToJSON serializes a Go value to an indented JSON string.
// Returns an empty string if serialization fails.
func ToJSON(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(bytes))
}
