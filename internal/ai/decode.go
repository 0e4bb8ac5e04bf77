package ai

import (
	"encoding/json"
	"strings"
	"unicode"
)

// DecodeJSON unmarshals a model response into v. Providers asked for JSON
// mode still occasionally wrap the object in markdown fences or drop a quote
// from a key, so the raw text is cleaned and repaired before decoding.
func DecodeJSON(raw string, v any) error {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	text = repairJSON(text)

	return json.Unmarshal([]byte(text), v)
}

// repairJSON fixes the one malformation seen in practice: a key missing its
// opening quote, as in `{summary": "..."}`. Anything else is left for
// json.Unmarshal to reject.
func repairJSON(s string) string {
	runes := []rune(s)
	fixed := make([]rune, 0, len(runes)+8)

	i := 0
	for i < len(runes) {
		ch := runes[i]
		fixed = append(fixed, ch)
		i++

		if ch != '{' && ch != ',' {
			continue
		}

		// Skip whitespace after { or ,
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			fixed = append(fixed, runes[i])
			i++
		}

		// A key should start with a quote; a bare letter means the opening
		// quote is missing if the key name runs into `":`.
		if i >= len(runes) || !unicode.IsLetter(runes[i]) {
			continue
		}
		start := i
		for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
			i++
		}
		if i+1 < len(runes) && runes[i] == '"' && runes[i+1] == ':' {
			fixed = append(fixed, '"')
		}
		fixed = append(fixed, runes[start:i]...)
	}

	return string(fixed)
}
