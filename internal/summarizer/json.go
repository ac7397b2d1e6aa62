package summarizer

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrResponseFormat means the model reply held no parseable JSON object.
var ErrResponseFormat = errors.New("summarizer: response is not a JSON object")

// ExtractJSONBlock returns the first balanced {...} block in text.
// Braces inside string literals are ignored.
func ExtractJSONBlock(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	if start < 0 {
		return "", fmt.Errorf("%w: no object found", ErrResponseFormat)
	}
	return "", fmt.Errorf("%w: unbalanced braces", ErrResponseFormat)
}

func decodeReply(reply string, v any) error {
	block, err := ExtractJSONBlock(reply)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(block), v); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseFormat, err)
	}
	return nil
}
