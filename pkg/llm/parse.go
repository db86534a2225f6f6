package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON cuts the outermost JSON object or array out of surrounding
// prose, from the first opening bracket to the last matching closer.
func extractJSON(s string) (string, error) {
	obj := strings.Index(s, "{")
	arr := strings.Index(s, "[")

	open, closer := obj, "}"
	if obj == -1 || (arr != -1 && arr < obj) {
		open, closer = arr, "]"
	}
	if open == -1 {
		return "", fmt.Errorf("no JSON value found in response")
	}
	end := strings.LastIndex(s, closer)
	if end <= open {
		return "", fmt.Errorf("no JSON value found in response")
	}
	return s[open : end+1], nil
}

// decodeLenient tries strict decoding first and falls back to the JSON value
// embedded in the reply.
func decodeLenient(reply string, decode func([]byte) error) error {
	trimmed := strings.TrimSpace(reply)
	if err := decode([]byte(trimmed)); err == nil {
		return nil
	}
	raw, err := extractJSON(trimmed)
	if err != nil {
		return err
	}
	if !json.Valid([]byte(raw)) {
		return fmt.Errorf("response does not contain valid JSON")
	}
	return decode([]byte(raw))
}
