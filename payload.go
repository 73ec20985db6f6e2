package siteaudit

import (
	"encoding/json"
	"strings"
)

// ExtractPayload returns the first balanced {...} block in s. Generation
// collaborators wrap structured output in prose, markdown fences, or
// labels; this strips all of it. Returns EUNPROCESSABLE when no balanced
// block exists.
func ExtractPayload(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", Errorf(EUNPROCESSABLE, "no structured payload in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
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
				return s[start : i+1], nil
			}
		}
	}
	return "", Errorf(EUNPROCESSABLE, "unbalanced structured payload in response")
}

// DecodePayload extracts the first balanced {...} block from s and
// unmarshals it into v. Malformed JSON inside the block is also reported
// as EUNPROCESSABLE so callers can treat every parse failure uniformly.
func DecodePayload(s string, v any) error {
	payload, err := ExtractPayload(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return Errorf(EUNPROCESSABLE, "malformed structured payload: %v", err)
	}
	return nil
}
