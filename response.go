package goident

import (
	"encoding/json"
	"strings"
)

// ExtractObject returns the first well-formed brace-delimited object
// substring of raw oracle output. Oracles routinely wrap the mapping in
// commentary; only the first balanced {...} region is considered. Braces
// inside JSON strings are ignored while scanning.
func ExtractObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
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
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}

// ParseTranslations decodes raw oracle output into a phrase-to-translation
// mapping. Returns a MalformedResponseError when no balanced object is
// present or the object does not decode to a flat string mapping.
func ParseTranslations(raw string) (map[string]string, error) {
	obj, ok := ExtractObject(raw)
	if !ok {
		return nil, &MalformedResponseError{Output: raw}
	}

	var translations map[string]string
	if err := json.Unmarshal([]byte(obj), &translations); err != nil {
		return nil, &MalformedResponseError{Output: raw, Cause: err}
	}
	return translations, nil
}
