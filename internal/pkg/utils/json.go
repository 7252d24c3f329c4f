package utils

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ValidateSingleJSONValue rejects input that is not exactly one JSON value,
// such as a document followed by trailing bytes.
func ValidateSingleJSONValue(raw []byte) error {
	if !json.Valid(raw) {
		return errors.New("body must contain a single valid JSON value")
	}
	return nil
}

// ValidateUniqueKeys rejects a top-level JSON object that repeats a key.
// Decoding into a map or struct would otherwise keep only the last value.
// Input that is not an object is left for the decoder to reject.
func ValidateUniqueKeys(raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil
	}

	seen := make(map[string]bool)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", token)
		}
		if seen[key] {
			return fmt.Errorf("key %q is defined more than once", key)
		}
		seen[key] = true

		if err := skipJSONValue(decoder); err != nil {
			return err
		}
	}
	return nil
}

func skipJSONValue(decoder *json.Decoder) error {
	depth := 0
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		if delim, ok := token.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
