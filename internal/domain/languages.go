package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LanguageBytes is one entry of a repository's language breakdown.
type LanguageBytes struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

// LanguageBreakdown is a repository's language breakdown in the order the API returned it.
type LanguageBreakdown []LanguageBytes

// UnmarshalJSON decodes a {"Go": 123, ...} object while keeping the key order,
// so that ranking ties can fall back to first-seen order.
func (lb *LanguageBreakdown) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*lb = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("language breakdown: expected object, got %v", tok)
	}

	out := LanguageBreakdown{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("language breakdown: unexpected key %v", keyTok)
		}
		var n int64
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("language breakdown: value for %q: %w", name, err)
		}
		out = append(out, LanguageBytes{Name: name, Bytes: n})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*lb = out
	return nil
}

// LanguageResult is the outcome of fetching one repository's breakdown.
// A non-nil Err means the repository contributes no languages.
type LanguageResult struct {
	Repository string
	Languages  LanguageBreakdown
	Err        error
}

// LanguageStat is a language's byte count summed over all repositories.
type LanguageStat struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}
