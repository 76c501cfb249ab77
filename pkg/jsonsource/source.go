// Package jsonsource resolves check operands from a JSON document using
// gjson path syntax (e.g. "spec.replicas", "items.0.name", "tags.#").
package jsonsource

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Source reads File on first use and answers lookups from that copy.
type Source struct {
	File string     // path to JSON file
	FS   FileSystem // injected for testing

	doc    string
	loaded bool
}

// Lookup returns the string form of the value at path. JSON null is
// reported as "null".
func (s *Source) Lookup(path string) (string, error) {
	if err := s.load(); err != nil {
		return "", err
	}

	value := gjson.Get(s.doc, path)
	if !value.Exists() {
		return "", fmt.Errorf("key %q not found in %s", path, s.File)
	}
	if value.Type == gjson.Null {
		return "null", nil
	}
	return value.String(), nil
}

func (s *Source) load() error {
	if s.loaded {
		return nil
	}

	content, err := s.FS.ReadFile(s.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return fmt.Errorf("invalid JSON in %s", s.File)
	}

	s.doc = doc
	s.loaded = true
	return nil
}
