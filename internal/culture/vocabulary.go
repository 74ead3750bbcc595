// Package culture composes structured names for fictional cultures by
// slot-filling per-culture recipes from vocabulary pools, with caller
// overrides and culture-specific joining rules.
package culture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Vocabulary is one culture's name-fragment pools keyed by slot name,
// e.g. {"titles": [...], "traits": [...], "events": [...]}.
// Read-only after load.
type Vocabulary map[string][]string

// Pool returns the named pool, or nil if the culture has none.
func (v Vocabulary) Pool(key string) []string {
	return v[key]
}

// LoadAll reads every <culture>.json file under dir into a culture →
// vocabulary map. The directory is created if missing (a fresh run has
// no data yet). A file that fails to parse aborts the whole load:
// generating against a partially loaded culture silently produces
// wrong names, so malformed data is fatal.
func LoadAll(dir string) (map[string]Vocabulary, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	vocabs := make(map[string]Vocabulary)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read vocabulary %s: %w", name, err)
		}

		var vocab Vocabulary
		if err := json.Unmarshal(data, &vocab); err != nil {
			return nil, fmt.Errorf("parse vocabulary %s: %w", name, err)
		}

		vocabs[cultureName(name)] = vocab
	}

	return vocabs, nil
}

// cultureName derives the culture identifier from a vocabulary file
// name: the stem with its first letter uppercased, the rest untouched
// ("driftersSky.json" → "DriftersSky").
func cultureName(file string) string {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	runes := []rune(stem)
	if len(runes) == 0 {
		return stem
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
