package phonology

import "strings"

// Rule rewrites one literal symbol sequence to its display spelling.
type Rule struct {
	From string
	To   string
}

// Renderer converts phonetic strings to display spelling by applying
// its rules in order, each rule scanning the current (possibly already
// rewritten) string. Order is part of the contract: several rules feed
// each other (ɲ → "ny", then y → "ú", so ɲ ends up as "nú"), so the
// list must never be reordered or deduplicated.
type Renderer struct {
	rules []Rule
}

// NewRenderer builds a renderer over an explicit ordered rule list.
func NewRenderer(rules []Rule) *Renderer {
	return &Renderer{rules: rules}
}

// DefaultRenderer returns the engine's fixed spelling convention.
func DefaultRenderer() *Renderer {
	return NewRenderer(DefaultRules())
}

// Render applies every rule, in order, over the whole string.
// Deterministic: no randomness, plain substring replacement.
func (r *Renderer) Render(phonetic string) string {
	out := phonetic
	for _, rule := range r.rules {
		out = strings.ReplaceAll(out, rule.From, rule.To)
	}
	return out
}

// DefaultRules is the ordered spelling table. Long vowels expand to a
// doubled base letter first; the single-letter rewrites further down
// the list then respell both halves (ɔː → "ɔɔ" → "awaw").
func DefaultRules() []Rule {
	return []Rule{
		longVowel("ɔː"),
		longVowel("ɛː"),
		longVowel("ɑː"),
		{"ʃ", "sh"},
		{"ʒ", "zh"},
		{"ɲ", "ny"},
		{"ŋ", "ng"},
		longVowel("æː"),
		{"æ", "ae"},
		longVowel("øː"),
		{"ø", "oe"},
		{"ɑ", "á"},
		{"ɛ", "é"},
		{"ɔ", "aw"},
		longVowel("aː"),
		longVowel("eː"),
		longVowel("iː"),
		longVowel("oː"),
		longVowel("uː"),
		longVowel("yː"),
		{"ə", "â"},
		{"y", "ú"},
		{"ɗ", "d’"},
		{"j", "y"},
		{"ʤ", "j"},
		{"ʄ", "j’"},
		{"ʧ", "ch"},
		{"ɓ", "b’"},
		{"ɢ", "ǵ"},
		{"x", "kh"},
		{"ɣ", "gh"},
	}
}

// longVowel derives the doubled-letter rule for a long vowel from its
// base vowel.
func longVowel(sym string) Rule {
	base := strings.TrimSuffix(sym, "ː")
	return Rule{From: sym, To: base + base}
}
