package phonology

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// WalkConfig bounds a constrained walk over a transition model.
type WalkConfig struct {
	// Order is the context window length consulted during the walk.
	Order int
	// MinLength and MaxLength bound the accepted word length in runes,
	// measured before orthography rendering.
	MinLength int
	MaxLength int
	// VowelStartProb is the percent chance an attempt seeds its first
	// symbol with a random vowel instead of starting from the model.
	VowelStartProb int
	// VowelEndProb is the percent chance a vowel-final word is allowed
	// to stop when the end sentinel is sampled. Consonant-final words
	// always stop.
	VowelEndProb int
	// MaxAttempts bounds rejected-attempt retries before Generate
	// gives up with an error.
	MaxAttempts int
}

// Generator performs constrained random walks over a transition model,
// filtering candidate symbols at every step by positional legality.
type Generator struct {
	model Model
	inv   *Inventory
	cfg   WalkConfig
	rng   *rand.Rand
}

// NewGenerator wires a generator over a prebuilt model. The caller
// owns the rng; sharing one seeded source across the engine keeps runs
// reproducible.
func NewGenerator(model Model, inv *Inventory, cfg WalkConfig, rng *rand.Rand) *Generator {
	return &Generator{model: model, inv: inv, cfg: cfg, rng: rng}
}

// Generate produces one phonetic word, retrying rejected attempts up
// to MaxAttempts times. A dead-ended walk is not an error, it just
// fails that attempt; exhausting the attempt budget is.
func (g *Generator) Generate() (string, error) {
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		word := g.walk()
		if g.accept(word) {
			return word, nil
		}
	}
	return "", fmt.Errorf("phonotactic generation: no acceptable word within %d attempts (length %d-%d)",
		g.cfg.MaxAttempts, g.cfg.MinLength, g.cfg.MaxLength)
}

// walk runs a single attempt and returns whatever accumulated before
// the walk stopped. May be empty or out of bounds; accept decides.
func (g *Generator) walk() string {
	var word []rune
	context := strings.Repeat(string(StartSentinel), g.cfg.Order)

	// Seed the first symbol with a plain vowel some of the time rather
	// than always entering through the model.
	if g.roll(g.cfg.VowelStartProb) {
		seed := g.inv.Vowels.Pick(g.rng)
		context = seed
		word = append(word, []rune(seed)...)
	}

	// A corpus whose end sentinel is unreachable from some loop of
	// contexts would otherwise walk forever; maxSteps bounds the
	// declined-ending resamples as well.
	maxSteps := 64 * (g.cfg.MaxLength + 1)
	for step := 0; step < maxSteps; step++ {
		if len(word) >= g.cfg.MaxLength {
			// Anything longer can only be rejected.
			break
		}

		successors, ok := g.model[context]
		if !ok {
			break
		}

		filtered := g.filter(word, context, successors)
		if len(filtered) == 0 {
			break
		}

		next := weightedPick(filtered, g.rng)
		if next == EndSentinel {
			last := word[len(word)-1]
			if g.inv.Vowels.ContainsRune(last) {
				if g.roll(g.cfg.VowelEndProb) {
					break
				}
				continue // vowel ending declined, resample
			}
			break
		}

		word = append(word, next)
		cr := []rune(context)
		context = string(append(cr[1:], next))
	}

	return string(word)
}

// filter builds the legal candidate set for the current position. The
// positional rules are unioned: a symbol passing any applicable rule
// stays in the pool, with its model count as sampling weight.
func (g *Generator) filter(word []rune, context string, successors map[rune]int) map[rune]int {
	filtered := make(map[rune]int)
	atStart := strings.ContainsRune(context, StartSentinel)
	atEnd := strings.ContainsRune(context, EndSentinel)

	var first, last rune
	if len(word) > 0 {
		first = word[0]
		last = word[len(word)-1]
	}

	// Balance immediately after the first symbol: a consonant-initial
	// word wants a vowel next, a vowel-initial word a consonant.
	if len(word) > 0 && g.inv.Consonants.ContainsRune(first) {
		for r, n := range successors {
			if g.inv.Vowels.ContainsRune(r) {
				filtered[r] = n
			}
		}
	}
	if len(word) > 0 && g.inv.Vowels.ContainsRune(first) {
		for r, n := range successors {
			if g.inv.Consonants.ContainsRune(r) {
				filtered[r] = n
			}
		}
	}

	// Mid-word, away from both boundaries.
	if !atStart && !atEnd {
		for r, n := range successors {
			if g.inv.MidWord.ContainsRune(r) || g.inv.Vowels.ContainsRune(r) {
				filtered[r] = n
			}
		}
	}

	// After a consonant the word may close: word-final legality plus
	// the end sentinel.
	if len(word) > 0 && g.inv.Consonants.ContainsRune(last) {
		for r, n := range successors {
			if r == EndSentinel || g.inv.WordFinal.ContainsRune(r) {
				filtered[r] = n
			}
		}
	}

	// Near the start boundary: word-initial legality plus vowels.
	if atStart {
		for r, n := range successors {
			if g.inv.WordInitial.ContainsRune(r) || g.inv.Vowels.ContainsRune(r) {
				filtered[r] = n
			}
		}
	}

	return filtered
}

// accept applies the final positional checks: length in bounds, first
// symbol legal word-initially, last symbol legal word-finally.
func (g *Generator) accept(word string) bool {
	runes := []rune(word)
	if len(runes) < g.cfg.MinLength || len(runes) > g.cfg.MaxLength {
		return false
	}
	first, last := runes[0], runes[len(runes)-1]
	if !g.inv.WordInitial.ContainsRune(first) && !g.inv.Vowels.ContainsRune(first) {
		return false
	}
	if !g.inv.WordFinal.ContainsRune(last) && !g.inv.Vowels.ContainsRune(last) {
		return false
	}
	return true
}

// roll returns true with the given percent probability.
func (g *Generator) roll(percent int) bool {
	return g.rng.Intn(100)+1 <= percent
}

// weightedPick samples a rune proportionally to its count. Candidates
// are visited in sorted order so a seeded rng yields a stable pick.
func weightedPick(candidates map[rune]int, rng *rand.Rand) rune {
	keys := make([]rune, 0, len(candidates))
	total := 0
	for r, n := range candidates {
		keys = append(keys, r)
		total += n
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	pick := rng.Intn(total)
	for _, r := range keys {
		pick -= candidates[r]
		if pick < 0 {
			return r
		}
	}
	return keys[len(keys)-1]
}
