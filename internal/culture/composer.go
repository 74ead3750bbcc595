package culture

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnsupportedCulture marks a culture identifier with no recipe.
// It signals a configuration mismatch upstream, not a generation
// failure, and aborts the batch.
var ErrUnsupportedCulture = errors.New("unsupported culture")

// OverrideCycleEvent is the override key that pins the cycle event
// label directly, bypassing the cycle cache.
const OverrideCycleEvent = "cycle_event"

// fallbackEvent labels cycles for cultures without an event pool.
const fallbackEvent = "Unnamed Cycle"

// EventResolver maps a cycle number to its narrative event label,
// assigning one from the pool on first sight and returning the stored
// label ever after.
type EventResolver interface {
	ResolveEvent(cycle int, pool []string) (string, error)
}

// Composer slot-fills culture recipes from vocabulary pools.
type Composer struct {
	events   EventResolver
	rng      *rand.Rand
	cycleMin int
	cycleMax int
}

// NewComposer wires a composer. cycleMin and cycleMax bound the cycle
// numbers drawn for cycling recipes, inclusive.
func NewComposer(events EventResolver, rng *rand.Rand, cycleMin, cycleMax int) *Composer {
	return &Composer{events: events, rng: rng, cycleMin: cycleMin, cycleMax: cycleMax}
}

// Compose builds one name for the culture. Each slot takes its
// override verbatim when supplied, otherwise a uniform pick from the
// culture's pool, otherwise the recipe fallback. Cycling recipes draw
// a cycle number and resolve it through the event cache even when the
// join does not display the event; the cache side effect is part of
// the behavior.
func (c *Composer) Compose(cultureID string, vocab Vocabulary, overrides map[string]string) (string, error) {
	recipe, ok := Recipes[cultureID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCulture, cultureID)
	}

	event := ""
	if recipe.Cycle {
		var err error
		event, err = c.cycleEvent(vocab, overrides)
		if err != nil {
			return "", fmt.Errorf("resolve cycle event for %s: %w", cultureID, err)
		}
	}

	parts := make([]string, 0, len(recipe.Slots))
	for _, slot := range recipe.Slots {
		parts = append(parts, c.resolve(slot, vocab, overrides))
	}

	switch recipe.Join {
	case JoinDash:
		return strings.Join(parts, " - "), nil
	case JoinGenitive:
		return fmt.Sprintf("The %s %s of %s", parts[0], parts[1], event), nil
	default:
		return strings.Join(parts, " "), nil
	}
}

// resolve picks one slot value: override, then pool, then fallback.
func (c *Composer) resolve(slot Slot, vocab Vocabulary, overrides map[string]string) string {
	if slot.Override != "" {
		if v, ok := overrides[slot.Override]; ok && v != "" {
			return v
		}
	}
	if pool := vocab.Pool(slot.Pool); len(pool) > 0 {
		return pool[c.rng.Intn(len(pool))]
	}
	return slot.Fallback
}

// cycleEvent draws a cycle number and resolves its event, honoring an
// explicit override that skips both the draw and the cache.
func (c *Composer) cycleEvent(vocab Vocabulary, overrides map[string]string) (string, error) {
	if v, ok := overrides[OverrideCycleEvent]; ok && v != "" {
		return v, nil
	}

	cycle := c.cycleMin + c.rng.Intn(c.cycleMax-c.cycleMin+1)
	pool := vocab.Pool("events")
	if len(pool) == 0 {
		pool = []string{fallbackEvent}
	}
	return c.events.ResolveEvent(cycle, pool)
}
