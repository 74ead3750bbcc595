package ledger

import "math/rand"

// Cycles resolves cycle numbers to narrative event labels through the
// persistent cache. Assignments are idempotent for the lifetime of the
// state file: once a cycle has an event, every later lookup returns
// the same label no matter which culture asks. The cache is keyed by
// the integer alone, so two cultures sharing a cycle number share its
// event text.
type Cycles struct {
	store *Store
	rng   *rand.Rand
}

// NewCycles wires the cycle cache over a store.
func NewCycles(store *Store, rng *rand.Rand) *Cycles {
	return &Cycles{store: store, rng: rng}
}

// ResolveEvent returns the event for a cycle number, assigning a
// uniform pick from the pool on first sight and persisting it before
// returning.
func (c *Cycles) ResolveEvent(cycle int, pool []string) (string, error) {
	if event, ok, err := c.store.CycleEvent(cycle); err != nil {
		return "", err
	} else if ok {
		return event, nil
	}

	event := pool[c.rng.Intn(len(pool))]
	if err := c.store.PutCycleEvent(cycle, event); err != nil {
		return "", err
	}
	return event, nil
}
