package culture

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEvents is a canned EventResolver that counts resolutions.
type stubEvents struct {
	calls int
	label string
}

func (s *stubEvents) ResolveEvent(cycle int, pool []string) (string, error) {
	s.calls++
	if s.label != "" {
		return s.label, nil
	}
	return pool[0], nil
}

func newTestComposer(events EventResolver) *Composer {
	return NewComposer(events, rand.New(rand.NewSource(42)), 1, 998)
}

func TestComposeValain(t *testing.T) {
	events := &stubEvents{}
	c := newTestComposer(events)

	vocab := Vocabulary{
		"titles":   {"Alpha"},
		"name":     {"kal"},
		"traits":   {"The Swift"},
		"dominion": {"Fire"},
		"events":   {"The Long Thaw"},
	}

	name, err := c.Compose("Valain", vocab, nil)
	require.NoError(t, err)
	require.Equal(t, "Alpha kal The Swift Fire", name)
	assert.Equal(t, 1, events.calls, "cycling culture must touch the event cache")
}

func TestComposeUnrootedGenitiveJoin(t *testing.T) {
	events := &stubEvents{label: "The Long Thaw"}
	c := newTestComposer(events)

	vocab := Vocabulary{
		"mothertree": {"Elder Ash"},
		"name":       {"ʒij"},
		"events":     {"The Long Thaw"},
	}

	name, err := c.Compose("Unrooted", vocab, nil)
	require.NoError(t, err)
	require.Equal(t, "The Elder Ash ʒij of The Long Thaw", name)
}

func TestComposeNapaDashJoin(t *testing.T) {
	c := newTestComposer(&stubEvents{})

	vocab := Vocabulary{
		"name":      {"Kelvin"},
		"homestead": {"Stonecroft"},
		"events":    {"Settling"},
	}

	name, err := c.Compose("Napa", vocab, nil)
	require.NoError(t, err)
	require.Equal(t, "Kelvin - Stonecroft", name)
}

func TestComposeConstructsSkipsCycle(t *testing.T) {
	events := &stubEvents{}
	c := newTestComposer(events)

	name, err := c.Compose("Constructs", Vocabulary{"titles": {"Warden"}}, nil)
	require.NoError(t, err)
	require.Equal(t, "Warden", name)
	assert.Zero(t, events.calls, "Constructs must not touch the event cache")
}

func TestComposeFallbacksOnEmptyVocabulary(t *testing.T) {
	c := newTestComposer(&stubEvents{})

	name, err := c.Compose("Valain", Vocabulary{}, nil)
	require.NoError(t, err)
	require.Equal(t, "Alpha kal The Swift Fire", name)
}

func TestComposeOverridePrecedence(t *testing.T) {
	c := newTestComposer(&stubEvents{})

	vocab := Vocabulary{
		"titles":   {"Alpha"},
		"name":     {"kal"},
		"traits":   {"The Swift"},
		"dominion": {"Fire"},
	}

	name, err := c.Compose("Valain", vocab, map[string]string{
		"titles":   "Omega",
		"dominion": "Embers",
	})
	require.NoError(t, err)
	require.Equal(t, "Omega kal The Swift Embers", name)
}

func TestComposeCycleEventOverrideBypassesCache(t *testing.T) {
	events := &stubEvents{}
	c := newTestComposer(events)

	vocab := Vocabulary{"mothertree": {"Elder Ash"}, "name": {"ʒij"}}
	name, err := c.Compose("Unrooted", vocab, map[string]string{
		OverrideCycleEvent: "The Great Quiet",
	})
	require.NoError(t, err)
	require.Equal(t, "The Elder Ash ʒij of The Great Quiet", name)
	assert.Zero(t, events.calls)
}

func TestComposeMismatchedPoolKeys(t *testing.T) {
	// DriftersLand resolves its override keys from differently named
	// pools; the mismatch is part of the inherited conventions.
	c := newTestComposer(&stubEvents{})

	vocab := Vocabulary{
		"title":     {"Canopy"},
		"name":      {"ken"},
		"character": {"Wanderers"},
		// Pools under the override key names must be ignored.
		"depth":      {"WRONG"},
		"clan_names": {"WRONG"},
	}

	name, err := c.Compose("DriftersLand", vocab, nil)
	require.NoError(t, err)
	require.Equal(t, "Canopy ken Wanderers", name)
}

func TestComposeUnsupportedCulture(t *testing.T) {
	c := newTestComposer(&stubEvents{})

	_, err := c.Compose("Atlantean", Vocabulary{}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedCulture))
}
