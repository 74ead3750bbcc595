package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/onomast/internal/config"
	"github.com/talgya/onomast/internal/culture"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = filepath.Join(dir, "naming_data")
	cfg.StatePath = filepath.Join(dir, "state.db")
	cfg.OutputDir = dir
	cfg.Seed = 42
	return cfg
}

func writeVocab(t *testing.T, cfg *config.Config, file, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, file), []byte(content), 0644))
}

func newTestEngine(t *testing.T, cfg *config.Config) *Engine {
	t.Helper()
	eng, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })
	return eng
}

const valainVocab = `{
	"titles":   ["Alpha", "Omega", "Warden", "Keeper"],
	"name":     ["kal", "ver", "tys", "mor", "len"],
	"traits":   ["The Swift", "The Patient", "The Unbent"],
	"dominion": ["Fire", "Ash", "Glass"],
	"events":   ["The Long Thaw", "The Sundering"]
}`

func TestGenerateBatchTemplate(t *testing.T) {
	cfg := testConfig(t)
	writeVocab(t, cfg, "valain.json", valainVocab)
	eng := newTestEngine(t, cfg)

	names, err := eng.GenerateBatch("Valain", 5, nil)
	require.NoError(t, err)
	require.Len(t, names, 5)

	seen := map[string]bool{}
	for _, name := range names {
		require.False(t, seen[name], "duplicate in batch: %s", name)
		seen[name] = true
		require.True(t, eng.Ledger().Contains(name))
		require.Len(t, strings.Split(name, " "), 5, "Valain names have five words: %q", name)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "Valain_names.txt"))
	require.NoError(t, err)
	require.Equal(t, strings.Join(names, "\n")+"\n", string(data))
}

func TestGenerateBatchOverridePrecedence(t *testing.T) {
	cfg := testConfig(t)
	writeVocab(t, cfg, "valain.json", valainVocab)
	eng := newTestEngine(t, cfg)

	names, err := eng.GenerateBatch("Valain", 4, map[string]string{"dominion": "Embers"})
	require.NoError(t, err)
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, " Embers"), "override not honored in %q", name)
	}
}

func TestGenerateBatchPhonetic(t *testing.T) {
	cfg := testConfig(t)
	eng := newTestEngine(t, cfg)

	names, err := eng.GenerateBatch("Mothertree", 5, nil)
	require.NoError(t, err)
	require.Len(t, names, 5)

	seen := map[string]bool{}
	for _, name := range names {
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate in batch: %s", name)
		seen[name] = true
	}

	_, err = os.Stat(filepath.Join(cfg.OutputDir, "Mothertree_names.txt"))
	require.NoError(t, err)
}

func TestUniquenessAcrossRuns(t *testing.T) {
	cfg := testConfig(t)
	writeVocab(t, cfg, "valain.json", valainVocab)

	eng := newTestEngine(t, cfg)
	first, err := eng.GenerateBatch("Valain", 8, nil)
	require.NoError(t, err)
	require.NoError(t, eng.Close())

	// A second run over the same state file must never re-emit a
	// committed name.
	cfg.Seed = 43
	second := newTestEngine(t, cfg)
	names, err := second.GenerateBatch("Valain", 8, nil)
	require.NoError(t, err)

	emitted := map[string]bool{}
	for _, n := range first {
		emitted[n] = true
	}
	for _, n := range names {
		require.False(t, emitted[n], "name re-emitted across runs: %s", n)
	}
}

func TestGenerateBatchExhaustion(t *testing.T) {
	cfg := testConfig(t)
	writeVocab(t, cfg, "constructs.json", `{"titles": ["Solo"]}`)
	eng := newTestEngine(t, cfg)

	// Only one name is expressible; asking for two must fail with the
	// exhaustion error, not hang or truncate.
	_, err := eng.GenerateBatch("Constructs", 2, nil)
	require.Error(t, err)

	var exhausted *ExhaustionError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, "Constructs", exhausted.Culture)
	assert.Equal(t, 2, exhausted.Count)
}

func TestGenerateBatchUnsupportedCulture(t *testing.T) {
	cfg := testConfig(t)
	eng := newTestEngine(t, cfg)

	_, err := eng.GenerateBatch("Atlantean", 3, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, culture.ErrUnsupportedCulture))

	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "Atlantean_names.txt"))
	require.True(t, os.IsNotExist(statErr), "no output may be written for a failed batch")
}

func TestGenerateBatchMissingVocabulary(t *testing.T) {
	cfg := testConfig(t)
	eng := newTestEngine(t, cfg)

	_, err := eng.GenerateBatch("Valain", 3, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no naming data")
}

func TestCycleEventsSharedAcrossCultures(t *testing.T) {
	cfg := testConfig(t)
	cfg.CycleMin = 5
	cfg.CycleMax = 5 // pin the drawn cycle number
	writeVocab(t, cfg, "napa.json", `{
		"name": ["Kelvin", "Marta"],
		"homestead": ["Stonecroft", "Willowbend"],
		"events": ["The Long Thaw"]
	}`)
	writeVocab(t, cfg, "oonar.json", `{
		"processes": ["autolysee", "symbiosee"],
		"name": ["tu", "ko"],
		"events": ["A Different Pool Entirely"]
	}`)
	eng := newTestEngine(t, cfg)

	_, err := eng.GenerateBatch("Napa", 1, nil)
	require.NoError(t, err)

	// Both cultures hit cycle 5; the second must see the first's
	// assignment even though its own event pool differs.
	_, err = eng.GenerateBatch("Oonar", 1, nil)
	require.NoError(t, err)

	event, ok, err := eng.Ledger().CycleEvent(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "The Long Thaw", event)
}
