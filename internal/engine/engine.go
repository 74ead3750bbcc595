// Package engine orchestrates batch name generation: it owns the
// loaded vocabularies, the persistent ledger and cycle cache, both
// generation strategies, and the bounded retry discipline around
// duplicate names.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/onomast/internal/config"
	"github.com/talgya/onomast/internal/culture"
	"github.com/talgya/onomast/internal/ledger"
	"github.com/talgya/onomast/internal/phonology"
)

// ExhaustionError reports a batch that could not be completed within
// the retry budget. The batch is aborted whole rather than truncated.
type ExhaustionError struct {
	Culture string
	Count   int
	Budget  int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("could not generate %d unique names for %s within %d attempts per name; reduce the request or widen the vocabulary",
		e.Count, e.Culture, e.Budget)
}

// Engine is the top-level batch driver. Single-threaded and
// synchronous; it assumes exclusive ownership of the state file for
// the duration of a run.
type Engine struct {
	cfg      *config.Config
	store    *ledger.Store
	vocabs   map[string]culture.Vocabulary
	composer *culture.Composer
	phonetic *phonology.Generator
	renderer *phonology.Renderer
}

// New loads vocabularies and persistent state and wires both
// strategies. The transition model is built once here, from the
// embedded corpus at the configured model order.
func New(cfg *config.Config) (*Engine, error) {
	vocabs, err := culture.LoadAll(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load vocabularies: %w", err)
	}
	slog.Info("vocabularies loaded", "dir", cfg.DataDir, "cultures", len(vocabs))

	store, err := ledger.Open(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	slog.Info("state opened", "path", cfg.StatePath, "names", store.Len())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	model := phonology.BuildModel(phonology.TrainingCorpus, cfg.ModelOrder)
	inv := phonology.DefaultInventory()
	gen := phonology.NewGenerator(model, inv, phonology.WalkConfig{
		Order:          cfg.WalkOrder,
		MinLength:      cfg.MinLength,
		MaxLength:      cfg.MaxLength,
		VowelStartProb: cfg.VowelStartProb,
		VowelEndProb:   cfg.VowelEndProb,
		MaxAttempts:    cfg.MaxAttempts,
	}, rng)

	cycles := ledger.NewCycles(store, rng)
	composer := culture.NewComposer(cycles, rng, cfg.CycleMin, cfg.CycleMax)

	return &Engine{
		cfg:      cfg,
		store:    store,
		vocabs:   vocabs,
		composer: composer,
		phonetic: gen,
		renderer: phonology.DefaultRenderer(),
	}, nil
}

// Close releases the persistent state.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Ledger exposes the underlying store, mainly for callers that want
// to inspect committed state after a run.
func (e *Engine) Ledger() *ledger.Store {
	return e.store
}

// GenerateBatch produces count unique names for the culture, commits
// each to the ledger as it is accepted, and writes the batch to
// <culture>_names.txt in the output directory. Overrides pin template
// slots verbatim. Any fatal condition aborts the whole batch; nothing
// partial is written.
func (e *Engine) GenerateBatch(cultureID string, count int, overrides map[string]string) ([]string, error) {
	produce, err := e.strategy(cultureID, overrides)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	slog.Info("starting batch", "culture", cultureID, "count", count, "batch_id", batchID)

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name, err := e.uniqueName(cultureID, count, produce, batchID)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		slog.Info("name accepted", "culture", cultureID, "name", name, "n", i+1, "of", count)
	}

	path, err := e.writeBatch(cultureID, names)
	if err != nil {
		return nil, err
	}
	slog.Info("batch written", "culture", cultureID, "path", path, "names", len(names))

	return names, nil
}

// strategy picks the producer for a culture: a template recipe when
// one exists, the phonetic generator for configured phonetic cultures,
// otherwise a configuration error.
func (e *Engine) strategy(cultureID string, overrides map[string]string) (func() (string, error), error) {
	if culture.Supported(cultureID) {
		vocab, ok := e.vocabs[cultureID]
		if !ok {
			return nil, fmt.Errorf("no naming data available for %s under %s", cultureID, e.cfg.DataDir)
		}
		return func() (string, error) {
			return e.composer.Compose(cultureID, vocab, overrides)
		}, nil
	}

	if e.cfg.IsPhonetic(cultureID) {
		return func() (string, error) {
			raw, err := e.phonetic.Generate()
			if err != nil {
				return "", err
			}
			return e.renderer.Render(raw), nil
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", culture.ErrUnsupportedCulture, cultureID)
}

// uniqueName retries produce until a name clears the ledger, then
// commits it write-through. The retry loop is a counted iteration, not
// recursion; running out of budget surfaces as an ExhaustionError.
func (e *Engine) uniqueName(cultureID string, count int, produce func() (string, error), batchID string) (string, error) {
	for attempt := 0; attempt < e.cfg.MaxAttempts; attempt++ {
		name, err := produce()
		if err != nil {
			return "", err
		}
		if e.store.Contains(name) {
			slog.Debug("duplicate rejected", "culture", cultureID, "name", name, "attempt", attempt+1)
			continue
		}
		if err := e.store.Commit(name, cultureID, batchID); err != nil {
			return "", err
		}
		return name, nil
	}
	return "", &ExhaustionError{Culture: cultureID, Count: count, Budget: e.cfg.MaxAttempts}
}

// writeBatch persists the accepted names, newline-delimited in
// emission order, to a file named after the culture.
func (e *Engine) writeBatch(cultureID string, names []string) (string, error) {
	if err := os.MkdirAll(e.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(e.cfg.OutputDir, cultureID+"_names.txt")
	data := strings.Join(names, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("write batch %s: %w", path, err)
	}
	return path, nil
}
