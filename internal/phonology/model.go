package phonology

import "strings"

// Model maps a context (the last N emitted symbols, keyed as a string
// of runes) to the observed successor symbols with their occurrence
// counts. Built once from a training corpus; never mutated afterwards.
type Model map[string]map[rune]int

// BuildModel indexes the corpus at the given order. Each word is
// padded with order boundary sentinels on both ends, then every
// window of order+1 runes records the next rune for its context.
// Deterministic: the same corpus and order always produce the same
// table.
//
// The build order and the walk order consulted during generation are
// independent settings. A model built at order 2 has only length-2
// context keys, so a walk at order 4 misses on every lookup and
// dead-ends immediately; that pairing is representable on purpose.
func BuildModel(corpus []string, order int) Model {
	model := make(Model)
	pre := strings.Repeat(string(StartSentinel), order)
	post := strings.Repeat(string(EndSentinel), order)

	for _, word := range corpus {
		runes := []rune(pre + word + post)
		for i := 0; i+order < len(runes); i++ {
			context := string(runes[i : i+order])
			next := runes[i+order]
			succ, ok := model[context]
			if !ok {
				succ = make(map[rune]int)
				model[context] = succ
			}
			succ[next]++
		}
	}

	return model
}
