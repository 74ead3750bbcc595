// Package phonology synthesizes phonotactically plausible words for an
// invented language: an order-N symbol transition model trained on a
// corpus of example words, a constrained random walk over that model,
// and an ordered spelling pass that turns phonetic symbols into a
// readable orthography.
package phonology

import (
	"math/rand"
	"strings"
)

// Boundary sentinels used when padding training words and seeding the
// walk context. They never appear in finished words.
const (
	StartSentinel = '^'
	EndSentinel   = '$'
)

// Class is a named collection of phonetic symbols. Entries may span
// multiple runes (long vowels like "aː", clusters like "nt"); rune
// membership checks only ever match the single-rune entries.
type Class struct {
	symbols []string
	members map[string]struct{}
}

// NewClass builds a Class from a space-separated symbol list.
func NewClass(spaced string) Class {
	symbols := strings.Fields(spaced)
	members := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		members[s] = struct{}{}
	}
	return Class{symbols: symbols, members: members}
}

// Contains reports whether sym is a member of the class.
func (c Class) Contains(sym string) bool {
	_, ok := c.members[sym]
	return ok
}

// ContainsRune reports whether the single-rune symbol r is a member.
func (c Class) ContainsRune(r rune) bool {
	return c.Contains(string(r))
}

// Pick returns a uniformly chosen symbol from the class.
func (c Class) Pick(rng *rand.Rand) string {
	return c.symbols[rng.Intn(len(c.symbols))]
}

// Len returns the number of symbols in the class.
func (c Class) Len() int { return len(c.symbols) }

// Inventory classifies symbols by position-dependent legality. Every
// symbol emitted during generation belongs to at least one class
// relevant to its position in the word.
type Inventory struct {
	Consonants  Class
	Vowels      Class
	WordInitial Class
	MidWord     Class
	WordFinal   Class
}

// DefaultInventory returns the engine's fixed symbol classification.
func DefaultInventory() *Inventory {
	return &Inventory{
		Consonants:  NewClass("p b t d k ɡ f v s z ʃ ʒ h l r j w m n ɲ ŋ"),
		Vowels:      NewClass("a e i o u y æ ø ɑ ɛ ɔ aː eː iː oː uː yː æː øː ɑː ɛː ɔː"),
		WordInitial: NewClass("m k p ɢ w t n h ɲ ʃ d b v ʄ z ɗ g x ɓ f r ʤ ʧ ʒ"),
		MidWord:     NewClass("p w t tn j ʤ m k kʃ b ɗ dʒ g s ŋ ɲ ɢ l d ʧ z n f ʒ nt h x rd r ŋk mp mb rt v ɣ gb ɓ ʄ ng lt tʃ ʃ q ʃt sk nf bl nj ts rm nv nʧ pl rg nʃ nm gj rs pt br nn gz mj tj tt lw kn mt vn pʃ gl ɲj vl sm kr rj mm mg nb pr xj rr tw ŋn mf rf rɣ vj xw ŋm ɲʤ hk mz rʃ sw xn zv dw gr hd jj nx zj fj gw pʧ rw sʧ bn ff mʧ rh tv ʧn gt mr rʤ wv zl ŋx mv nr ws zb ɣr ʧm bb mh np pn zg ŋh ŋw bm kɲ px tʧ vd vw wk xg bv zt bd db fh fn jg jv jʒ km kv wp ɣm ʃb ʤm bʒ fd fx gf jf js kz lz lɣ dx nʒ pz qq rʒ sz sɲ td tɲ wg wl wʤ xr ŋz ɣj ɣn ɲb ɲz ʃr ʃs ʒj ʒl ʤt ʧɲ bw bʃ fr fw fɣ fʃ hr lʧ qt tp vb vg wb wm xf xh xl xm xs xz ŋp ɣw ɲt ɲʧ ʃɲ ʒn ʧg ʧl"),
		WordFinal:   NewClass("m k g z nz f n s ʧ t ɲ ɢ b ld ɣ ʒ ɓ dʒ nt d ŋ ʃ nd rt q ʄ ns ʤ ɗ mp bz ts rm lt dz ʃt ps ft md sk gz nʃ jj rd js lp rn mʧ jt nk lʃ ms ŋd kʃ zt gʧ lʒ lʧ nx ɲv dv gs jl nw pʃ rp rv rɲ sg tm ʃd"),
	}
}
