package cfgt

import (
	"fmt"
	"sort"
	"strings"
)

// Production is an ordered, possibly empty sequence of Symbols forming one
// alternative of some non-terminal's rule. A production consisting solely of
// Epsilon denotes the empty derivation; Epsilon never appears alongside any
// other symbol in the same body.
type Production []Symbol

// IsEpsilon reports whether p is the single-symbol epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0].IsEpsilon()
}

// Equal reports whether p and other have the same symbols in the same order.
func (p Production) Equal(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i, s := range p {
		if !s.Equal(other[i]) {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Grammar is a context-free grammar: a start non-terminal, the set of all
// non-terminals in use, and a mapping from each non-terminal to its ordered,
// deduplicated list of productions.
type Grammar struct {
	Start        string
	NonTerminals map[string]struct{}
	Rules        map[string][]Production

	// order preserves non-terminal insertion order for deterministic
	// iteration where map order would otherwise leak into output.
	order []string

	fresh freshNameGenerator
}

// NewGrammar returns an empty grammar rooted at start. The caller should add
// start to the non-terminal set via AddNonTerminal before adding rules.
func NewGrammar(start string) *Grammar {
	return &Grammar{
		Start:        start,
		NonTerminals: make(map[string]struct{}),
		Rules:        make(map[string][]Production),
	}
}

// Clone returns a deep copy of g, safe to mutate independently.
func (g *Grammar) Clone() *Grammar {
	out := &Grammar{
		Start:        g.Start,
		NonTerminals: make(map[string]struct{}, len(g.NonTerminals)),
		Rules:        make(map[string][]Production, len(g.Rules)),
		order:        append([]string(nil), g.order...),
		fresh:        g.fresh,
	}
	for nt := range g.NonTerminals {
		out.NonTerminals[nt] = struct{}{}
	}
	for nt, ps := range g.Rules {
		cp := make([]Production, len(ps))
		for i, p := range ps {
			cp[i] = append(Production(nil), p...)
		}
		out.Rules[nt] = cp
	}
	return out
}

// AddNonTerminal registers name in the non-terminal set, preserving the
// first-seen order used for deterministic traversal.
func (g *Grammar) AddNonTerminal(name string) {
	if _, ok := g.NonTerminals[name]; ok {
		return
	}
	g.NonTerminals[name] = struct{}{}
	g.order = append(g.order, name)
	g.fresh.reserve(name)
}

// OrderedNonTerminals returns the non-terminal names in first-seen order.
func (g *Grammar) OrderedNonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// SortedNonTerminals returns the non-terminal names sorted lexicographically,
// the order the writer uses for every non-terminal after the start symbol.
func (g *Grammar) SortedNonTerminals() []string {
	out := make([]string, 0, len(g.NonTerminals))
	for nt := range g.NonTerminals {
		out = append(out, nt)
	}
	sort.Strings(out)
	return out
}

// AddProduction appends p to nt's rule list unless an equal production is
// already present. nt must already be a registered non-terminal.
func (g *Grammar) AddProduction(nt string, p Production) {
	for _, existing := range g.Rules[nt] {
		if existing.Equal(p) {
			return
		}
	}
	g.Rules[nt] = append(g.Rules[nt], p)
}

// SetProductions replaces nt's rule list wholesale, deduplicating as it goes.
func (g *Grammar) SetProductions(nt string, ps []Production) {
	g.Rules[nt] = nil
	for _, p := range ps {
		g.AddProduction(nt, p)
	}
}

// RemoveNonTerminal deletes nt from the grammar entirely: its entry in
// NonTerminals, its rule list, and its slot in the insertion order.
func (g *Grammar) RemoveNonTerminal(nt string) {
	delete(g.NonTerminals, nt)
	delete(g.Rules, nt)
	for i, n := range g.order {
		if n == nt {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Fresh returns a new non-terminal name that does not collide with the
// current non-terminal set, registers it, and returns it. See
// freshNameGenerator for the naming scheme.
func (g *Grammar) Fresh() string {
	name := g.fresh.next(g.NonTerminals)
	g.AddNonTerminal(name)
	return name
}

func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "start=%s\n", g.Start)
	for _, nt := range g.OrderedNonTerminals() {
		fmt.Fprintf(&b, "%s :", nt)
		for i, p := range g.Rules[nt] {
			if i > 0 {
				b.WriteString(" |")
			}
			fmt.Fprintf(&b, " %s", p)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// freshNameGenerator produces names of the shape <letter><digit>, cycling
// letters A-Z (skipping E, reserved by the text format for epsilon) within a
// digit suffix before advancing the suffix: A0, B0, ..., Z0, A1, B1, ...
type freshNameGenerator struct {
	letterIdx int
	digit     int
}

var freshLetters = []byte("ABCDFGHIJKLMNOPQRSTUVWXYZ") // E skipped

func (f *freshNameGenerator) reserve(name string) {
	// Advance the cursor past any name that happens to collide with the
	// generator's own scheme, so freshly read grammars don't get handed a
	// name that's already in use.
	if len(name) < 2 {
		return
	}
	letter := name[0]
	li := -1
	for i, l := range freshLetters {
		if l == letter {
			li = i
			break
		}
	}
	if li < 0 {
		return
	}
	var digit int
	if _, err := fmt.Sscanf(name[1:], "%d", &digit); err != nil {
		return
	}
	if digit > f.digit || (digit == f.digit && li >= f.letterIdx) {
		f.digit = digit
		f.letterIdx = li + 1
		if f.letterIdx >= len(freshLetters) {
			f.letterIdx = 0
			f.digit++
		}
	}
}

func (f *freshNameGenerator) next(taken map[string]struct{}) string {
	for {
		name := fmt.Sprintf("%c%d", freshLetters[f.letterIdx], f.digit)
		f.letterIdx++
		if f.letterIdx >= len(freshLetters) {
			f.letterIdx = 0
			f.digit++
		}
		if _, ok := taken[name]; !ok {
			return name
		}
	}
}
