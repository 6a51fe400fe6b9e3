package cfgt

import "sort"

// Generate returns the sorted, deduplicated set of terminal strings of
// length <= n derivable from g's start symbol. g is not modified; Generate
// works on a cleaned copy so that non-productive or unreachable
// non-terminals (which could otherwise prevent termination) are pruned
// first.
//
// The search is depth-first over sentential forms: a stack of
// (terminal-prefix, remaining-suffix) pairs. The head of the suffix is
// expanded by each of its productions when it is a non-terminal; terminals
// at the head are moved into the prefix immediately. A partial form is
// pruned once its terminal prefix exceeds n, or once the prefix plus a
// lower bound on the remaining suffix's final length exceeds n. That bound
// counts 1 for a terminal or a non-nullable non-terminal, and 0 for
// epsilon or a nullable non-terminal — a nullable non-terminal can still
// resolve to the empty string, so treating it as contributing >= 1 would
// prune reachable derivations in grammars that haven't yet had epsilon
// eliminated (CNF and GNF are already epsilon-free past the start symbol,
// so the distinction only matters for ungeneralized input).
func Generate(g *Grammar, n int) []string {
	if n < 0 {
		return nil
	}

	clean := g.Clone()
	clean.Cleanup()
	nullable := clean.nullableSet()

	results := make(map[string]struct{})
	type state struct {
		prefix string
		suffix []Symbol
	}
	stack := []state{{prefix: "", suffix: []Symbol{NT(clean.Start)}}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		prefix, suffix := cur.prefix, cur.suffix
		for len(suffix) > 0 && suffix[0].IsTerminal() {
			prefix += suffix[0].Name()
			suffix = suffix[1:]
		}
		if len(prefix) > n {
			continue
		}
		if len(suffix) == 0 {
			results[prefix] = struct{}{}
			continue
		}

		head := suffix[0].Name()
		rest := suffix[1:]
		for _, p := range clean.Rules[head] {
			next := append(append([]Symbol(nil), productionSymbols(p)...), rest...)
			if len(prefix)+minLength(next, nullable) > n {
				continue
			}
			stack = append(stack, state{prefix: prefix, suffix: next})
		}
	}

	out := make([]string, 0, len(results))
	for w := range results {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// productionSymbols returns p's symbols, or nil for the epsilon production
// (which contributes nothing when substituted into a sentential form).
func productionSymbols(p Production) []Symbol {
	if p.IsEpsilon() {
		return nil
	}
	return []Symbol(p)
}

// minLength is a lower bound on the terminal length any completion of
// suffix can have: a terminal or a non-nullable non-terminal contributes
// at least one character; epsilon and nullable non-terminals may
// contribute none.
func minLength(suffix []Symbol, nullable map[string]struct{}) int {
	n := 0
	for _, s := range suffix {
		if s.IsEpsilon() {
			continue
		}
		if s.IsNonTerminal() {
			if _, ok := nullable[s.Name()]; ok {
				continue
			}
		}
		n++
	}
	return n
}
