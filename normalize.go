package cfgt

// NewStart introduces a fresh start non-terminal S' with the sole
// production S' -> oldStart, and makes S' the grammar's start symbol. This
// guarantees the new start never appears on the right-hand side of any
// production, a precondition DEL relies on to keep a lone start -> ε rule
// without also making every other occurrence of start nullable-deletable.
func (g *Grammar) NewStart() {
	oldStart := g.Start
	fresh := g.Fresh()
	g.Start = fresh
	g.AddProduction(fresh, Production{NT(oldStart)})
}

// EliminateEpsilon rewrites g so that no epsilon production other than a
// possible start -> ε survives, by expanding every production over the nullable
// subsets of its nullable non-terminal positions.
func (g *Grammar) EliminateEpsilon() error {
	nullable := g.nullableSet()

	for _, nt := range g.OrderedNonTerminals() {
		var rewritten []Production
		for _, p := range g.Rules[nt] {
			if p.IsEpsilon() {
				continue
			}
			rewritten = append(rewritten, p)
			for _, variant := range nullableVariants(p, nullable) {
				if len(variant) > 0 {
					rewritten = append(rewritten, variant)
				}
			}
		}
		g.SetProductions(nt, rewritten)
		if err := g.guardSize(nt, "epsilon elimination"); err != nil {
			return err
		}
	}

	if _, ok := nullable[g.Start]; ok {
		g.AddProduction(g.Start, Production{Epsilon})
	}
	return nil
}

// nullableSet computes the least set of non-terminals that derive the empty
// string: those with a direct ε production, and those all of whose symbols
// in some production are themselves nullable.
func (g *Grammar) nullableSet() map[string]struct{} {
	nullable := make(map[string]struct{})
	for {
		grew := false
		for _, nt := range g.OrderedNonTerminals() {
			if _, ok := nullable[nt]; ok {
				continue
			}
			for _, p := range g.Rules[nt] {
				if p.IsEpsilon() {
					nullable[nt] = struct{}{}
					grew = true
					break
				}
				allNullable := true
				for _, s := range p {
					if s.IsTerminal() {
						allNullable = false
						break
					}
					if _, ok := nullable[s.Name()]; !ok {
						allNullable = false
						break
					}
				}
				if allNullable && len(p) > 0 {
					nullable[nt] = struct{}{}
					grew = true
					break
				}
			}
		}
		if !grew {
			return nullable
		}
	}
}

// nullableVariants returns, for production p, one production per non-empty
// subset of positions holding a nullable non-terminal, with that subset's
// symbols deleted. Positions holding a terminal or a non-nullable
// non-terminal are never deleted.
func nullableVariants(p Production, nullable map[string]struct{}) []Production {
	var nullablePositions []int
	for i, s := range p {
		if s.IsNonTerminal() {
			if _, ok := nullable[s.Name()]; ok {
				nullablePositions = append(nullablePositions, i)
			}
		}
	}
	if len(nullablePositions) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []Production
	for _, subset := range nonEmptySubsets(nullablePositions) {
		drop := toIntSet(subset)
		var variant Production
		for i, s := range p {
			if _, ok := drop[i]; ok {
				continue
			}
			variant = append(variant, s)
		}
		key := variant.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, variant)
	}
	return out
}

// nonEmptySubsets returns every non-empty subset of idx, as index slices.
func nonEmptySubsets(idx []int) [][]int {
	subsets := [][]int{{}}
	for _, v := range idx {
		grown := make([][]int, len(subsets))
		for i, s := range subsets {
			next := make([]int, len(s), len(s)+1)
			copy(next, s)
			grown[i] = append(next, v)
		}
		subsets = append(subsets, grown...)
	}
	return subsets[1:]
}

func toIntSet(idx []int) map[int]struct{} {
	s := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

// EliminateUnits removes unit productions (A -> B, B a lone non-terminal)
// by copying every non-unit production reachable through the unit-pair
// closure back onto A, then deleting all unit productions.
func (g *Grammar) EliminateUnits() error {
	pairs := g.unitPairs()

	for _, a := range g.OrderedNonTerminals() {
		for b := range pairs[a] {
			if b == a {
				continue
			}
			for _, p := range g.Rules[b] {
				if isUnitProduction(p) {
					continue
				}
				g.AddProduction(a, p)
			}
		}
		if err := g.guardSize(a, "unit elimination"); err != nil {
			return err
		}
	}

	for _, nt := range g.OrderedNonTerminals() {
		g.SetProductions(nt, filterProductions(g.Rules[nt], func(p Production) bool {
			return !isUnitProduction(p)
		}))
	}
	return nil
}

func isUnitProduction(p Production) bool {
	return len(p) == 1 && p[0].IsNonTerminal()
}

// unitPairs computes, for every non-terminal A, the set of non-terminals B
// such that A =>* B via a chain of unit productions (A U A always holds).
func (g *Grammar) unitPairs() map[string]map[string]struct{} {
	pairs := make(map[string]map[string]struct{})
	for _, nt := range g.OrderedNonTerminals() {
		pairs[nt] = map[string]struct{}{nt: {}}
	}
	for {
		grew := false
		for _, a := range g.OrderedNonTerminals() {
			for b := range cloneStringSet(pairs[a]) {
				for _, p := range g.Rules[b] {
					if !isUnitProduction(p) {
						continue
					}
					c := p[0].Name()
					if _, ok := pairs[a][c]; !ok {
						pairs[a][c] = struct{}{}
						grew = true
					}
				}
			}
		}
		if !grew {
			return pairs
		}
	}
}

func cloneStringSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
