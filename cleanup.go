package cfgt

// Cleanup removes non-productive, unreachable, and empty-rule-list
// non-terminals from g in place, iterating the three passes to a fixpoint.
// Order within one round is emptiness, then productivity, then
// reachability, repeated while any round still shrinks the grammar.
//
// If Start itself is removed (the grammar generates the empty language), g
// is left with a single non-terminal, Start, with no productions.
func (g *Grammar) Cleanup() {
	for {
		before := len(g.NonTerminals)
		g.removeEmpty()
		g.removeNonProductive()
		g.removeUnreachable()
		if len(g.NonTerminals) == before {
			break
		}
	}
	if _, ok := g.NonTerminals[g.Start]; !ok {
		g.NonTerminals = map[string]struct{}{g.Start: {}}
		g.Rules = map[string][]Production{g.Start: nil}
		g.order = []string{g.Start}
	}
}

// removeEmpty drops every non-terminal whose rule list is empty, along with
// any production referencing it, iterated to fixpoint.
func (g *Grammar) removeEmpty() {
	for {
		var empty []string
		for _, nt := range g.OrderedNonTerminals() {
			if len(g.Rules[nt]) == 0 {
				empty = append(empty, nt)
			}
		}
		if len(empty) == 0 {
			return
		}
		emptySet := toSet(empty)
		for _, nt := range empty {
			g.RemoveNonTerminal(nt)
		}
		for _, nt := range g.OrderedNonTerminals() {
			g.SetProductions(nt, filterProductions(g.Rules[nt], func(p Production) bool {
				return !referencesAny(p, emptySet)
			}))
		}
	}
}

// removeNonProductive keeps only non-terminals that can derive some
// terminal string: a non-terminal is productive iff some production of it
// has every non-terminal symbol already known productive.
func (g *Grammar) removeNonProductive() {
	productive := make(map[string]struct{})
	for {
		grew := false
		for _, nt := range g.OrderedNonTerminals() {
			if _, ok := productive[nt]; ok {
				continue
			}
			for _, p := range g.Rules[nt] {
				if productionIsProductive(p, productive) {
					productive[nt] = struct{}{}
					grew = true
					break
				}
			}
		}
		if !grew {
			break
		}
	}
	for _, nt := range g.OrderedNonTerminals() {
		if _, ok := productive[nt]; !ok {
			g.RemoveNonTerminal(nt)
		}
	}
	for _, nt := range g.OrderedNonTerminals() {
		g.SetProductions(nt, filterProductions(g.Rules[nt], func(p Production) bool {
			for _, s := range p {
				if s.IsNonTerminal() {
					if _, ok := g.NonTerminals[s.Name()]; !ok {
						return false
					}
				}
			}
			return true
		}))
	}
}

func productionIsProductive(p Production, productive map[string]struct{}) bool {
	for _, s := range p {
		if s.IsNonTerminal() {
			if _, ok := productive[s.Name()]; !ok {
				return false
			}
		}
	}
	return true
}

// removeUnreachable keeps only non-terminals reachable from Start by
// forward closure over production bodies.
func (g *Grammar) removeUnreachable() {
	if _, ok := g.NonTerminals[g.Start]; !ok {
		return
	}
	reachable := map[string]struct{}{g.Start: {}}
	queue := []string{g.Start}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, p := range g.Rules[nt] {
			for _, s := range p {
				if s.IsNonTerminal() {
					if _, ok := reachable[s.Name()]; !ok {
						reachable[s.Name()] = struct{}{}
						queue = append(queue, s.Name())
					}
				}
			}
		}
	}
	for _, nt := range g.OrderedNonTerminals() {
		if _, ok := reachable[nt]; !ok {
			g.RemoveNonTerminal(nt)
		}
	}
}

func toSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func referencesAny(p Production, names map[string]struct{}) bool {
	for _, s := range p {
		if s.IsNonTerminal() {
			if _, ok := names[s.Name()]; ok {
				return true
			}
		}
	}
	return false
}

func filterProductions(ps []Production, keep func(Production) bool) []Production {
	out := make([]Production, 0, len(ps))
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
