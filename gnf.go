package cfgt

// MaxRuleListSize guards against pathological grammars: any non-terminal
// whose rule list grows past this count during a transformation aborts the
// pass with a Resource error rather than exhausting memory. Callers may
// lower it for tighter budgets; the zero value disables the guard.
var MaxRuleListSize = 20000

// ToGNF returns a grammar equivalent to g (up to the bound enforced by
// Generate) in Greibach Normal Form: every production matches
// A -> a X1 ... Xk (k >= 0, each Xi a non-terminal) or start -> ε. g is not
// modified; ToGNF works on a copy.
//
// Pipeline: NewStart, EliminateEpsilon, EliminateUnits,
// EliminateLeftRecursion, unfold heads, lift mid-body terminals, Cleanup.
func ToGNF(g *Grammar) (*Grammar, error) {
	out := g.Clone()
	out.NewStart()
	if err := out.EliminateEpsilon(); err != nil {
		return nil, err
	}
	if err := out.EliminateUnits(); err != nil {
		return nil, err
	}
	if err := out.EliminateLeftRecursion(); err != nil {
		return nil, err
	}
	if err := out.unfoldHeads(); err != nil {
		return nil, err
	}
	out.liftMidTerminals()
	out.Cleanup()
	return out, nil
}

// EliminateLeftRecursion rewrites g in place so that no non-terminal is
// left-recursive, directly or indirectly, following the non-terminals in
// their current insertion order as the total order the algorithm requires.
//
// For each Ai in turn: first, every production Ai -> Aj γ with j < i is
// replaced by Ai -> δ γ for each current production Aj -> δ (this removes
// indirect recursion through earlier non-terminals); then direct recursion
// on Ai itself is removed by splitting into a fresh Ai' pair. If Ai is left
// with no non-recursive productions, it is left empty; Cleanup removes it.
func (g *Grammar) EliminateLeftRecursion() error {
	order := g.OrderedNonTerminals()

	for i, ai := range order {
		for j := 0; j < i; j++ {
			aj := order[j]
			var rewritten []Production
			for _, p := range g.Rules[ai] {
				if headIs(p, aj) {
					gamma := p[1:]
					for _, delta := range g.Rules[aj] {
						rewritten = append(rewritten, concatProd(delta, gamma))
					}
				} else {
					rewritten = append(rewritten, p)
				}
			}
			g.SetProductions(ai, rewritten)
			if err := g.guardSize(ai, "left-recursion elimination"); err != nil {
				return err
			}
		}

		var recursive, nonRecursive []Production
		for _, p := range g.Rules[ai] {
			if headIs(p, ai) {
				recursive = append(recursive, p[1:])
			} else {
				nonRecursive = append(nonRecursive, p)
			}
		}
		if len(recursive) == 0 {
			continue
		}

		aiPrime := g.Fresh()
		var newAi []Production
		for _, beta := range nonRecursive {
			newAi = append(newAi, concatProd(beta, Production{NT(aiPrime)}))
			newAi = append(newAi, beta)
		}
		g.SetProductions(ai, newAi)

		var newAiPrime []Production
		for _, alpha := range recursive {
			newAiPrime = append(newAiPrime, concatProd(alpha, Production{NT(aiPrime)}))
			newAiPrime = append(newAiPrime, alpha)
		}
		g.SetProductions(aiPrime, newAiPrime)
	}
	return nil
}

func headIs(p Production, nt string) bool {
	return len(p) > 0 && p[0].IsNonTerminal() && p[0].Name() == nt
}

// concatProd concatenates a and b into a single production body. An
// epsilon-only a contributes nothing (its sole symbol is deleted, not
// concatenated, preserving the invariant that Epsilon never shares a body
// with another symbol); if the result would be empty, it is the epsilon
// production.
func concatProd(a, b Production) Production {
	var out Production
	if !a.IsEpsilon() {
		out = append(out, a...)
	}
	out = append(out, b...)
	if len(out) == 0 {
		return Production{Epsilon}
	}
	return out
}

// unfoldHeads is the head non-terminal unfolding pass: repeat to fixpoint,
// for every production A -> B γ whose head B is a non-terminal, replace it
// with A -> δ γ for each production B -> δ. An epsilon-headed δ degenerates
// the result to A -> γ, which is re-unfolded on the next round if γ itself
// starts with a non-terminal.
//
// Left-recursion elimination is supposed to preclude cycles here, but
// indirect cycles through epsilon-nullable intermediates can in principle
// recur; iterations are capped and a cap breach is reported as an Invariant
// error rather than looping forever.
func (g *Grammar) unfoldHeads() error {
	maxRounds := 64 + 4*totalProductions(g)

	for round := 0; ; round++ {
		changed := false
		for _, nt := range g.OrderedNonTerminals() {
			var rewritten []Production
			for _, p := range g.Rules[nt] {
				if len(p) == 0 || !p[0].IsNonTerminal() {
					rewritten = append(rewritten, p)
					continue
				}
				changed = true
				head := p[0].Name()
				gamma := p[1:]
				for _, delta := range g.Rules[head] {
					rewritten = append(rewritten, concatProd(delta, gamma))
				}
			}
			g.SetProductions(nt, rewritten)
			if err := g.guardSize(nt, "head unfolding"); err != nil {
				return err
			}
		}
		if !changed {
			return nil
		}
		if round >= maxRounds {
			return newErr(KindInvariant, "head unfolding", "failed to converge after %d rounds", maxRounds)
		}
	}
}

// liftMidTerminals is the mid-terminal lifting pass: every terminal that
// appears anywhere other than the head of a production is replaced by a
// fresh non-terminal T_a (shared across all such occurrences of a) with the
// sole production T_a -> a.
func (g *Grammar) liftMidTerminals() {
	lifted := make(map[string]string)
	liftedOf := func(term string) string {
		if nt, ok := lifted[term]; ok {
			return nt
		}
		nt := g.Fresh()
		g.AddProduction(nt, Production{Term(term)})
		lifted[term] = nt
		return nt
	}

	for _, nt := range g.OrderedNonTerminals() {
		var rewritten []Production
		for _, p := range g.Rules[nt] {
			if len(p) <= 1 {
				rewritten = append(rewritten, p)
				continue
			}
			next := make(Production, len(p))
			next[0] = p[0]
			for i := 1; i < len(p); i++ {
				if p[i].IsTerminal() {
					next[i] = NT(liftedOf(p[i].Name()))
				} else {
					next[i] = p[i]
				}
			}
			rewritten = append(rewritten, next)
		}
		g.SetProductions(nt, rewritten)
	}
}

func totalProductions(g *Grammar) int {
	n := 0
	for _, ps := range g.Rules {
		n += len(ps)
	}
	return n
}

func (g *Grammar) guardSize(nt, pass string) error {
	if MaxRuleListSize <= 0 {
		return nil
	}
	if len(g.Rules[nt]) > MaxRuleListSize {
		return newErr(KindResource, pass, "rule list for %s exceeds guard of %d productions", nt, MaxRuleListSize)
	}
	return nil
}

// guardAll checks every non-terminal's rule list against MaxRuleListSize,
// naming pass in the resulting error.
func (g *Grammar) guardAll(pass string) error {
	for _, nt := range g.OrderedNonTerminals() {
		if err := g.guardSize(nt, pass); err != nil {
			return err
		}
	}
	return nil
}

// IsGNF reports whether every production in g matches A -> a X1 ... Xk
// (k >= 0, each Xi a non-terminal) or (only for the designated start
// symbol) start -> ε.
func IsGNF(g *Grammar) bool {
	for _, nt := range g.OrderedNonTerminals() {
		for _, p := range g.Rules[nt] {
			if p.IsEpsilon() {
				if nt != g.Start {
					return false
				}
				continue
			}
			if !p[0].IsTerminal() {
				return false
			}
			for _, s := range p[1:] {
				if !s.IsNonTerminal() {
					return false
				}
			}
		}
	}
	return true
}
