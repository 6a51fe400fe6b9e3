package cfgt

import "fmt"

// ToCNF returns a grammar equivalent to g (up to the bound enforced by
// Generate) in Chomsky Normal Form: every production matches A -> B C,
// A -> a, or start -> ε. g is not modified; ToCNF works on a copy.
//
// Pipeline: NewStart, liftTerminals, binarize, EliminateEpsilon,
// EliminateUnits, Cleanup.
func ToCNF(g *Grammar) (*Grammar, error) {
	out := g.Clone()
	out.NewStart()
	out.liftTerminals()
	if err := out.guardAll("terminal lifting"); err != nil {
		return nil, err
	}
	out.binarize()
	if err := out.guardAll("binarization"); err != nil {
		return nil, err
	}
	if err := out.EliminateEpsilon(); err != nil {
		return nil, err
	}
	if err := out.EliminateUnits(); err != nil {
		return nil, err
	}
	out.Cleanup()
	return out, nil
}

// liftTerminals is the TERM pass: every terminal appearing in a production
// of length >= 2 is replaced by a dedicated non-terminal T_a with the sole
// production T_a -> a. A terminal already alone on a length-1 production is
// left untouched.
func (g *Grammar) liftTerminals() {
	lifted := make(map[string]string) // terminal name -> T_a non-terminal name
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
			if len(p) < 2 {
				rewritten = append(rewritten, p)
				continue
			}
			next := make(Production, len(p))
			for i, s := range p {
				if s.IsTerminal() {
					next[i] = NT(liftedOf(s.Name()))
				} else {
					next[i] = s
				}
			}
			rewritten = append(rewritten, next)
		}
		g.SetProductions(nt, rewritten)
	}
}

// binarize is the BIN pass: every production of length >= 3,
// A -> X1 X2 ... Xk, is rewritten as a chain A -> X1 Y1, Y1 -> X2 Y2, ...,
// Y(k-2) -> X(k-1) Xk, with fresh non-terminals Yi. Chains with an
// identical right-tail are shared across productions to bound grammar
// growth.
func (g *Grammar) binarize() {
	tails := make(map[string]string) // tail key -> non-terminal deriving it

	tailOf := func(symbols []Symbol) string {
		key := tailKey(symbols)
		if nt, ok := tails[key]; ok {
			return nt
		}
		if len(symbols) == 2 {
			nt := g.Fresh()
			g.AddProduction(nt, Production{symbols[0], symbols[1]})
			tails[key] = nt
			return nt
		}
		rest := tailOf(symbols[1:])
		nt := g.Fresh()
		g.AddProduction(nt, Production{symbols[0], NT(rest)})
		tails[key] = nt
		return nt
	}

	for _, nt := range g.OrderedNonTerminals() {
		var rewritten []Production
		for _, p := range g.Rules[nt] {
			if len(p) < 3 {
				rewritten = append(rewritten, p)
				continue
			}
			tail := tailOf(p[1:])
			rewritten = append(rewritten, Production{p[0], NT(tail)})
		}
		g.SetProductions(nt, rewritten)
	}
}

func tailKey(symbols []Symbol) string {
	s := ""
	for _, sym := range symbols {
		s += fmt.Sprintf("%d:%s|", sym.Kind(), sym.Name())
	}
	return s
}

// IsCNF reports whether every production in g matches A -> B C, A -> a, or
// (only for the designated start symbol) start -> ε.
func IsCNF(g *Grammar) bool {
	for _, nt := range g.OrderedNonTerminals() {
		for _, p := range g.Rules[nt] {
			switch {
			case p.IsEpsilon():
				if nt != g.Start {
					return false
				}
			case len(p) == 1:
				if !p[0].IsTerminal() {
					return false
				}
			case len(p) == 2:
				if !p[0].IsNonTerminal() || !p[1].IsNonTerminal() {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}
