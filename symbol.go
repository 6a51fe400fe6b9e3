// Package cfgt reads, normalizes, and enumerates context-free grammars.
//
// A grammar is built from Symbols (non-terminals, terminals, and epsilon),
// assembled into Productions, and held by a Grammar. The package exposes two
// normalization pipelines, ToCNF and ToGNF, and a bounded word generator,
// Generate.
package cfgt

import "fmt"

// Kind classifies a Symbol.
type Kind int

const (
	// NonTerminal symbols carry a short identifier such as "S0" or "A1".
	NonTerminal Kind = iota
	// Terminal symbols carry a single lowercase letter.
	Terminal
	// Eps is the empty-string symbol. It never carries a name and never
	// shares a production body with another symbol.
	Eps
)

func (k Kind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	case Eps:
		return "epsilon"
	default:
		return "unknown"
	}
}

// Symbol is a single tagged element of a production body: a non-terminal, a
// terminal, or epsilon. The zero value is not a valid Symbol; use NT, Term,
// or Epsilon to construct one.
type Symbol struct {
	kind Kind
	name string
}

// NT builds a non-terminal Symbol with the given name.
func NT(name string) Symbol { return Symbol{kind: NonTerminal, name: name} }

// Term builds a terminal Symbol with the given name.
func Term(name string) Symbol { return Symbol{kind: Terminal, name: name} }

// Epsilon is the empty-string symbol.
var Epsilon = Symbol{kind: Eps}

// Kind reports whether the symbol is a non-terminal, terminal, or epsilon.
func (s Symbol) Kind() Kind { return s.kind }

// Name returns the symbol's identifier. It is empty for Epsilon.
func (s Symbol) Name() string { return s.name }

// IsNonTerminal reports whether s is a non-terminal.
func (s Symbol) IsNonTerminal() bool { return s.kind == NonTerminal }

// IsTerminal reports whether s is a terminal.
func (s Symbol) IsTerminal() bool { return s.kind == Terminal }

// IsEpsilon reports whether s is the empty-string symbol.
func (s Symbol) IsEpsilon() bool { return s.kind == Eps }

// Equal reports whether s and other denote the same symbol.
func (s Symbol) Equal(other Symbol) bool {
	return s.kind == other.kind && s.name == other.name
}

func (s Symbol) String() string {
	switch s.kind {
	case Eps:
		return "E"
	default:
		return s.name
	}
}

func (s Symbol) GoString() string {
	return fmt.Sprintf("Symbol{kind:%v, name:%q}", s.kind, s.name)
}
