package textio

import (
	"fmt"
	"io"
	"strings"

	cfgt "github.com/uvsq22201695/CFG-Transformer"
)

// WriteString serializes g back to the line-oriented grammar text format:
// the start non-terminal's line comes first, followed by the remaining
// non-terminals in lexicographic order; within a line, alternatives are
// joined by " | " and within an alternative symbols are concatenated with
// no separator, with epsilon written as "E".
func WriteString(g *cfgt.Grammar) string {
	var b strings.Builder
	writeLine(&b, g, g.Start)
	for _, nt := range g.SortedNonTerminals() {
		if nt == g.Start {
			continue
		}
		writeLine(&b, g, nt)
	}
	return b.String()
}

// Write serializes g to w in the same format as WriteString.
func Write(w io.Writer, g *cfgt.Grammar) error {
	_, err := io.WriteString(w, WriteString(g))
	return err
}

func writeLine(b *strings.Builder, g *cfgt.Grammar, nt string) {
	fmt.Fprintf(b, "%s :", nt)
	for i, p := range g.Rules[nt] {
		if i > 0 {
			b.WriteString(" |")
		}
		b.WriteString(" ")
		b.WriteString(symbolString(p))
	}
	b.WriteString("\n")
}

func symbolString(p cfgt.Production) string {
	if p.IsEpsilon() {
		return "E"
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.Name())
	}
	return b.String()
}
