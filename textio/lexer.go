// Package textio implements the textual adapters around the grammar-rewriting
// core: a tokenizer+reader pair that turns a .general/.chomsky/.greibach
// source file into a *cfgt.Grammar, and a writer that serializes one back.
package textio

import (
	"github.com/0x51-dev/upeg/parser"
	"github.com/0x51-dev/upeg/parser/op"
)

// Token classes, per spec: ':' rule separator, '|' alternative separator,
// [a-z] terminal, 'E' epsilon, [A-DF-Z][0-9] (internal whitespace
// tolerated) non-terminal, space/tab ignored between tokens, anything else
// a lexical error.
var (
	nonTerminalTok = op.Capture{
		Name: "NonTerminal",
		Value: op.And{
			op.Or{op.RuneRange{Min: 'A', Max: 'D'}, op.RuneRange{Min: 'F', Max: 'Z'}},
			op.ZeroOrMore{Value: op.Or{' ', '\t'}},
			op.RuneRange{Min: '0', Max: '9'},
		},
	}
	terminalTok = op.Capture{
		Name:  "Terminal",
		Value: op.RuneRange{Min: 'a', Max: 'z'},
	}
	epsilonTok = op.Capture{
		Name:  "Epsilon",
		Value: 'E',
	}
	alternative = op.Capture{
		Name: "Alt",
		Value: op.Or{
			op.OneOrMore{Value: op.Or{terminalTok, nonTerminalTok}},
			epsilonTok,
		},
	}
	rule = op.Capture{
		Name: "Rule",
		Value: op.And{
			nonTerminalTok,
			':',
			alternative,
			op.ZeroOrMore{Value: op.And{'|', alternative}},
			op.EndOfLine{},
		},
	}
	fileGrammar = op.Capture{
		Name: "Grammar",
		Value: op.And{
			op.ZeroOrMore{Value: op.EndOfLine{}},
			op.OneOrMore{Value: rule},
		},
	}
)

// tokenize runs the PEG grammar over src and returns the root parse node.
// A malformed character or rule shape surfaces as the underlying upeg
// parser error; callers classify it further (see reader.go).
func tokenize(src string) (*parser.Node, error) {
	p, err := parser.New([]rune(src))
	if err != nil {
		return nil, err
	}
	p.SetIgnoreList([]any{' ', '\t'})
	return p.Parse(op.And{fileGrammar, op.EOF{}})
}

// stripWhitespace removes the internal spaces/tabs the non-terminal token
// tolerates (e.g. "A  1" -> "A1"). The source format permits this; whether
// intentional or an oversight in the original tool is unclear, but the
// behavior is preserved here rather than rejected.
func stripWhitespace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
