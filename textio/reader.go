package textio

import (
	"io"
	"strings"

	"github.com/0x51-dev/upeg/parser"

	cfgt "github.com/uvsq22201695/CFG-Transformer"
)

// ReadString parses src (the full contents of a .general/.chomsky/.greibach
// file) into a Grammar. The first non-terminal encountered in the file
// becomes the grammar's start symbol; a left-hand side seen more than once
// accumulates productions onto the same non-terminal. After parsing, every
// non-terminal referenced on a right-hand side but never defined raises a
// Reference error, and Grammar.Cleanup runs before the grammar is returned.
func ReadString(src string) (*cfgt.Grammar, error) {
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		_, rhs, ok := strings.Cut(line, ":")
		if !ok {
			return nil, cfgt.NewError(cfgt.KindStructural, "reader", "missing ':' in rule line %q", strings.TrimSpace(line))
		}
		for _, alt := range strings.Split(rhs, "|") {
			if strings.TrimSpace(alt) == "" {
				return nil, cfgt.NewError(cfgt.KindStructural, "reader", "empty alternative in rule line %q", strings.TrimSpace(line))
			}
		}
	}
	root, err := tokenize(src)
	if err != nil {
		return nil, cfgt.WrapError(cfgt.KindLexical, "tokenizer", err)
	}
	g, err := buildGrammar(root)
	if err != nil {
		return nil, err
	}
	g.Cleanup()
	return g, nil
}

// Read parses the full contents of r as a grammar source file.
func Read(r io.Reader) (*cfgt.Grammar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cfgt.WrapError(cfgt.KindStructural, "reader", err)
	}
	return ReadString(string(data))
}

func buildGrammar(root *parser.Node) (*cfgt.Grammar, error) {
	if root == nil || root.Name != "Grammar" {
		return nil, cfgt.NewError(cfgt.KindStructural, "reader", "expected a Grammar node")
	}

	var g *cfgt.Grammar
	defined := make(map[string]struct{})
	referenced := make(map[string]struct{})

	for _, ruleNode := range root.Children() {
		if ruleNode.Name != "Rule" {
			return nil, cfgt.NewError(cfgt.KindStructural, "reader", "expected a Rule node, got %s", ruleNode.Name)
		}
		children := ruleNode.Children()
		if len(children) < 2 {
			return nil, cfgt.NewError(cfgt.KindStructural, "reader", "rule has no alternatives")
		}
		lhs := stripWhitespace(children[0].Value())
		if g == nil {
			g = cfgt.NewGrammar(lhs)
		}
		g.AddNonTerminal(lhs)
		defined[lhs] = struct{}{}

		for _, altNode := range children[1:] {
			if altNode.Name != "Alt" {
				return nil, cfgt.NewError(cfgt.KindStructural, "reader", "expected an Alt node, got %s", altNode.Name)
			}
			prod, err := buildProduction(altNode)
			if err != nil {
				return nil, err
			}
			for _, s := range prod {
				if s.IsNonTerminal() {
					referenced[s.Name()] = struct{}{}
				}
			}
			g.AddProduction(lhs, prod)
		}
	}
	if g == nil {
		return nil, cfgt.NewError(cfgt.KindStructural, "reader", "empty grammar source")
	}

	for nt := range referenced {
		if _, ok := defined[nt]; !ok {
			return nil, cfgt.NewError(cfgt.KindReference, "reader", "non-terminal %s is referenced but never defined", nt)
		}
	}
	return g, nil
}

func buildProduction(altNode *parser.Node) (cfgt.Production, error) {
	children := altNode.Children()
	if len(children) == 1 && children[0].Name == "Epsilon" {
		return cfgt.Production{cfgt.Epsilon}, nil
	}
	if len(children) == 0 {
		return nil, cfgt.NewError(cfgt.KindStructural, "reader", "empty alternative")
	}
	prod := make(cfgt.Production, 0, len(children))
	for _, c := range children {
		switch c.Name {
		case "Terminal":
			prod = append(prod, cfgt.Term(c.Value()))
		case "NonTerminal":
			prod = append(prod, cfgt.NT(stripWhitespace(c.Value())))
		case "Epsilon":
			return nil, cfgt.NewError(cfgt.KindStructural, "reader", "epsilon cannot share an alternative with other symbols")
		default:
			return nil, cfgt.NewError(cfgt.KindStructural, "reader", "unexpected symbol node %s", c.Name)
		}
	}
	return prod, nil
}
