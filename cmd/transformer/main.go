// Command transformer reads a .general grammar file and writes its
// Chomsky Normal Form and Greibach Normal Form alongside it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cfgt "github.com/uvsq22201695/CFG-Transformer"
	"github.com/uvsq22201695/CFG-Transformer/textio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transformer <file.general>",
		Short: "Normalize a context-free grammar to CNF and GNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func run(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return cfgt.WrapError(cfgt.KindResource, "transformer", err)
	}

	g, err := textio.ReadString(string(src))
	if err != nil {
		return err
	}

	cnf, err := cfgt.ToCNF(g)
	if err != nil {
		return err
	}
	gnf, err := cfgt.ToGNF(g)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	if err := writeFile(base+".chomsky", cnf); err != nil {
		return err
	}
	if err := writeFile(base+".greibach", gnf); err != nil {
		return err
	}
	return nil
}

func writeFile(path string, g *cfgt.Grammar) error {
	f, err := os.Create(path)
	if err != nil {
		return cfgt.WrapError(cfgt.KindResource, "transformer", err)
	}
	defer f.Close()
	if err := textio.Write(f, g); err != nil {
		return cfgt.WrapError(cfgt.KindResource, "transformer", err)
	}
	return nil
}
