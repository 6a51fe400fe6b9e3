// Command generator prints every terminal string of length <= N that a
// grammar file can derive, one per line, sorted ascending.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

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
		Use:   "generator <N> <file>",
		Short: "Enumerate the bounded-length word set of a grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return cfgt.NewError(cfgt.KindStructural, "generator", "N must be an integer: %v", err)
			}
			return run(n, args[1], cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func run(n int, path string, out io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return cfgt.WrapError(cfgt.KindResource, "generator", err)
	}

	g, err := textio.ReadString(string(src))
	if err != nil {
		return err
	}

	words := cfgt.Generate(g, n)
	if len(words) == 0 {
		fmt.Fprintln(os.Stderr, "advisory: grammar produces no words of length <=", n)
		return nil
	}
	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	return nil
}
