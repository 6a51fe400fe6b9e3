package textio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgt "github.com/uvsq22201695/CFG-Transformer"
)

func TestWriteStringStartLineComesFirst(t *testing.T) {
	g := cfgt.NewGrammar("S0")
	g.AddNonTerminal("S0")
	g.AddNonTerminal("A1")
	g.AddProduction("S0", cfgt.Production{cfgt.NT("A1")})
	g.AddProduction("A1", cfgt.Production{cfgt.Term("a")})

	out := WriteString(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "S0 :"))
	assert.True(t, strings.HasPrefix(lines[1], "A1 :"))
}

func TestWriteStringEpsilon(t *testing.T) {
	g := cfgt.NewGrammar("S0")
	g.AddNonTerminal("S0")
	g.AddProduction("S0", cfgt.Production{cfgt.Epsilon})

	assert.Equal(t, "S0 : E\n", WriteString(g))
}

func TestWriteStringAlternativesJoinedWithPipe(t *testing.T) {
	g := cfgt.NewGrammar("S0")
	g.AddNonTerminal("S0")
	g.AddProduction("S0", cfgt.Production{cfgt.Term("a")})
	g.AddProduction("S0", cfgt.Production{cfgt.Term("b")})

	assert.Equal(t, "S0 : a | b\n", WriteString(g))
}

func TestWriteThenReadRoundTripsLanguage(t *testing.T) {
	g := cfgt.NewGrammar("S0")
	for _, nt := range []string{"S0", "A1", "B1", "C1"} {
		g.AddNonTerminal(nt)
	}
	g.AddProduction("S0", cfgt.Production{cfgt.NT("A1"), cfgt.NT("S0"), cfgt.NT("B1")})
	g.AddProduction("S0", cfgt.Production{cfgt.NT("C1")})
	g.AddProduction("A1", cfgt.Production{cfgt.Term("a")})
	g.AddProduction("B1", cfgt.Production{cfgt.Term("b")})
	g.AddProduction("C1", cfgt.Production{cfgt.Term("c")})
	g.AddProduction("C1", cfgt.Production{cfgt.Epsilon})

	out := WriteString(g)
	g2, err := ReadString(out)
	require.NoError(t, err)

	assert.Equal(t, cfgt.Generate(g, 4), cfgt.Generate(g2, 4))
}
