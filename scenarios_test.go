package cfgt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgt "github.com/uvsq22201695/CFG-Transformer"
	"github.com/uvsq22201695/CFG-Transformer/textio"
)

// checkLanguagePreservation is the central correctness property from the
// spec: generate(CNF(G), N) = generate(GNF(G), N) = generate(G, N).
func checkLanguagePreservation(t *testing.T, src string, n int, want []string) {
	t.Helper()

	g, err := textio.ReadString(src)
	require.NoError(t, err)

	plain := cfgt.Generate(g, n)
	assert.Equal(t, want, plain, "generate(G, N)")

	cnf, err := cfgt.ToCNF(g)
	require.NoError(t, err)
	assert.True(t, cfgt.IsCNF(cnf))
	assert.Equal(t, want, cfgt.Generate(cnf, n), "generate(CNF(G), N)")

	gnf, err := cfgt.ToGNF(g)
	require.NoError(t, err)
	assert.True(t, cfgt.IsGNF(gnf))
	assert.Equal(t, want, cfgt.Generate(gnf, n), "generate(GNF(G), N)")
}

// The grammar's language is, for every k >= 0, a^k X b^k with X chosen
// independently from C1's alternatives {c, ε}; at N=4 that's the five
// strings below (a^2 c b^2 is length 5 and falls outside the bound).
func TestScenario1_AnCBn(t *testing.T) {
	const src = "S0 : A1S0B1 | C1\nA1 : a\nB1 : b\nC1 : c | E\n"
	checkLanguagePreservation(t, src, 4, []string{"", "aabb", "ab", "acb", "c"})
}

// S0 generates every palindrome over {a, b}; at N=3 that includes the
// length-2 palindromes aa and bb alongside the odd-length ones.
func TestScenario2_Palindromes(t *testing.T) {
	const src = "S0 : A1S0A1 | B1S0B1 | E | A1 | B1\nA1 : a\nB1 : b\n"
	checkLanguagePreservation(t, src, 3, []string{"", "a", "aa", "aaa", "aba", "b", "bab", "bb", "bbb"})
}

func TestScenario3_EpsilonOnlyStart(t *testing.T) {
	const src = "S0 : E\n"
	g, err := textio.ReadString(src)
	require.NoError(t, err)

	cnf, err := cfgt.ToCNF(g)
	require.NoError(t, err)
	gnf, err := cfgt.ToGNF(g)
	require.NoError(t, err)

	assert.Equal(t, []string{""}, cfgt.Generate(g, 5))
	assert.Equal(t, []string{""}, cfgt.Generate(cnf, 5))
	assert.Equal(t, []string{""}, cfgt.Generate(gnf, 5))
}

func TestScenario4_EmptyLanguageAfterCleanup(t *testing.T) {
	const src = "S0 : A1\nA1 : A1a\n"
	g, err := textio.ReadString(src)
	require.NoError(t, err)

	assert.Empty(t, cfgt.Generate(g, 5))

	cnf, err := cfgt.ToCNF(g)
	require.NoError(t, err)
	assert.Empty(t, cfgt.Generate(cnf, 5))

	gnf, err := cfgt.ToGNF(g)
	require.NoError(t, err)
	assert.Empty(t, cfgt.Generate(gnf, 5))
}

func TestScenario5_LeftRecursion(t *testing.T) {
	const src = "S0 : S0A1 | A1\nA1 : a\n"
	checkLanguagePreservation(t, src, 3, []string{"a", "aa", "aaa"})
}

func TestScenario6_UnitChain(t *testing.T) {
	const src = "S0 : A1\nA1 : B1\nB1 : a | b\n"
	checkLanguagePreservation(t, src, 1, []string{"a", "b"})
}

func TestReaderRejectsUndefinedReference(t *testing.T) {
	const src = "S0 : A1\n"
	_, err := textio.ReadString(src)
	require.Error(t, err)

	var cfgErr *cfgt.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfgt.KindReference, cfgErr.Kind)
}

func TestWriterReaderRoundTrip(t *testing.T) {
	const src = "S0 : A1S0B1 | C1\nA1 : a\nB1 : b\nC1 : c | E\n"
	g, err := textio.ReadString(src)
	require.NoError(t, err)

	out := textio.WriteString(g)
	g2, err := textio.ReadString(out)
	require.NoError(t, err)

	assert.Equal(t, cfgt.Generate(g, 4), cfgt.Generate(g2, 4))
}
