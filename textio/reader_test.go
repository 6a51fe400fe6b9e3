package textio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgt "github.com/uvsq22201695/CFG-Transformer"
)

func TestReadStringBasicGrammar(t *testing.T) {
	const src = "S0 : A1S0B1 | C1\nA1 : a\nB1 : b\nC1 : c | E\n"

	g, err := ReadString(src)
	require.NoError(t, err)

	assert.Equal(t, "S0", g.Start)
	assert.ElementsMatch(t, []string{"S0", "A1", "B1", "C1"}, g.OrderedNonTerminals())
	assert.Len(t, g.Rules["S0"], 2)
	assert.Equal(t, cfgt.Production{cfgt.NT("A1"), cfgt.NT("S0"), cfgt.NT("B1")}, g.Rules["S0"][0])
	assert.Equal(t, cfgt.Production{cfgt.NT("C1")}, g.Rules["S0"][1])
	assert.Contains(t, g.Rules["C1"], cfgt.Production{cfgt.Epsilon})
}

func TestReadStringRepeatedLHSAccumulates(t *testing.T) {
	const src = "S0 : a\nS0 : b\n"

	g, err := ReadString(src)
	require.NoError(t, err)
	assert.Len(t, g.Rules["S0"], 2)
}

func TestReadStringToleratesInternalWhitespaceInNonTerminal(t *testing.T) {
	const src = "S 0 : A 1\nA 1 : a\n"

	g, err := ReadString(src)
	require.NoError(t, err)
	assert.Equal(t, "S0", g.Start)
	assert.Contains(t, g.OrderedNonTerminals(), "A1")
}

func TestReadStringUndefinedReferenceIsReferenceError(t *testing.T) {
	const src = "S0 : A1\n"

	_, err := ReadString(src)
	require.Error(t, err)

	var cfgErr *cfgt.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfgt.KindReference, cfgErr.Kind)
}

func TestReadStringMalformedCharacterIsLexicalError(t *testing.T) {
	const src = "S0 : a1#\n"

	_, err := ReadString(src)
	require.Error(t, err)

	var cfgErr *cfgt.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, cfgt.KindLexical, cfgErr.Kind)
}

func TestReadStringEpsilonCannotShareAlternative(t *testing.T) {
	const src = "S0 : aE\n"

	_, err := ReadString(src)
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	const src = "S0 : a\n"
	g, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "S0", g.Start)
}
