package cfgt

import "testing"

func TestFreshNameGeneratorSkipsE(t *testing.T) {
	g := NewGrammar("S0")
	g.AddNonTerminal("S0")
	for i := 0; i < 30; i++ {
		name := g.Fresh()
		if name[0] == 'E' {
			t.Fatalf("fresh name %q used the reserved epsilon letter", name)
		}
	}
}

func TestFreshNameGeneratorNeverCollides(t *testing.T) {
	g := NewGrammar("S0")
	g.AddNonTerminal("S0")
	g.AddNonTerminal("A1")
	g.AddNonTerminal("B1")
	seen := map[string]bool{"S0": true, "A1": true, "B1": true}
	for i := 0; i < 60; i++ {
		name := g.Fresh()
		if seen[name] {
			t.Fatalf("fresh name %q collided with an existing non-terminal", name)
		}
		seen[name] = true
	}
}

func TestAddProductionDeduplicates(t *testing.T) {
	g := NewGrammar("S0")
	g.AddNonTerminal("S0")
	g.AddProduction("S0", Production{Term("a")})
	g.AddProduction("S0", Production{Term("a")})
	if len(g.Rules["S0"]) != 1 {
		t.Fatalf("expected duplicate production to be dropped, got %v", g.Rules["S0"])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrammar("S0")
	g.AddNonTerminal("S0")
	g.AddProduction("S0", Production{Term("a")})

	clone := g.Clone()
	clone.AddProduction("S0", Production{Term("b")})

	if len(g.Rules["S0"]) != 1 {
		t.Fatalf("mutating the clone affected the original: %v", g.Rules["S0"])
	}
	if len(clone.Rules["S0"]) != 2 {
		t.Fatalf("expected 2 productions on the clone, got %v", clone.Rules["S0"])
	}
}

func TestSortedNonTerminals(t *testing.T) {
	g := NewGrammar("S0")
	for _, nt := range []string{"S0", "B1", "A1"} {
		g.AddNonTerminal(nt)
	}
	got := g.SortedNonTerminals()
	want := []string{"A1", "B1", "S0"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
