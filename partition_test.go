package dfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// endsInA accepts strings over {a,b} ending in a, with s~v and t~t2.
const endsInA = `ab
4
s 0
t 1
t2 1
v 0
s
s a t
s b v
t a t2
t b v
t2 a t
t2 b s
v a t2
v b v
`

func TestRefine(t *testing.T) {
	t.Run("merges equivalent states", func(t *testing.T) {
		a, err := Load(strings.NewReader(endsInA))
		assert.Nil(t, err)
		assert.Equal(t, [][]int{{0, 3}, {1, 2}}, Refine(a, Reachable(a)))
	})

	t.Run("already minimal", func(t *testing.T) {
		a := mustLoad(t, "testdata/two_ones.txt")
		assert.Equal(t, [][]int{{0}, {1}, {2}}, Refine(a, Reachable(a)))
	})

	t.Run("no accepting states", func(t *testing.T) {
		a, err := defaultAutomata.MakeEmpty([]rune("ab"))
		assert.Nil(t, err)
		assert.Equal(t, [][]int{{0}}, Refine(a, Reachable(a)))
	})

	t.Run("empty subset", func(t *testing.T) {
		a := mustLoad(t, "testdata/two_ones.txt")
		assert.Nil(t, Refine(a, NewStateSet(a.NumStates())))
	})
}

// signatures maps each reachable state to its acceptance of every string of length
// at most NumStates, which is enough to tell any two inequivalent states apart.
func signatures(a *Automaton) map[string]struct{} {
	words := allStrings(a.alphabet, a.NumStates())
	out := make(map[string]struct{})
	for _, s := range Reachable(a).GetArray() {
		var sb strings.Builder
		for _, w := range words {
			state := s
			for _, c := range w {
				state = a.step(state, a.symbols[c])
			}
			if a.IsAccept(state) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		out[sb.String()] = struct{}{}
	}
	return out
}

func TestRefineIsCoarsest(t *testing.T) {
	for i, a := range randomAutomata(7, 60) {
		classes := Refine(a, Reachable(a))
		assert.Equalf(t, len(signatures(a)), len(classes), "automaton %d:\n%v", i, a)

		seen := make(map[int]bool)
		for _, class := range classes {
			assert.NotEmpty(t, class)
			for _, s := range class {
				assert.False(t, seen[s], "state %d in two classes", s)
				seen[s] = true
				assert.Equal(t, a.IsAccept(class[0]), a.IsAccept(s))
			}
		}
		assert.Equal(t, Reachable(a).Size(), len(seen))
	}
}
