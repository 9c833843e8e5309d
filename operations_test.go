package dfa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_intersection(t *testing.T) {
	a := mustLoad(t, "testdata/two_ones.txt")
	b := mustLoad(t, "testdata/most_two_zeros.txt")

	both, err := IntersectionOf(a, b)
	assert.Nil(t, err)
	assert.Equal(t, a.NumStates()*b.NumStates(), both.NumStates())
	assert.Equal(t, "(a,x)", both.StartState().Label)

	min, err := Minimize(both, true)
	assert.Nil(t, err)
	assert.Equal(t, 10, min.NumStates())

	tests := map[string]bool{
		"1101": true, "1111100111": true, "010100": false,
		"1010": true, "0111111110": true, "1000001": false,
		"0": false, "": false, "1": false, "101": true, "11": true,
		"001": false, "0001": false, "00000": false,
	}
	for s, want := range tests {
		got, err := Run(both, s)
		assert.Nil(t, err)
		assert.Equalf(t, want, got, "both(%s)", s)

		got, err = Run(min, s)
		assert.Nil(t, err)
		assert.Equalf(t, want, got, "min(%s)", s)
	}

	assert.True(t, EquivalentTo(both, min))
}

func TestProduct(t *testing.T) {
	for i, a := range randomAutomata(3, 25) {
		for j, b := range randomAutomata(int64(100+i), 4) {
			inter, err := Product(a, b, Intersection)
			assert.Nil(t, err)
			union, err := Product(a, b, Union)
			assert.Nil(t, err)

			for _, w := range allStrings([]rune("ab"), 5) {
				assert.Equalf(t, a.Accepts(w) && b.Accepts(w), inter.Accepts(w), "%d/%d intersection(%q)", i, j, w)
				assert.Equalf(t, a.Accepts(w) || b.Accepts(w), union.Accepts(w), "%d/%d union(%q)", i, j, w)
			}
		}
	}
}

func TestProductAlphabetOrder(t *testing.T) {
	ab, err := defaultAutomata.MakeString([]rune("ab"), "ab")
	assert.Nil(t, err)
	ba, err := defaultAutomata.MakeString([]rune("ba"), "ab")
	assert.Nil(t, err)

	p, err := UnionOf(ab, ba)
	assert.Nil(t, err)
	assert.Equal(t, []rune("ab"), p.Alphabet())
	assert.True(t, p.Accepts("ab"))
	assert.False(t, p.Accepts("ba"))
	assert.True(t, EquivalentTo(ab, ba))
}

func TestProductAlphabetMismatch(t *testing.T) {
	a, err := defaultAutomata.MakeAnyString([]rune("ab"))
	assert.Nil(t, err)
	b, err := defaultAutomata.MakeAnyString([]rune("abc"))
	assert.Nil(t, err)

	_, err = Product(a, b, Union)
	assert.True(t, errors.Is(err, ErrAlphabetMismatch))

	_, err = SubLanguageOf(a, b)
	assert.True(t, errors.Is(err, ErrAlphabetMismatch))

	assert.False(t, EquivalentTo(a, b))
}

func TestPairLabel(t *testing.T) {
	assert.Equal(t, "(p,q)", pairLabel("p", "q"))
	assert.NotEqual(t, pairLabel("a,b", "c"), pairLabel("a", "b,c"))
	assert.NotEqual(t, pairLabel(`a\`, "b"), pairLabel("a", `\b`))
	assert.NotEqual(t, pairLabel("(a", "b)"), pairLabel("(a,b", ")"))
}

func TestComplement(t *testing.T) {
	a := mustLoad(t, "testdata/two_ones.txt")
	c := Complement(a)

	assert.Equal(t, a.NumStates(), c.NumStates())
	assert.Equal(t, a.Transitions(), c.Transitions())
	assert.Equal(t, a.Start(), c.Start())
	for i := 0; i < a.NumStates(); i++ {
		assert.NotEqual(t, a.IsAccept(i), c.IsAccept(i))
	}
	// a is untouched.
	assert.True(t, a.Accepts("11"))
	assert.False(t, c.Accepts("11"))

	assert.True(t, Complement(c).Equal(a))
	for _, x := range randomAutomata(5, 30) {
		assert.True(t, EquivalentTo(x, Complement(Complement(x))))
	}
}

func TestSubLanguageOf(t *testing.T) {
	alphabet := []rune("01")
	twoOnes := mustLoad(t, "testdata/two_ones.txt")
	all, err := defaultAutomata.MakeAnyString(alphabet)
	assert.Nil(t, err)
	none, err := defaultAutomata.MakeEmpty(alphabet)
	assert.Nil(t, err)
	word, err := defaultAutomata.MakeString(alphabet, "0110")
	assert.Nil(t, err)

	tests := []struct {
		name string
		a, b *Automaton
		want bool
	}{
		{"empty in anything", none, twoOnes, true},
		{"anything in all strings", twoOnes, all, true},
		{"all strings not in two ones", all, twoOnes, false},
		{"word in two ones", word, twoOnes, true},
		{"two ones not in word", twoOnes, word, false},
		{"reflexive", twoOnes, twoOnes, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubLanguageOf(tt.a, tt.b)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEquivalentTo(t *testing.T) {
	// Two inequivalent automata with n and m states disagree on some string shorter
	// than n+m, so comparing every string up to length 14 decides equivalence for
	// automata of at most 7 states.
	words := allStrings([]rune("ab"), 14)
	automata := randomAutomata(21, 12)
	verdicts := make([][]bool, len(automata))
	for i, a := range automata {
		for _, w := range words {
			verdicts[i] = append(verdicts[i], a.Accepts(w))
		}
	}

	for i, a := range automata {
		assert.True(t, EquivalentTo(a, a))
		for j, b := range automata {
			assert.Equalf(t, EquivalentTo(a, b), EquivalentTo(b, a), "%d vs %d", i, j)
			assert.Equalf(t, assert.ObjectsAreEqual(verdicts[i], verdicts[j]), EquivalentTo(a, b), "%d vs %d", i, j)
		}
	}

	a := mustLoad(t, "testdata/two_ones.txt")
	b := mustLoad(t, "testdata/most_two_zeros.txt")
	assert.False(t, EquivalentTo(a, b))
}
