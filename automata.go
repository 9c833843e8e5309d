package dfa

import (
	"fmt"
	"slices"
	"strconv"
)

// Automata builds small total automata over an explicit alphabet.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton with the empty language.
func (*Automata) MakeEmpty(alphabet []rune) (*Automaton, error) {
	return sink(alphabet, false)
}

// MakeAnyString
// Returns a new automaton that accepts all strings.
func (*Automata) MakeAnyString(alphabet []rune) (*Automaton, error) {
	return sink(alphabet, true)
}

func sink(alphabet []rune, accept bool) (*Automaton, error) {
	b := NewBuilder(alphabet)
	s := b.CreateState("0", accept)
	for _, c := range alphabet {
		if err := b.AddTransition(s, c, s); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (a *Automata) MakeEmptyString(alphabet []rune) (*Automaton, error) {
	return a.MakeString(alphabet, "")
}

// MakeString
// Returns a new automaton that accepts only s. States are labeled by the length of
// the prefix they have read, with a trailing dead state.
func (*Automata) MakeString(alphabet []rune, s string) (*Automaton, error) {
	b := NewBuilder(alphabet)
	word := []rune(s)
	for i := range word {
		b.CreateState(strconv.Itoa(i), false)
	}
	last := b.CreateState(strconv.Itoa(len(word)), true)
	dead := b.CreateState("dead", false)

	for i, want := range word {
		if !slices.Contains(alphabet, want) {
			return nil, fmt.Errorf("symbol %q is not in the alphabet", want)
		}
		for _, c := range alphabet {
			dest := dead
			if c == want {
				dest = i + 1
			}
			if err := b.AddTransition(i, c, dest); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range alphabet {
		if err := b.AddTransition(last, c, dead); err != nil {
			return nil, err
		}
		if err := b.AddTransition(dead, c, dead); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}
