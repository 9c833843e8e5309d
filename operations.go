package dfa

import (
	"fmt"
	"strings"

	u "github.com/araddon/gou"
)

// Mode selects how a product automaton combines the accept flags of its components.
type Mode int

const (
	Intersection = Mode(iota) // accept when both components accept
	Union                     // accept when either component accepts
)

func (m Mode) String() string {
	switch m {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) accept(p, q bool) bool {
	if m == Union {
		return p || q
	}
	return p && q
}

var pairLabelEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `(`, `\(`, `)`, `\)`)

// pairLabel labels the product state (p, q). Escaping the separators keeps the
// pairing injective for arbitrary component labels.
func pairLabel(p, q string) string {
	return "(" + pairLabelEscaper.Replace(p) + "," + pairLabelEscaper.Replace(q) + ")"
}

// Product Returns the synchronized product of a and b. Its states are all pairs
// (p, q) with p from a and q from b, in a-major order, and its alphabet is a's.
// Both automata must be over the same set of symbols.
func Product(a, b *Automaton, mode Mode) (*Automaton, error) {
	if !a.SameAlphabet(b) {
		return nil, fmt.Errorf("%s of %q and %q: %w", mode, string(a.alphabet), string(b.alphabet), ErrAlphabetMismatch)
	}

	// b's alphabet index for each of a's alphabet positions
	bSymbol := make([]int, len(a.alphabet))
	for k, c := range a.alphabet {
		bSymbol[k] = b.symbols[c]
	}

	nb := b.NumStates()
	builder := NewBuilder(a.alphabet)
	for _, p := range a.states {
		for _, q := range b.states {
			builder.CreateState(pairLabel(p.Label, q.Label), mode.accept(p.Accepting, q.Accepting))
		}
	}
	builder.SetStart(a.start*nb + b.start)

	for p := range a.states {
		for q := range b.states {
			for k := range a.alphabet {
				dest := a.step(p, k)*nb + b.step(q, bSymbol[k])
				if err := builder.addTransitionIndex(p*nb+q, k, dest); err != nil {
					return nil, err
				}
			}
		}
	}

	result, err := builder.Finish()
	if err != nil {
		return nil, err
	}
	u.Debugf("%s: %d x %d -> %d states", mode, a.NumStates(), nb, result.NumStates())
	return result, nil
}

// IntersectionOf is Product with Intersection.
func IntersectionOf(a, b *Automaton) (*Automaton, error) {
	return Product(a, b, Intersection)
}

// UnionOf is Product with Union.
func UnionOf(a, b *Automaton) (*Automaton, error) {
	return Product(a, b, Union)
}

// Complement Returns an automaton with the same states, alphabet and transitions as
// a but with every accept flag inverted.
func Complement(a *Automaton) *Automaton {
	states := make([]State, len(a.states))
	for i, s := range a.states {
		states[i] = State{Label: s.Label, Accepting: !s.Accepting}
	}
	return &Automaton{
		states:   states,
		alphabet: append([]rune(nil), a.alphabet...),
		symbols:  a.symbols,
		labels:   a.labels,
		start:    a.start,
		delta:    append([]int(nil), a.delta...),
	}
}

// SubLanguageOf Returns true if every string accepted by a is also accepted by b,
// that is if a ∩ ¬b accepts nothing.
func SubLanguageOf(a, b *Automaton) (bool, error) {
	p, err := Product(a, Complement(b), Intersection)
	if err != nil {
		return false, err
	}
	return IsEmpty(p), nil
}

// EquivalentTo Returns true if a and b accept the same language. Automata over
// different symbol sets are never equivalent.
func EquivalentTo(a, b *Automaton) bool {
	if !a.SameAlphabet(b) {
		return false
	}
	ab, err := SubLanguageOf(a, b)
	if err != nil || !ab {
		return false
	}
	ba, err := SubLanguageOf(b, a)
	return err == nil && ba
}
