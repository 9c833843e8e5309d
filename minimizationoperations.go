package dfa

import (
	"strconv"
	"strings"

	u "github.com/araddon/gou"
)

// Minimize
// Minimizes the given automaton using Hopcroft's algorithm. Unreachable states are
// dropped first, then every Myhill-Nerode class of the remaining states becomes one
// state of the result. With simpleLabels the new states are labeled by class
// ordinal ("0", "1", ...); otherwise a class is labeled by concatenating its members'
// labels in ascending order. Concatenated labels are cosmetic and may collide, in
// which case an error wrapping ErrDuplicateLabel is returned. Callers that need a
// result for every valid automaton should pass simpleLabels.
func Minimize(a *Automaton, simpleLabels bool) (*Automaton, error) {
	reachable := Reachable(a)
	classes := Refine(a, reachable)

	b := NewBuilder(a.alphabet)
	classOf := make([]int, a.NumStates())
	for id, class := range classes {
		var label string
		if simpleLabels {
			label = strconv.Itoa(id)
		} else {
			var sb strings.Builder
			for _, s := range class {
				sb.WriteString(a.states[s].Label)
			}
			label = sb.String()
		}

		// All members share the accept flag.
		state := b.CreateState(label, a.IsAccept(class[0]))
		for _, s := range class {
			classOf[s] = state
			if s == a.start {
				b.SetStart(state)
			}
		}
	}

	for id, class := range classes {
		// Any member is a valid representative.
		rep := class[0]
		for k := range a.alphabet {
			if err := b.addTransitionIndex(id, k, classOf[a.step(rep, k)]); err != nil {
				return nil, err
			}
		}
	}

	m, err := b.Finish()
	if err != nil {
		return nil, err
	}
	u.Debugf("minimize: %d states, %d reachable, %d after refinement",
		a.NumStates(), reachable.Size(), m.NumStates())
	return m, nil
}
