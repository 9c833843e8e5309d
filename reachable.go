package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Reachable Returns the states reachable from the start state. The set grows by
// one frontier at a time: the image of the frontier under every symbol, minus what
// is already known, becomes the next frontier.
func Reachable(a *Automaton) *StateSet {
	n := uint(a.NumStates())
	reachable := bitset.New(n)
	frontier := bitset.New(n)
	reachable.Set(uint(a.start))
	frontier.Set(uint(a.start))

	for frontier.Any() {
		image := bitset.New(n)
		for s, ok := frontier.NextSet(0); ok; s, ok = frontier.NextSet(s + 1) {
			for k := range a.alphabet {
				image.Set(uint(a.step(int(s), k)))
			}
		}
		frontier = image.Difference(reachable)
		reachable.InPlaceUnion(frontier)
	}

	return newStateSetFrom(reachable)
}

// ReachableStates Returns the reachable states in index order.
func ReachableStates(a *Automaton) []State {
	set := Reachable(a)
	out := make([]State, 0, set.Size())
	for _, s := range set.GetArray() {
		out = append(out, a.states[s])
	}
	return out
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a.IsAccept(a.start) {
		// Common case: it accepts the empty string
		return false
	}
	for _, s := range Reachable(a).GetArray() {
		if a.IsAccept(s) {
			return false
		}
	}
	return true
}

// RemoveUnreachable Returns a copy of a without the states that cannot be reached
// from the start state. Labels and relative state order are preserved.
func RemoveUnreachable(a *Automaton) (*Automaton, error) {
	live := Reachable(a)
	if live.Size() == a.NumStates() {
		return a, nil
	}

	mp := make([]int, a.NumStates())
	b := NewBuilder(a.alphabet)
	for _, s := range live.GetArray() {
		mp[s] = b.CreateState(a.states[s].Label, a.states[s].Accepting)
	}
	b.SetStart(mp[a.start])

	for _, s := range live.GetArray() {
		for k := range a.alphabet {
			if err := b.addTransitionIndex(mp[s], k, mp[a.step(s, k)]); err != nil {
				return nil, err
			}
		}
	}
	return b.Finish()
}
