package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// StateSet is a set of state indices of one automaton.
type StateSet struct {
	bits *bitset.BitSet
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
	}
}

func newStateSetFrom(bits *bitset.BitSet) *StateSet {
	return &StateSet{bits: bits}
}

// Add inserts state and reports whether it was not already present.
func (s *StateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	return true
}

func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

// GetArray Returns the members in ascending order.
func (s *StateSet) GetArray() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func (s *StateSet) Equals(other *StateSet) bool {
	return s.bits.SymmetricDifferenceCardinality(other.bits) == 0
}
