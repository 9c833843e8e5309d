package dfa

import (
	"slices"
	"strings"
)

// partition is a set partition of a subset of an automaton's states. classOf maps a
// state index to its class id (-1 for states outside the subset) and classes maps a
// class id to its members.
type partition struct {
	classOf []int
	classes [][]int
}

func newPartition(numStates int) *partition {
	classOf := make([]int, numStates)
	for i := range classOf {
		classOf[i] = -1
	}
	return &partition{classOf: classOf}
}

func (p *partition) addClass(members []int) int {
	id := len(p.classes)
	for _, s := range members {
		p.classOf[s] = id
	}
	p.classes = append(p.classes, members)
	return id
}

// split moves the states in in (a proper, non-empty subset of class y) into a new
// class and returns its id.
func (p *partition) split(y int, in []int) int {
	z := p.addClass(in)
	rest := p.classes[y][:0]
	for _, s := range p.classes[y] {
		if p.classOf[s] == y {
			rest = append(rest, s)
		}
	}
	p.classes[y] = rest
	return z
}

// Refine Partitions the given states into Myhill-Nerode equivalence classes using
// Hopcroft's algorithm. The states should be closed under the transition function
// (for example the result of Reachable). Each returned class lists its members in
// ascending label order, and the classes are ordered by their first member.
func Refine(a *Automaton, states *StateSet) [][]int {
	members := states.GetArray()
	if len(members) == 0 {
		return nil
	}
	numSymbols := len(a.alphabet)

	// inverse[c][t] holds the members s with δ(s, c) = t.
	inverse := make([][][]int, numSymbols)
	for c := range inverse {
		inverse[c] = make([][]int, a.NumStates())
	}
	for _, s := range members {
		for c := 0; c < numSymbols; c++ {
			t := a.step(s, c)
			inverse[c][t] = append(inverse[c][t], s)
		}
	}

	var accepting, rejecting []int
	for _, s := range members {
		if a.IsAccept(s) {
			accepting = append(accepting, s)
		} else {
			rejecting = append(rejecting, s)
		}
	}

	p := newPartition(a.NumStates())
	if len(accepting) > 0 {
		p.addClass(accepting)
	}
	if len(rejecting) > 0 {
		p.addClass(rejecting)
	}

	// Seed with the first class: the accepting one unless there is none.
	work := []int{0}
	onWork := make([]bool, len(p.classes), len(members))
	onWork[0] = true

	hits := make(map[int][]int)
	for len(work) > 0 {
		splitter := append([]int(nil), p.classes[work[0]]...)
		onWork[work[0]] = false
		work = work[1:]

		for c := 0; c < numSymbols; c++ {
			// Group the pre-image of the splitter on c by the class of each source.
			var touched []int
			for _, t := range splitter {
				for _, s := range inverse[c][t] {
					y := p.classOf[s]
					if len(hits[y]) == 0 {
						touched = append(touched, y)
					}
					hits[y] = append(hits[y], s)
				}
			}

			for _, y := range touched {
				in := hits[y]
				delete(hits, y)
				if len(in) == len(p.classes[y]) {
					continue
				}

				z := p.split(y, in)
				onWork = append(onWork, false)
				switch {
				case onWork[y]:
					work = append(work, z)
					onWork[z] = true
				case len(p.classes[z]) <= len(p.classes[y]):
					work = append(work, z)
					onWork[z] = true
				default:
					work = append(work, y)
					onWork[y] = true
				}
			}
		}
	}

	classes := p.classes
	for _, class := range classes {
		slices.SortFunc(class, func(x, y int) int {
			return strings.Compare(a.states[x].Label, a.states[y].Label)
		})
	}
	slices.SortFunc(classes, func(x, y []int) int {
		return strings.Compare(a.states[x[0]].Label, a.states[y[0]].Label)
	})
	return classes
}
