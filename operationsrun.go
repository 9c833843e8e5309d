package dfa

// Run Returns true if the given string is accepted by the automaton. The empty string
// is accepted iff the start state is. A symbol outside the alphabet rejects the run
// with an *InvalidSymbolError.
func Run(a *Automaton, s string) (bool, error) {
	state := a.start
	pos := 0
	for _, v := range s {
		k, ok := a.symbols[v]
		if !ok {
			return false, &InvalidSymbolError{Symbol: v, Pos: pos}
		}
		state = a.step(state, k)
		pos++
	}
	return a.IsAccept(state), nil
}

// Accepts is Run with invalid symbols treated as rejection.
func (a *Automaton) Accepts(s string) bool {
	ok, err := Run(a, s)
	return err == nil && ok
}
