package dfa

import (
	"fmt"
	"strings"
)

// State is a state of an automaton. Labels are unique within one automaton.
type State struct {
	Label     string
	Accepting bool
}

// Equal reports whether both label and accept flag match.
func (s State) Equal(other State) bool {
	return s.Label == other.Label && s.Accepting == other.Accepting
}

// Less orders states by label.
func (s State) Less(other State) bool {
	return s.Label < other.Label
}

// Transition is one entry of the transition function, expressed with state labels.
type Transition struct {
	Source string
	Symbol rune
	Dest   string
}

// Automaton Represents a deterministic finite automaton. States live in one arena and
// are addressed by index; the start state and every transition refer to states by
// index, so an Automaton is self-contained and never shares storage with another one.
// The transition function is total over states × alphabet. An Automaton is never
// modified after construction; every operation returns a new one.
type Automaton struct {
	states   []State
	alphabet []rune

	// symbol -> index in alphabet
	symbols map[rune]int

	// label -> index in states
	labels map[string]int

	start int

	// delta[s*len(alphabet)+k] is the destination of state s on alphabet[k].
	delta []int
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// State Returns the state at index i.
func (a *Automaton) State(i int) State {
	return a.states[i]
}

// States Returns a copy of all states in index order.
func (a *Automaton) States() []State {
	return append([]State(nil), a.states...)
}

// Alphabet Returns a copy of the alphabet in declaration order.
func (a *Automaton) Alphabet() []rune {
	return append([]rune(nil), a.alphabet...)
}

// Start Returns the index of the start state.
func (a *Automaton) Start() int {
	return a.start
}

func (a *Automaton) StartState() State {
	return a.states[a.start]
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.states[state].Accepting
}

// IndexOf Returns the index of the state with the given label.
func (a *Automaton) IndexOf(label string) (int, bool) {
	i, ok := a.labels[label]
	return i, ok
}

// SymbolIndex Returns the position of symbol in the alphabet.
func (a *Automaton) SymbolIndex(symbol rune) (int, bool) {
	k, ok := a.symbols[symbol]
	return k, ok
}

func (a *Automaton) HasSymbol(symbol rune) bool {
	_, ok := a.symbols[symbol]
	return ok
}

// Delta Returns the destination of state on symbol.
func (a *Automaton) Delta(state int, symbol rune) (int, error) {
	k, ok := a.symbols[symbol]
	if !ok || state < 0 || state >= len(a.states) {
		return -1, &UndefinedTransitionError{State: state, Symbol: symbol}
	}
	return a.step(state, k), nil
}

// DeltaState is Delta addressed by State instead of index.
func (a *Automaton) DeltaState(s State, symbol rune) (State, error) {
	i, ok := a.labels[s.Label]
	if !ok || a.states[i] != s {
		return State{}, &UndefinedTransitionError{State: -1, Symbol: symbol}
	}
	dest, err := a.Delta(i, symbol)
	if err != nil {
		return State{}, err
	}
	return a.states[dest], nil
}

// step performs the lookup for alphabet index k; both arguments must be in range.
func (a *Automaton) step(state, k int) int {
	return a.delta[state*len(a.alphabet)+k]
}

// Transitions Returns every transition, ordered by source state and then by alphabet position.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, len(a.delta))
	for s := range a.states {
		for k, c := range a.alphabet {
			out = append(out, Transition{
				Source: a.states[s].Label,
				Symbol: c,
				Dest:   a.states[a.step(s, k)].Label,
			})
		}
	}
	return out
}

// SameAlphabet reports whether both automata are over the same set of symbols,
// regardless of declaration order.
func (a *Automaton) SameAlphabet(other *Automaton) bool {
	if len(a.alphabet) != len(other.alphabet) {
		return false
	}
	for _, c := range a.alphabet {
		if _, ok := other.symbols[c]; !ok {
			return false
		}
	}
	return true
}

// Equal reports structural equality: same states in the same order, same alphabet
// sequence, same start state and same transition table.
func (a *Automaton) Equal(other *Automaton) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	if a.start != other.start ||
		len(a.states) != len(other.states) ||
		len(a.alphabet) != len(other.alphabet) ||
		len(a.delta) != len(other.delta) {
		return false
	}
	for i := range a.states {
		if !a.states[i].Equal(other.states[i]) {
			return false
		}
	}
	for i := range a.alphabet {
		if a.alphabet[i] != other.alphabet[i] {
			return false
		}
	}
	for i := range a.delta {
		if a.delta[i] != other.delta[i] {
			return false
		}
	}
	return true
}

func (a *Automaton) String() string {
	var sb strings.Builder
	if err := Save(&sb, a); err != nil {
		return fmt.Sprintf("<invalid automaton: %v>", err)
	}
	return sb.String()
}

// New builds an automaton from an explicit state list, alphabet, start label and
// transition table. The table must define exactly one destination for every
// (state, symbol) pair.
func New(states []State, alphabet []rune, start string, transitions []Transition) (*Automaton, error) {
	b := NewBuilder(alphabet)
	labels := make(map[string]int, len(states))
	for _, s := range states {
		if _, ok := labels[s.Label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, s.Label)
		}
		labels[s.Label] = b.CreateState(s.Label, s.Accepting)
	}

	startIndex, ok := labels[start]
	if !ok {
		return nil, fmt.Errorf("%w: start state %q", ErrUnknownLabel, start)
	}
	b.SetStart(startIndex)

	for _, t := range transitions {
		source, ok := labels[t.Source]
		if !ok {
			return nil, fmt.Errorf("%w: transition source %q", ErrUnknownLabel, t.Source)
		}
		dest, ok := labels[t.Dest]
		if !ok {
			return nil, fmt.Errorf("%w: transition destination %q", ErrUnknownLabel, t.Dest)
		}
		if err := b.AddTransition(source, t.Symbol, dest); err != nil {
			return nil, err
		}
	}

	return b.Finish()
}

// Builder Constructs an Automaton state by state. States are integers returned by
// CreateState; the first created state is the start state unless SetStart says
// otherwise. Finish validates the result and fails if the transition function is
// not total.
type Builder struct {
	alphabet []rune
	symbols  map[rune]int
	states   []State
	start    int
	delta    []int
}

func NewBuilder(alphabet []rune) *Builder {
	symbols := make(map[rune]int, len(alphabet))
	for k, c := range alphabet {
		if _, ok := symbols[c]; !ok {
			symbols[c] = k
		}
	}
	return &Builder{
		alphabet: append([]rune(nil), alphabet...),
		symbols:  symbols,
	}
}

// CreateState Create a new state.
func (b *Builder) CreateState(label string, accept bool) int {
	state := len(b.states)
	b.states = append(b.states, State{Label: label, Accepting: accept})
	for range b.alphabet {
		b.delta = append(b.delta, -1)
	}
	return state
}

// SetAccept Set or clear this state as an accept state.
func (b *Builder) SetAccept(state int, accept bool) {
	b.states[state].Accepting = accept
}

func (b *Builder) SetStart(state int) {
	b.start = state
}

// GetNumStates How many states have been created so far.
func (b *Builder) GetNumStates() int {
	return len(b.states)
}

// AddTransition Add the transition source --symbol--> dest. Each (source, symbol)
// pair may be added only once.
func (b *Builder) AddTransition(source int, symbol rune, dest int) error {
	if source < 0 || source >= len(b.states) {
		return fmt.Errorf("source state %d out of range", source)
	}
	if dest < 0 || dest >= len(b.states) {
		return fmt.Errorf("destination state %d out of range", dest)
	}
	k, ok := b.symbols[symbol]
	if !ok {
		return fmt.Errorf("symbol %q is not in the alphabet", symbol)
	}
	return b.addTransitionIndex(source, k, dest)
}

func (b *Builder) addTransitionIndex(source, k, dest int) error {
	i := source*len(b.alphabet) + k
	if b.delta[i] != -1 {
		return fmt.Errorf("state %q already has a transition on %q", b.states[source].Label, b.alphabet[k])
	}
	b.delta[i] = dest
	return nil
}

// Finish Validates the automaton and returns it. The builder must not be used afterwards.
func (b *Builder) Finish() (*Automaton, error) {
	if len(b.symbols) != len(b.alphabet) {
		return nil, fmt.Errorf("alphabet %q contains duplicate symbols", string(b.alphabet))
	}
	if len(b.states) == 0 {
		return nil, fmt.Errorf("%w: automaton has no states", ErrUnknownLabel)
	}
	if b.start < 0 || b.start >= len(b.states) {
		return nil, fmt.Errorf("start state %d out of range", b.start)
	}

	labels := make(map[string]int, len(b.states))
	for i, s := range b.states {
		if _, ok := labels[s.Label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, s.Label)
		}
		labels[s.Label] = i
	}

	n := len(b.alphabet)
	for i, dest := range b.delta {
		if dest == -1 {
			return nil, fmt.Errorf("%w: state %q on symbol %q",
				ErrMissingTransition, b.states[i/n].Label, b.alphabet[i%n])
		}
	}

	return &Automaton{
		states:   b.states,
		alphabet: b.alphabet,
		symbols:  b.symbols,
		labels:   labels,
		start:    b.start,
		delta:    b.delta,
	}, nil
}
