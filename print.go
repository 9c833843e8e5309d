package dfa

import (
	"bufio"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Print writes a human readable description of a: the alphabet, a table of states
// with the start state marked, and the transition table with one column per symbol.
func Print(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "alphabet: %s\n", string(a.alphabet))

	states := tablewriter.NewWriter(bw)
	states.SetAutoFormatHeaders(false)
	states.SetHeader([]string{"", "State", "Accepting"})
	for i, s := range a.states {
		marker := ""
		if i == a.start {
			marker = ">"
		}
		states.Append([]string{marker, s.Label, fmt.Sprint(s.Accepting)})
	}
	states.Render()

	header := []string{"δ"}
	for _, c := range a.alphabet {
		header = append(header, string(c))
	}
	delta := tablewriter.NewWriter(bw)
	delta.SetAutoFormatHeaders(false)
	delta.SetHeader(header)
	for s := range a.states {
		row := []string{a.states[s].Label}
		for k := range a.alphabet {
			row = append(row, a.states[a.step(s, k)].Label)
		}
		delta.Append(row)
	}
	delta.Render()
	return bw.Flush()
}

// ExportDOT writes a Graphviz digraph of a. Accepting states are drawn as double
// circles and an invisible point node points at the start state.
func ExportDOT(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, s := range a.states {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s, label=%q];\n", i, shape, s.Label)
	}
	for s := range a.states {
		for k, c := range a.alphabet {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%q];\n", s, a.step(s, k), string(c))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", a.start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
