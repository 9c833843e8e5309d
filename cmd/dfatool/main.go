// Command dfatool prints, minimizes, complements and combines DFAs stored in the text format.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	u "github.com/araddon/gou"
	"github.com/geange/dfa"
)

type command struct {
	name    string
	args    string
	summary string
	nargs   int // minimum number of positional arguments
	run     func(opts *options, args []string) error
}

type options struct {
	out    string
	simple bool
	stdout io.Writer
}

var commands []*command

func init() {
	commands = []*command{
		{"print", "<dfa>", "print the states and transition table", 1, runPrint},
		{"dot", "<dfa>", "write a Graphviz digraph", 1, runDOT},
		{"minimize", "[-simple] <dfa>", "minimize the automaton", 1, runMinimize},
		{"complement", "<dfa>", "invert every accept flag", 1, runComplement},
		{"union", "<a> <b>", "product automaton accepting L(a) ∪ L(b)", 2, runProduct(dfa.Union)},
		{"intersect", "<a> <b>", "product automaton accepting L(a) ∩ L(b)", 2, runProduct(dfa.Intersection)},
		{"subset", "<a> <b>", "report whether L(a) ⊆ L(b)", 2, runSubset},
		{"equiv", "<a> <b>", "report whether L(a) = L(b)", 2, runEquiv},
		{"run", "<dfa> <input>...", "evaluate each input string", 2, runInputs},
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: dfatool [-loglevel L] <command> [-o out] args...\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %-18s %s\n", c.name, c.args, c.summary)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status: 1 when the
// command fails and 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dfatool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("loglevel", "warn", "log level [debug|info|warn|error]")
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	u.SetLogger(log.New(stderr, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds), strings.ToLower(*logLevel))

	if fs.NArg() < 1 {
		usage(stderr)
		return 2
	}

	name := fs.Arg(0)
	var cmd *command
	for _, c := range commands {
		if c.name == name {
			cmd = c
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		usage(stderr)
		return 2
	}

	opts := &options{stdout: stdout}
	cfs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfs.SetOutput(stderr)
	cfs.StringVar(&opts.out, "o", "", "write the result to this file instead of stdout")
	cfs.BoolVar(&opts.simple, "simple", false, "label minimized states 0..n-1")
	cfs.Usage = func() {
		fmt.Fprintf(stderr, "usage: dfatool %s %s\n", cmd.name, cmd.args)
		cfs.PrintDefaults()
	}
	if err := cfs.Parse(fs.Args()[1:]); err != nil {
		return 2
	}
	if cfs.NArg() < cmd.nargs {
		cfs.Usage()
		return 2
	}

	if err := cmd.run(opts, cfs.Args()); err != nil {
		u.Errorf("%s: %v", name, err)
		return 1
	}
	return 0
}

func load(paths ...string) ([]*dfa.Automaton, error) {
	out := make([]*dfa.Automaton, 0, len(paths))
	for _, p := range paths {
		a, err := dfa.LoadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func emit(opts *options, a *dfa.Automaton) error {
	if opts.out == "" {
		return dfa.Save(opts.stdout, a)
	}
	return dfa.SaveFile(opts.out, a)
}

func runPrint(opts *options, args []string) error {
	as, err := load(args[0])
	if err != nil {
		return err
	}
	return dfa.Print(opts.stdout, as[0])
}

func runDOT(opts *options, args []string) error {
	as, err := load(args[0])
	if err != nil {
		return err
	}
	w := opts.stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return dfa.ExportDOT(w, as[0])
}

func runMinimize(opts *options, args []string) error {
	as, err := load(args[0])
	if err != nil {
		return err
	}
	m, err := dfa.Minimize(as[0], opts.simple)
	if err != nil {
		return err
	}
	u.Infof("minimized %s: %d -> %d states", args[0], as[0].NumStates(), m.NumStates())
	return emit(opts, m)
}

func runComplement(opts *options, args []string) error {
	as, err := load(args[0])
	if err != nil {
		return err
	}
	return emit(opts, dfa.Complement(as[0]))
}

func runProduct(mode dfa.Mode) func(*options, []string) error {
	return func(opts *options, args []string) error {
		as, err := load(args[0], args[1])
		if err != nil {
			return err
		}
		p, err := dfa.Product(as[0], as[1], mode)
		if err != nil {
			return err
		}
		return emit(opts, p)
	}
}

func runSubset(opts *options, args []string) error {
	as, err := load(args[0], args[1])
	if err != nil {
		return err
	}
	ok, err := dfa.SubLanguageOf(as[0], as[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(opts.stdout, ok)
	return nil
}

func runEquiv(opts *options, args []string) error {
	as, err := load(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(opts.stdout, dfa.EquivalentTo(as[0], as[1]))
	return nil
}

func runInputs(opts *options, args []string) error {
	as, err := load(args[0])
	if err != nil {
		return err
	}
	for _, input := range args[1:] {
		ok, err := dfa.Run(as[0], input)
		if err != nil {
			u.Warnf("rejecting %q: %v", input, err)
		}
		fmt.Fprintf(opts.stdout, "%s(%s): %v\n", args[0], input, ok)
	}
	return nil
}
