// Command dfarun loads a DFA from a text file and reports whether it accepts an input string.
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

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status: 0 once a
// verdict is printed, 1 when the automaton cannot be loaded and 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dfarun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("loglevel", "warn", "log level [debug|info|warn|error]")
	minimize := fs.Bool("minimize", false, "minimize the automaton before running it")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: dfarun [flags] <dfa-file> <input-string>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	u.SetLogger(log.New(stderr, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds), strings.ToLower(*logLevel))

	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	path, input := fs.Arg(0), fs.Arg(1)

	a, err := dfa.LoadFile(path)
	if err != nil {
		u.Errorf("could not load %s: %v", path, err)
		return 1
	}

	if *minimize {
		a, err = dfa.Minimize(a, true)
		if err != nil {
			u.Errorf("could not minimize %s: %v", path, err)
			return 1
		}
	}

	accepted, err := dfa.Run(a, input)
	if err != nil {
		u.Warnf("rejecting %q: %v", input, err)
	}
	fmt.Fprintln(stdout, accepted)
	return 0
}
