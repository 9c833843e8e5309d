package dfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	u "github.com/araddon/gou"
)

// The text format is line oriented:
//
//	<alphabet, one character per symbol>
//	<n>
//	<label> <0|1>          n lines
//	<start label>
//	<source> <symbol> <dest>   n*len(alphabet) lines
//
// The grammar below only splits the input into lines of fields; positional rules
// are checked by decoder.

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`},
	{Name: "Field", Pattern: `[^ \t\n\r\f\v]+`},
})

type textFile struct {
	Lines []*textLine `parser:"@@*"`
}

type textLine struct {
	Pos    lexer.Position
	Fields []string `parser:"@Field* EOL"`
}

var textParser = participle.MustBuild[textFile](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace"),
)

type loadOptions struct {
	filename string
}

type LoadOption func(*loadOptions)

// WithFilename names the input in errors and log lines.
func WithFilename(name string) LoadOption {
	return func(o *loadOptions) {
		o.filename = name
	}
}

// Load reads an automaton in the text format. Any malformed or incomplete input
// is reported as a *FormatError and no automaton is returned.
func Load(r io.Reader, options ...LoadOption) (*Automaton, error) {
	opts := &loadOptions{filename: "input"}
	for _, fn := range options {
		fn(opts)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src := string(data)
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	doc, err := textParser.ParseString(opts.filename, src)
	if err != nil {
		fe := &FormatError{File: opts.filename, Msg: err.Error(), Err: err}
		var perr participle.Error
		if errors.As(err, &perr) {
			fe.Line = perr.Position().Line
			fe.Msg = perr.Message()
		}
		return nil, fe
	}

	d := &decoder{file: opts.filename, lines: doc.Lines}
	a, err := d.decode()
	if err != nil {
		return nil, err
	}
	u.Debugf("loaded %s: %d states over %q", opts.filename, a.NumStates(), string(a.alphabet))
	return a, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string, options ...LoadOption) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, append([]LoadOption{WithFilename(path)}, options...)...)
}

type decoder struct {
	file  string
	lines []*textLine
	next  int
}

func (d *decoder) errorf(line int, err error, format string, args ...any) error {
	return &FormatError{File: d.file, Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}

// line returns the next line, which must have want fields.
func (d *decoder) line(want int, what string) (*textLine, error) {
	if d.next >= len(d.lines) {
		last := 0
		if len(d.lines) > 0 {
			last = d.lines[len(d.lines)-1].Pos.Line
		}
		return nil, d.errorf(last+1, io.ErrUnexpectedEOF, "unexpected end of input, expected %s", what)
	}
	l := d.lines[d.next]
	d.next++
	if len(l.Fields) != want {
		return nil, d.errorf(l.Pos.Line, nil, "expected %s, got %q", what, strings.Join(l.Fields, " "))
	}
	return l, nil
}

func (d *decoder) decode() (*Automaton, error) {
	// Alphabet; an empty line declares an empty alphabet.
	if len(d.lines) == 0 {
		return nil, d.errorf(1, io.ErrUnexpectedEOF, "empty input")
	}
	first := d.lines[0]
	d.next++
	var alphabet []rune
	switch len(first.Fields) {
	case 0:
	case 1:
		alphabet = []rune(first.Fields[0])
	default:
		return nil, d.errorf(first.Pos.Line, nil, "alphabet must not contain whitespace")
	}
	seen := make(map[rune]struct{}, len(alphabet))
	for _, c := range alphabet {
		if _, ok := seen[c]; ok {
			return nil, d.errorf(first.Pos.Line, nil, "duplicate symbol %q in alphabet", c)
		}
		seen[c] = struct{}{}
	}

	l, err := d.line(1, "the number of states")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(l.Fields[0])
	if err != nil {
		return nil, d.errorf(l.Pos.Line, err, "invalid number of states %q", l.Fields[0])
	}
	if n < 1 {
		return nil, d.errorf(l.Pos.Line, nil, "number of states must be positive, got %d", n)
	}
	if strconv.Itoa(n) != l.Fields[0] {
		return nil, d.errorf(l.Pos.Line, nil, "number of states %q must be written in canonical form", l.Fields[0])
	}

	b := NewBuilder(alphabet)
	labels := make(map[string]int, n)
	for i := 0; i < n; i++ {
		l, err := d.line(2, `a state "<label> <0|1>"`)
		if err != nil {
			return nil, err
		}
		label, flag := l.Fields[0], l.Fields[1]
		if flag != "0" && flag != "1" {
			return nil, d.errorf(l.Pos.Line, nil, "accept flag of %q must be 0 or 1, got %q", label, flag)
		}
		if _, ok := labels[label]; ok {
			return nil, d.errorf(l.Pos.Line, ErrDuplicateLabel, "duplicate state label %q", label)
		}
		labels[label] = b.CreateState(label, flag == "1")
	}

	l, err = d.line(1, "the start state label")
	if err != nil {
		return nil, err
	}
	start, ok := labels[l.Fields[0]]
	if !ok {
		return nil, d.errorf(l.Pos.Line, ErrUnknownLabel, "start state %q is not declared", l.Fields[0])
	}
	b.SetStart(start)

	for i := 0; i < n*len(alphabet); i++ {
		l, err := d.line(3, `a transition "<source> <symbol> <dest>"`)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) && errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, d.errorf(fe.Line, ErrMissingTransition,
					"expected %d transitions, got %d", n*len(alphabet), i)
			}
			return nil, err
		}
		source, ok := labels[l.Fields[0]]
		if !ok {
			return nil, d.errorf(l.Pos.Line, ErrUnknownLabel, "transition source %q is not declared", l.Fields[0])
		}
		if utf8.RuneCountInString(l.Fields[1]) != 1 {
			return nil, d.errorf(l.Pos.Line, nil, "transition symbol %q must be a single character", l.Fields[1])
		}
		symbol, _ := utf8.DecodeRuneInString(l.Fields[1])
		if _, ok := seen[symbol]; !ok {
			return nil, d.errorf(l.Pos.Line, nil, "transition symbol %q is not in the alphabet", symbol)
		}
		dest, ok := labels[l.Fields[2]]
		if !ok {
			return nil, d.errorf(l.Pos.Line, ErrUnknownLabel, "transition destination %q is not declared", l.Fields[2])
		}
		if err := b.AddTransition(source, symbol, dest); err != nil {
			return nil, d.errorf(l.Pos.Line, err, "%v", err)
		}
	}

	for ; d.next < len(d.lines); d.next++ {
		if l := d.lines[d.next]; len(l.Fields) > 0 {
			return nil, d.errorf(l.Pos.Line, nil, "unexpected content after the transitions: %q", strings.Join(l.Fields, " "))
		}
	}

	a, err := b.Finish()
	if err != nil {
		return nil, &FormatError{File: d.file, Msg: err.Error(), Err: err}
	}
	return a, nil
}

// isFieldSpace matches the characters the lexer treats as separators.
func isFieldSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Save writes a in the text format read by Load. Transitions are written by source
// state and then by alphabet position, so saving a loaded automaton again yields
// identical bytes.
func Save(w io.Writer, a *Automaton) error {
	for _, c := range a.alphabet {
		if isFieldSpace(c) {
			return fmt.Errorf("symbol %q cannot be written in the text format", c)
		}
	}
	for _, s := range a.states {
		if s.Label == "" || strings.ContainsFunc(s.Label, isFieldSpace) {
			return fmt.Errorf("state label %q cannot be written in the text format", s.Label)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", string(a.alphabet))
	fmt.Fprintf(bw, "%d\n", len(a.states))
	for _, s := range a.states {
		flag := 0
		if s.Accepting {
			flag = 1
		}
		fmt.Fprintf(bw, "%s %d\n", s.Label, flag)
	}
	fmt.Fprintf(bw, "%s\n", a.StartState().Label)
	for _, t := range a.Transitions() {
		fmt.Fprintf(bw, "%s %c %s\n", t.Source, t.Symbol, t.Dest)
	}
	return bw.Flush()
}

// SaveFile is Save to the named file, which is created or truncated.
func SaveFile(path string, a *Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, a); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	u.Debugf("saved %s: %d states", path, a.NumStates())
	return nil
}
