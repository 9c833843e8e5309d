package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/geange/dfa"
	"github.com/stretchr/testify/assert"
)

const (
	twoOnes      = "../../testdata/two_ones.txt"
	mostTwoZeros = "../../testdata/most_two_zeros.txt"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"equiv same file", []string{"equiv", twoOnes, twoOnes}, 0, "true\n", ""},
		{"equiv different languages", []string{"equiv", twoOnes, mostTwoZeros}, 0, "false\n", ""},
		{"subset reflexive", []string{"subset", twoOnes, twoOnes}, 0, "true\n", ""},
		{"subset fails", []string{"subset", twoOnes, mostTwoZeros}, 0, "false\n", ""},
		{"run inputs", []string{"run", twoOnes, "11", "0"}, 0, twoOnes + "(11): true\n" + twoOnes + "(0): false\n", ""},
		{"unknown command", []string{"frobnicate", twoOnes}, 2, "", `unknown command "frobnicate"`},
		{"no command", nil, 2, "", "usage: dfatool"},
		{"missing operand", []string{"equiv", twoOnes}, 2, "", "usage: dfatool equiv"},
		{"missing file", []string{"equiv", twoOnes, "../../testdata/does_not_exist.txt"}, 1, "", "equiv:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code, stderr.String())
			assert.Equal(t, tt.stdout, stdout.String())
			if tt.stderr != "" {
				assert.Contains(t, stderr.String(), tt.stderr)
			}
		})
	}
}

func TestRunWritesAutomata(t *testing.T) {
	out := filepath.Join(t.TempDir(), "both.txt")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"intersect", "-o", out, twoOnes, mostTwoZeros}, &stdout, &stderr), stderr.String())
	assert.Empty(t, stdout.String())

	both, err := dfa.LoadFile(out)
	assert.Nil(t, err)
	assert.Equal(t, 12, both.NumStates())

	stdout.Reset()
	assert.Equal(t, 0, run([]string{"minimize", "-simple", out}, &stdout, &stderr), stderr.String())
	m, err := dfa.Load(&stdout)
	assert.Nil(t, err)
	assert.Equal(t, 10, m.NumStates())
	assert.True(t, dfa.EquivalentTo(both, m))
}
