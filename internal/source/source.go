// Package source supplies ready-made NFAs: a table of named examples, the
// regex examples offered for study, and the string-driven branching builder.
package source

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"subsetviz/internal/automaton"
	"subsetviz/internal/definition"
)

var (
	ErrUnknownExample = errors.New("unknown example")
	ErrInvalidInput   = errors.New("invalid input string")
)

//go:embed examples/*.nfa
var examplesFS embed.FS

const exampleExt = ".nfa"

// ExampleNames lists the example table in sorted order.
func ExampleNames() []string {
	entries, err := examplesFS.ReadDir("examples")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), exampleExt) {
			out = append(out, strings.TrimSuffix(e.Name(), exampleExt))
		}
	}
	sort.Strings(out)
	return out
}

// Example loads a fresh copy of the named example.
func Example(name string) (*automaton.Automaton, error) {
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	data, err := examplesFS.ReadFile(path.Join("examples", name+exampleExt))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	return definition.Parse(name+exampleExt, string(data))
}

// RegexExamples are the expressions offered in the regex picker.
func RegexExamples() []string {
	return []string{"a*b", "ab|ba", "(0|1)*11"}
}
