package render

import (
	"encoding/json"
	"io"

	"subsetviz/internal/automaton"
)

type jsonAutomaton struct {
	States      []string   `json:"states"`
	Alphabet    []string   `json:"alphabet"`
	Transitions []jsonEdge `json:"transitions"`
	Start       string     `json:"start"`
	Accepting   []string   `json:"accepting"`
}

type jsonEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

func strs[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// JSON writes the flattened form handed to graph renderers: states, alphabet,
// a {from,to,label} edge list, start and accepting.
func JSON(w io.Writer, a *automaton.Automaton) error {
	out := jsonAutomaton{
		States:      strs(a.States),
		Alphabet:    make([]string, len(a.Alphabet)),
		Transitions: []jsonEdge{},
		Start:       string(a.Start),
		Accepting:   strs(a.Accepting),
	}
	for i, sym := range a.Alphabet {
		out.Alphabet[i] = sym.String()
	}
	for _, e := range a.Edges() {
		out.Transitions = append(out.Transitions, jsonEdge{From: string(e.From), To: string(e.To), Label: e.Label.String()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
