package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"subsetviz/internal/automaton"
	"subsetviz/internal/conversion"
	"subsetviz/internal/definition"
	"subsetviz/internal/render"
	"subsetviz/internal/source"
	"subsetviz/internal/subset"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("subsetviz: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run renders to stdout (or -o) and writes -test verdicts to verdicts, so
// rendered output stays parseable.
func run(args []string, stdout, verdicts io.Writer) error {
	fs := flag.NewFlagSet("subsetviz", flag.ContinueOnError)
	pattern := fs.String("re", "", "regular expression over a-z, 0, 1 with ( ) | *")
	example := fs.String("example", "", "named example NFA (see -list)")
	str := fs.String("string", "", "build the branching NFA for a string over 0, 1, a, b, ε")
	file := fs.String("file", "", "automaton definition file")
	list := fs.Bool("list", false, "list examples and exit")
	show := fs.String("show", "both", "nfa, dfa or both")
	format := fs.String("format", "table", "dot, json, table or def")
	naming := fs.String("naming", "subset", "DFA state names: subset or numbered")
	words := fs.String("test", "", "comma-separated words to run through both automata")
	outFile := fs.String("o", "-", "output file")
	pngFlag := fs.Bool("png", false, "render PNG via dot -Tpng (needs -format dot, -show nfa|dfa, -o file)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, name := range source.ExampleNames() {
			fmt.Fprintln(stdout, name)
		}
		fmt.Fprintln(stdout, "regex examples:", strings.Join(source.RegexExamples(), "  "))
		return nil
	}

	name := subset.SubsetNames
	switch *naming {
	case "subset":
	case "numbered":
		name = subset.Numbered
	default:
		return fmt.Errorf("unknown naming %q", *naming)
	}

	if *show != "nfa" && *show != "dfa" && *show != "both" {
		return fmt.Errorf("unknown -show %q", *show)
	}
	// dot -Tpng renders one graph per file
	if *pngFlag && (*format != "dot" || *show == "both" || *outFile == "-") {
		return errors.New("-png needs -format dot, -show nfa or -show dfa, and -o <file>")
	}

	conv, err := load(*pattern, *example, *str, *file, name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if *show == "nfa" || *show == "both" {
		if err := write(&buf, *format, "NFA", conv.NFA, nil); err != nil {
			return err
		}
	}
	if *show == "dfa" || *show == "both" {
		if err := write(&buf, *format, "DFA", conv.DFA, conv.Subsets); err != nil {
			return err
		}
	}
	if *words != "" {
		for _, w := range strings.Split(*words, ",") {
			n, d := conv.Accepts(w)
			fmt.Fprintf(verdicts, "%q\tnfa=%s\tdfa=%s\n", w, verdict(n), verdict(d))
		}
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		log.Printf("PNG written to %s", *outFile)
		return nil
	}

	if *outFile == "-" {
		_, err := io.Copy(stdout, &buf)
		return err
	}
	f, err := os.Create(*outFile)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", *outFile, err)
	}
	if _, err := io.Copy(f, &buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("written to %s", *outFile)
	return nil
}

// load picks the single automaton source given on the command line.
func load(pattern, example, str, file string, name subset.Naming) (*conversion.Conversion, error) {
	given := 0
	for _, s := range []string{pattern, example, str, file} {
		if s != "" {
			given++
		}
	}
	if given != 1 {
		return nil, errors.New("give exactly one of -re, -example, -string, -file")
	}

	switch {
	case pattern != "":
		return conversion.FromRegex(pattern, name)
	case example != "":
		nfa, err := source.Example(example)
		if err != nil {
			return nil, err
		}
		return conversion.FromNFA(nfa, name), nil
	case str != "":
		nfa, err := source.FromString(str)
		if err != nil {
			return nil, err
		}
		return conversion.FromNFA(nfa, name), nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		nfa, err := definition.Parse(file, string(data))
		if err != nil {
			return nil, err
		}
		return conversion.FromNFA(nfa, name), nil
	}
}

func write(w io.Writer, format, title string, a *automaton.Automaton, subsets map[automaton.State][]automaton.State) error {
	switch format {
	case "dot":
		return render.DOT(w, a, title)
	case "json":
		return render.JSON(w, a)
	case "table":
		fmt.Fprintf(w, "%s\n", title)
		if err := render.Table(w, a, subsets); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case "def":
		fmt.Fprintf(w, "# %s\n", title)
		return definition.Format(w, a)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func verdict(ok bool) string {
	if ok {
		return "accept"
	}
	return "reject"
}
