// Command split cuts lines of text on a separator at grapheme boundaries.
//
// Lines come from the arguments, from standard input, or from an
// interactive prompt with -i.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.lepak.sg/ranges/text"
)

type options struct {
	sep   string
	fold  bool
	words bool
	json  bool
	field string
}

var errNoField = errors.New("field not found")

func main() {
	var opts options
	flag.StringVar(&opts.sep, "sep", ",", "separator, empty to split into characters")
	flag.BoolVar(&opts.fold, "fold", false, "match the separator without regard to case")
	flag.BoolVar(&opts.words, "words", false, "print the words of each line instead")
	flag.BoolVar(&opts.json, "json", false, "print each result as a JSON object")
	flag.StringVar(&opts.field, "field", "", "read each line as JSON and split the string at this path")
	interactive := flag.Bool("i", false, "read lines from a prompt")
	flag.Parse()

	var err error
	switch {
	case *interactive:
		err = repl(opts)
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			if err = emit(os.Stdout, opts, arg); err != nil {
				break
			}
		}
	default:
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if err = emit(os.Stdout, opts, sc.Text()); err != nil {
				break
			}
		}
		if err == nil {
			err = sc.Err()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "split: %s\n", err)
		os.Exit(1)
	}
}

func repl(opts options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "split> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".split_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if err := emit(rl.Stdout(), opts, line); err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %s\n", err)
		}
	}
}

func emit(w io.Writer, opts options, line string) error {
	out, err := process(opts, line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// process renders the result for one line of input.
func process(opts options, line string) (string, error) {
	input := line
	if opts.field != "" {
		if !gjson.Valid(line) {
			return "", fmt.Errorf("invalid JSON: %q", line)
		}
		res := gjson.Get(line, opts.field)
		if !res.Exists() {
			return "", fmt.Errorf("%w: %s", errNoField, opts.field)
		}
		input = res.String()
	}

	var pieces []string
	if opts.words {
		pieces = text.Fields(input)
	} else {
		pieces = text.Split(input, opts.sep, opts.fold)
	}
	if pieces == nil {
		pieces = []string{}
	}

	if !opts.json {
		return strings.Join(pieces, "\t"), nil
	}
	out, err := sjson.Set("", "input", input)
	if err != nil {
		return "", err
	}
	return sjson.Set(out, "pieces", pieces)
}
