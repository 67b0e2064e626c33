// getopt re-parses a command line against a caller-supplied optstring and
// prints the normalized result, shell-quoted, for consumption by eval:
//
//	eval set -- $(getopt 'ab:' "$@")
//
// Errors in getopt's own invocation exit with code 2; errors in the wrapped
// program's options exit with code 1, reported under the wrapped program's
// name (see -n).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"github.com/dzonerzy/go-getopt/getopt"
	"github.com/dzonerzy/go-getopt/internal/shellquote"
)

const (
	exitOK       = 0
	exitExternal = 1 // parse error in the wrapped program's options
	exitInternal = 2 // misuse of getopt itself
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	name := programName(args)
	childName := name
	dialect := shellquote.Bourne

	// getopt's own options are parsed with the library it ships.
	own := getopt.New(args, "hn:s:")
	for {
		o, err := own.Next()
		if errors.Is(err, getopt.ErrDone) {
			break
		}
		if err != nil {
			errorf("%s: %v", name, err)
			usage(os.Stderr, name)
			return exitInternal
		}

		switch o.Char {
		case 'h':
			usage(os.Stdout, name)
			return exitOK
		case 'n':
			childName = o.Arg
		case 's':
			d, ok := shellquote.DialectByName(o.Arg)
			if !ok {
				errorf("%s: unknown shell type: %s", name, o.Arg)
				return exitInternal
			}
			dialect = d
		}
	}

	if own.Index() >= len(args) {
		errorf("%s: missing optstring argument", name)
		usage(os.Stderr, name)
		return exitInternal
	}
	optstring := args[own.Index()]

	// Everything after the optstring belongs to the wrapped program.
	p := getopt.New(args, optstring)
	p.SetIndex(own.Index() + 1)

	var words []string
	for {
		o, err := p.Next()
		if errors.Is(err, getopt.ErrDone) {
			break
		}
		if err != nil {
			errorf("%s: %v", childName, err)
			return exitExternal
		}

		words = append(words, "-"+string(o.Char))
		if o.HasArg {
			words = append(words, shellquote.Quote(o.Arg, dialect))
		}
	}

	words = append(words, "--")
	for _, arg := range p.Remaining() {
		words = append(words, shellquote.Quote(arg, dialect))
	}

	fmt.Println(strings.Join(words, " "))
	return exitOK
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "getopt"
	}
	base := filepath.Base(args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s [-h] [-n name] [-s shell] optstring [args ...]\n", name)
	fmt.Fprintf(w, "  -n name   report errors as 'name' (default %q)\n", name)
	fmt.Fprintln(w, "  -s shell  use quoting conventions for shell (default 'sh')")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -h        display this help")
}

func errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.Red.Sprintf(format, args...))
}
