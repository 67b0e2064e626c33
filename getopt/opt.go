// Package getopt provides a minimal, POSIX-compliant short-option parser.
//
// A Parser walks an argument vector in command-line order and yields one
// option per call to Next, stopping at the first positional argument or at
// the "--" terminator. The option specification uses the classic optstring
// convention: "ab:c::" recognizes -a (no argument), -b (required argument)
// and -c (optional inline argument).
package getopt

import "fmt"

// Opt is a single parsed option: the option character and, when the option
// takes one, its argument. Arg is meaningful only when HasArg is true; an
// optional-argument option given without a value yields HasArg == false.
type Opt struct {
	Char   rune
	Arg    string
	HasArg bool
}

func (o Opt) String() string {
	if o.HasArg {
		return fmt.Sprintf("Opt(%q, %q)", o.Char, o.Arg)
	}
	return fmt.Sprintf("Opt(%q, nil)", o.Char)
}
