package getopt

import (
	"unicode/utf8"

	"github.com/dzonerzy/go-getopt/internal/optset"
)

// Parser scans an argument vector for POSIX short options.
//
// It is a pull-based state machine: each call to Next returns the next
// option in command-line order, a *ParseError, or ErrDone. The vector is
// never mutated and option arguments are substrings of (or whole elements
// from) the original vector; the parser allocates nothing per call.
//
// The cursor is two integers: index selects the current vector element,
// point is a byte offset inside it. point is nonzero only while unpacking
// a clustered group such as -xyz, and resets to zero whenever index moves.
//
// A Parser is not safe for concurrent use; Next mutates the cursor.
type Parser struct {
	args  []string
	opts  *optset.Set
	index int
	point int
}

// New creates a Parser over args using the given optstring.
//
// For compatibility with os.Args, scanning starts at index 1; args[0] is
// conventionally the program name and is never inspected. Call SetIndex
// before the first Next if args is laid out differently.
func New(args []string, optstring string) *Parser {
	return &Parser{
		args:  args,
		opts:  optset.Compile(optstring),
		index: 1,
	}
}

// Index returns the current position in the argument vector. Once Next has
// returned ErrDone the value is stable and marks the first positional
// argument (or len(args) when there is none).
func (p *Parser) Index() int {
	return p.index
}

// SetIndex repositions the parser at the given vector element.
func (p *Parser) SetIndex(i int) {
	p.index = i
	p.point = 0
}

// Remaining returns the unconsumed tail of the argument vector. Most
// useful after ErrDone, when it holds exactly the positional arguments.
func (p *Parser) Remaining() []string {
	if p.index >= len(p.args) {
		return nil
	}
	return p.args[p.index:]
}

func (p *Parser) incrIndex() {
	p.index++
	p.point = 0
}

// Next returns the next option from the vector.
//
// Scanning stops at the first element that is empty, does not begin with
// '-', or is exactly "-" (left in place), and after an element that is
// exactly "--" (consumed). At and beyond that point Next keeps returning
// ErrDone without moving the cursor.
//
// Unknown option characters and missing required arguments are reported as
// *ParseError values. Both advance the cursor past the culprit, so a
// caller may keep calling Next to collect every error in one pass.
func (p *Parser) Next() (Opt, error) {
	if p.point == 0 {
		if p.index >= len(p.args) {
			return Opt{}, ErrDone
		}

		arg := p.args[p.index]
		if len(arg) < 2 || arg[0] != '-' {
			// Covers "", "-" and any positional: stop without
			// consuming, so Index points at it.
			return Opt{}, ErrDone
		}
		if arg == "--" {
			p.incrIndex()
			return Opt{}, ErrDone
		}

		// Step over the leading '-'.
		p.point = 1
	}

	arg := p.args[p.index]
	char, size := utf8.DecodeRuneInString(arg[p.point:])
	p.point += size

	arity, known := p.opts.Lookup(char)
	if !known {
		if p.point >= len(arg) {
			p.incrIndex()
		}
		return Opt{}, newParseError(ErrorTypeUnknownOption, char)
	}

	switch arity {
	case optset.Required:
		if p.point < len(arg) {
			// Inline value: the rest of this token, which also
			// ends the cluster.
			value := arg[p.point:]
			p.incrIndex()
			return Opt{Char: char, Arg: value, HasArg: true}, nil
		}
		p.incrIndex()
		if p.index >= len(p.args) {
			return Opt{}, newParseError(ErrorTypeMissingArgument, char)
		}
		value := p.args[p.index]
		p.incrIndex()
		return Opt{Char: char, Arg: value, HasArg: true}, nil

	case optset.Optional:
		// Inline value only; a separate token is never consumed.
		if p.point < len(arg) {
			value := arg[p.point:]
			p.incrIndex()
			return Opt{Char: char, Arg: value, HasArg: true}, nil
		}
		p.incrIndex()
		return Opt{Char: char}, nil

	default:
		if p.point >= len(arg) {
			p.incrIndex()
		}
		return Opt{Char: char}, nil
	}
}
