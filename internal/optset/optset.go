// Package optset compiles a POSIX optstring into an arity lookup table.
// Used by the parser for O(1) option-character classification.
package optset

// Arity classifies how many arguments an option character accepts.
type Arity uint8

const (
	// None means the option takes no argument.
	None Arity = iota
	// Required means the option must be followed by an argument, either
	// inline in the same token or as the entire next token.
	Required
	// Optional means the option accepts an inline argument only.
	Optional
)

// slot encodes "absent" as 0 and a present Arity as Arity+1, so the
// zero-valued ASCII table needs no initialization pass.
type slot = uint8

// Set is a compiled optstring. ASCII option characters resolve through a
// fixed array; anything wider falls back to a lazily allocated map.
type Set struct {
	ascii [128]slot
	wide  map[rune]Arity
	size  int
}

// Compile scans optstring left to right and records each option character
// with its arity: a bare character takes no argument, one trailing ':'
// means a required argument, two or more mean an optional argument.
// A ':' that does not follow an option character defines nothing; this
// covers the classic leading-colon convention, which is deliberately a
// no-op here since errors are reported as values, never printed.
func Compile(optstring string) *Set {
	s := &Set{}
	chars := []rune(optstring)

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c == ':' {
			continue
		}

		colons := 0
		for i+1 < len(chars) && chars[i+1] == ':' {
			colons++
			i++
		}

		switch {
		case colons == 0:
			s.add(c, None)
		case colons == 1:
			s.add(c, Required)
		default:
			s.add(c, Optional)
		}
	}

	return s
}

func (s *Set) add(c rune, a Arity) {
	if _, exists := s.Lookup(c); !exists {
		s.size++
	}
	if c >= 0 && c < 128 {
		s.ascii[c] = slot(a) + 1
		return
	}
	if s.wide == nil {
		s.wide = make(map[rune]Arity, 4)
	}
	s.wide[c] = a
}

// Lookup returns the arity recorded for c, and whether c is a recognized
// option character at all.
func (s *Set) Lookup(c rune) (Arity, bool) {
	if c >= 0 && c < 128 {
		v := s.ascii[c]
		if v == 0 {
			return None, false
		}
		return Arity(v - 1), true
	}
	a, ok := s.wide[c]
	return a, ok
}

// Len returns the number of distinct option characters in the set.
func (s *Set) Len() int {
	return s.size
}
