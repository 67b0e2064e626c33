// Package shellquote renders strings as single-quoted words for a handful
// of shell families, so a reconstructed command line survives eval.
package shellquote

import "strings"

// Dialect selects the quoting conventions of a shell family.
type Dialect int

const (
	// Bourne covers sh, ash, bash, dash, ksh, mksh and zsh.
	Bourne Dialect = iota
	// C covers csh and tcsh.
	C
	// Fish covers the fish shell.
	Fish
	// Rc covers Plan 9 rc.
	Rc
)

// dialectNames maps the user-facing shell names to their quoting dialect.
var dialectNames = map[string]Dialect{
	"ash":   Bourne,
	"bash":  Bourne,
	"dash":  Bourne,
	"ksh":   Bourne,
	"mksh":  Bourne,
	"sh":    Bourne,
	"zsh":   Bourne,
	"csh":   C,
	"tcsh":  C,
	"fish":  Fish,
	"plan9": Rc,
	"rc":    Rc,
}

// DialectByName resolves a shell name (case-insensitive, surrounding
// whitespace ignored) to its quoting dialect.
func DialectByName(name string) (Dialect, bool) {
	d, ok := dialectNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Quote returns s as a single-quoted word under the given dialect.
func Quote(s string, d Dialect) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	b.WriteByte('\'')
	for _, c := range s {
		switch d {
		case C:
			// csh cannot escape inside single quotes; close the
			// quote, escape, reopen. Unquoted spaces would split
			// words, so they get the same treatment.
			if c == '\'' || c == ' ' {
				b.WriteString(`'\`)
				b.WriteRune(c)
				b.WriteByte('\'')
				continue
			}
		case Fish:
			// fish allows backslash escapes inside single quotes.
			if c == '\'' || c == '\\' {
				b.WriteByte('\\')
				b.WriteRune(c)
				continue
			}
		case Rc:
			// rc doubles the quote character.
			if c == '\'' {
				b.WriteString("''")
				continue
			}
		default:
			if c == '\'' {
				b.WriteString(`'\''`)
				continue
			}
		}
		b.WriteRune(c)
	}
	b.WriteByte('\'')

	return b.String()
}
