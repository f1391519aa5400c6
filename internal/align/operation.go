// Package align implements the three-layer affine-gap global sequence
// aligner: the cheapest edit script transforming a left token sequence into
// a right one under a pluggable scoring.Policy.
package align

import (
	"fmt"

	"github.com/mic47/platypus-diff/internal/token"
)

// Kind tags the shape of an Operation.
type Kind int

// Kind constants for the three AlignmentOperation shapes.
const (
	Mutation Kind = iota
	InsertLeft
	InsertRight
)

// Format writes a terse type string for the receiver Kind.
func (k Kind) Format(f fmt.State, c rune) {
	switch c {
	case 'v', 's':
		switch k {
		case Mutation:
			fmt.Fprint(f, "Mutation")
		case InsertLeft:
			fmt.Fprint(f, "InsertLeft")
		case InsertRight:
			fmt.Fprint(f, "InsertRight")
		default:
			fmt.Fprintf(f, "InvalidKind%d", int(k))
		}
	default:
		fmt.Fprintf(f, "%%!%c(Kind=%d)", c, int(k))
	}
}

// Operation is a tagged variant over Mutation{Left,Right}, InsertLeft{Left},
// and InsertRight{Right}. Only the field(s) implied by Kind are meaningful.
type Operation struct {
	Kind  Kind
	Left  token.Token
	Right token.Token
}

// HasLeft reports whether the operation carries a left-side token.
func (op Operation) HasLeft() bool { return op.Kind == Mutation || op.Kind == InsertLeft }

// HasRight reports whether the operation carries a right-side token.
func (op Operation) HasRight() bool { return op.Kind == Mutation || op.Kind == InsertRight }

// LeftToken returns the operation's left token and true, or (zero, false) if
// the operation has no left side.
func (op Operation) LeftToken() (token.Token, bool) {
	if op.HasLeft() {
		return op.Left, true
	}
	return token.Token{}, false
}

// RightToken returns the operation's right token and true, or (zero, false)
// if the operation has no right side.
func (op Operation) RightToken() (token.Token, bool) {
	if op.HasRight() {
		return op.Right, true
	}
	return token.Token{}, false
}

// String returns the same one-line form as Format, for callers that only
// need fmt.Stringer (e.g. the CLI's --debug-file dump).
func (op Operation) String() string {
	return fmt.Sprintf("%v", op)
}

// Format writes a human-readable one-line form, suitable for the CLI's
// --debug operation dump.
func (op Operation) Format(f fmt.State, c rune) {
	switch c {
	case 'v', 's':
		switch op.Kind {
		case Mutation:
			fmt.Fprintf(f, "Mutation{left:%+v, right:%+v}", op.Left, op.Right)
		case InsertLeft:
			fmt.Fprintf(f, "InsertLeft{left:%+v}", op.Left)
		case InsertRight:
			fmt.Fprintf(f, "InsertRight{right:%+v}", op.Right)
		default:
			fmt.Fprintf(f, "InvalidOperation%d", int(op.Kind))
		}
	default:
		fmt.Fprintf(f, "%%!%c(align.Operation)", c)
	}
}
