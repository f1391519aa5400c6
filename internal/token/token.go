// Package token defines the lexeme value type shared by the tokenizer,
// aligner, interleaver, and renderer.
package token

import "fmt"

// Kind classifies a Token. The zero value is not a valid Kind produced by
// the tokenizer.
type Kind int

// Kind constants for the closed set of lexeme classes.
const (
	invalid Kind = iota
	Whitespace
	Word
	SpecialCharacter
	BlockStart
	BlockEnd
)

// Format writes a type string representing the receiver code, mirroring the
// teacher's BlockType.Format style.
func (k Kind) Format(f fmt.State, c rune) {
	switch c {
	case 'v', 's':
		switch k {
		case Whitespace:
			fmt.Fprint(f, "Whitespace")
		case Word:
			fmt.Fprint(f, "Word")
		case SpecialCharacter:
			fmt.Fprint(f, "SpecialCharacter")
		case BlockStart:
			fmt.Fprint(f, "BlockStart")
		case BlockEnd:
			fmt.Fprint(f, "BlockEnd")
		default:
			fmt.Fprintf(f, "InvalidKind%d", int(k))
		}
	default:
		fmt.Fprintf(f, "%%!%c(Kind=%d)", c, int(k))
	}
}

// Token is an immutable lexeme: a borrowed slice of source text, the byte
// offset at which it starts, a kind tag, and — only for BlockStart/BlockEnd
// markers — the indentation width the marker records.
//
// Token carries no end offset; end = start + len(Text).
type Token struct {
	Text   string
	Start  int
	Kind   Kind
	Indent int // meaningful only for BlockStart/BlockEnd
}

// New constructs a Token from a source slice, its start offset, and kind.
// Indent is left zero; use NewBlockMarker for BlockStart/BlockEnd tokens.
func New(text string, start int, kind Kind) Token {
	return Token{Text: text, Start: start, Kind: kind}
}

// NewBlockMarker constructs a zero-length BlockStart or BlockEnd token at
// start, recording indent. Panics if kind is not BlockStart or BlockEnd.
func NewBlockMarker(start int, kind Kind, indent int) Token {
	if kind != BlockStart && kind != BlockEnd {
		panic(fmt.Sprintf("token: NewBlockMarker given non-block kind %v", kind))
	}
	return Token{Start: start, Kind: kind, Indent: indent}
}

// End returns the exclusive byte offset one past the token's text.
func (t Token) End() int { return t.Start + len(t.Text) }

// Len returns the byte length of the token's text.
func (t Token) Len() int { return len(t.Text) }

// IsWhitespace reports whether the token's kind is Whitespace.
func (t Token) IsWhitespace() bool { return t.Kind == Whitespace }

// IsBlockMarker reports whether the token is a synthetic BlockStart or
// BlockEnd marker.
func (t Token) IsBlockMarker() bool { return t.Kind == BlockStart || t.Kind == BlockEnd }

// Equal reports whether two tokens have the same kind and byte-equal text.
// Source identity and start offset are not part of equality.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// Format writes a terse form under "%v" (the quoted text, or "<Kind indent>"
// for a block marker), or a verbose form including the kind and start
// offset under "%+v" ("<Kind "text" @start>", or "<Kind indent=N @start>"
// for a block marker).
func (t Token) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		if f.Flag('+') {
			if t.IsBlockMarker() {
				fmt.Fprintf(f, "<%v indent=%d @%d>", t.Kind, t.Indent, t.Start)
				return
			}
			fmt.Fprintf(f, "<%v %q @%d>", t.Kind, t.Text, t.Start)
			return
		}
		if t.IsBlockMarker() {
			fmt.Fprintf(f, "<%v %d>", t.Kind, t.Indent)
			return
		}
		fmt.Fprintf(f, "%q", t.Text)
	default:
		fmt.Fprintf(f, "%%!%c(token.Token=%q)", c, t.Text)
	}
}
