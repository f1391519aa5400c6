// Package render converts a merged alignment script into a sequence of
// output lines, tracking a small line-assembly state machine whose
// flushing logic is what interleaved whitespace ultimately drives.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/diffutil"
	"github.com/mic47/platypus-diff/internal/token"
)

var (
	removedColor       = color.New(color.FgRed)
	removedStrikeColor = color.New(color.FgRed, color.CrossedOut)
	addedColor         = color.New(color.FgGreen)
)

// Line is one rendered output line: either Same (content identical on both
// sides, modulo interleaved whitespace) or Change (one or both sides
// present, already carrying inline ANSI markup).
type Line struct {
	Same bool

	// Text holds the Same-line content. Only meaningful when Same is true.
	Text string

	// Left/Right hold Change-line content, present only when HasLeft/HasRight
	// is true (i.e. that side contains at least one non-whitespace
	// character). Only meaningful when Same is false.
	HasLeft  bool
	Left     string
	HasRight bool
	Right    string
}

// machine is the line-flushing state described in spec.md §4.F.
type machine struct {
	leftBuf  strings.Builder
	rightBuf strings.Builder

	leftHasNonWS  bool
	rightHasNonWS bool

	equal        bool
	prevWasSpace bool

	lines []Line
}

func newMachine() *machine {
	return &machine{equal: true, prevWasSpace: true}
}

func (m *machine) flush() {
	if m.equal {
		m.lines = append(m.lines, Line{Same: true, Text: m.rightBuf.String()})
	} else {
		line := Line{HasLeft: m.leftHasNonWS, HasRight: m.rightHasNonWS}
		if line.HasLeft {
			line.Left = m.leftBuf.String()
		}
		if line.HasRight {
			line.Right = m.rightBuf.String()
		}
		m.lines = append(m.lines, line)
	}
	m.leftBuf.Reset()
	m.rightBuf.Reset()
	m.leftHasNonWS = false
	m.rightHasNonWS = false
	m.equal = true
}

func (m *machine) padSpaces(buf *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte(' ')
	}
}

// Render walks an interleaved alignment script and produces the output
// lines the CLI prints. script must already have its whitespace spliced in
// by package interleave. Returns a *diffutil.InvariantError if a Mutation
// pairs a block marker against a non-marker token — the tokenizer's own
// invariants make this unreachable on well-formed input, so callers treat
// it as a fatal bug rather than a reportable one.
func Render(script []align.Operation) ([]Line, error) {
	m := newMachine()
	for _, op := range script {
		switch op.Kind {
		case align.Mutation:
			if op.Left.IsBlockMarker() != op.Right.IsBlockMarker() {
				return nil, diffutil.NewInvariantError(fmt.Sprintf(
					"mutation pairs a block marker with a non-marker token: left=%+v right=%+v",
					op.Left, op.Right))
			}
			m.mutation(op.Left, op.Right)
		case align.InsertLeft:
			m.insertLeft(op.Left)
		case align.InsertRight:
			m.insertRight(op.Right)
		}
	}
	m.flush()
	return m.lines, nil
}

func (m *machine) mutation(left, right token.Token) {
	leftText, rightText := left.Text, right.Text
	if leftText == rightText {
		m.padSpaces(&m.leftBuf, len(leftText))
		m.rightBuf.WriteString(rightText)
		m.rightHasNonWS = m.rightHasNonWS || rightText != ""
	} else {
		m.leftBuf.WriteString(removedColor.Sprint(leftText))
		m.rightBuf.WriteString(addedColor.Sprint(rightText))
		m.leftHasNonWS = true
		m.rightHasNonWS = true
		if len(leftText) < len(rightText) {
			m.padSpaces(&m.leftBuf, len(rightText)-len(leftText))
		} else {
			m.padSpaces(&m.rightBuf, len(leftText)-len(rightText))
		}
		m.equal = false
	}
	m.prevWasSpace = false
}

func (m *machine) insertLeft(left token.Token) {
	if left.IsWhitespace() {
		if !m.prevWasSpace {
			m.leftBuf.WriteByte(' ')
			m.rightBuf.WriteString(removedStrikeColor.Sprint(" "))
			m.rightHasNonWS = true
		}
		m.prevWasSpace = true
		return
	}
	m.padSpaces(&m.leftBuf, len(left.Text))
	m.rightBuf.WriteString(removedStrikeColor.Sprint(left.Text))
	m.rightHasNonWS = true
	m.equal = false
	m.prevWasSpace = false
}

func (m *machine) insertRight(right token.Token) {
	if right.IsWhitespace() {
		text := right.Text
		if i := strings.IndexByte(text, '\n'); i < 0 {
			m.leftBuf.WriteString(text)
			m.rightBuf.WriteString(text)
		} else {
			segments := strings.Split(text, "\n")
			m.leftBuf.WriteString(segments[0])
			m.rightBuf.WriteString(segments[0])
			for _, seg := range segments[1:] {
				m.flush()
				m.leftBuf.WriteString(seg)
				m.rightBuf.WriteString(seg)
			}
		}
		m.prevWasSpace = true
		return
	}
	m.padSpaces(&m.leftBuf, len(right.Text))
	m.rightBuf.WriteString(addedColor.Sprint(right.Text))
	m.rightHasNonWS = true
	m.equal = false
	m.prevWasSpace = false
}
