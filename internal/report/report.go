// Package report renders an alignment script as a markdown (or, via
// blackfriday, HTML) document instead of the ANSI terminal format. This is
// a presentation convenience layered on top of the same
// align/interleave/render core; it does not change alignment or
// interleaving semantics.
package report

import (
	"fmt"
	"strings"

	"github.com/russross/blackfriday"
	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/render"
	"github.com/mic47/platypus-diff/internal/token"
)

// Section is one top-level block of the input, as delimited by BlockStart/
// BlockEnd markers, or one run of ops outside any block, together with the
// rendered lines that fall inside it.
type Section struct {
	Title   string
	Anchor  string
	Lines   []render.Line
	Changed bool
}

// Sections groups an interleaved alignment script into top-level blocks and
// renders each one independently. Ops before the first block form a section
// titled "preamble"; ops after top-level block N closes form a section
// titled "block N (cont.)". Returns the same *diffutil.InvariantError render.Render
// would, if a sub-slice it renders triggers one.
func Sections(script []align.Operation) ([]Section, error) {
	var sections []Section
	var current []align.Operation
	var flushErr error
	title := "preamble"
	depth := 0
	index := 0

	flush := func() {
		if len(current) == 0 || flushErr != nil {
			return
		}
		lines, err := render.Render(current)
		if err != nil {
			flushErr = err
			return
		}
		sections = append(sections, Section{
			Title:   title,
			Anchor:  sanitized_anchor_name.Create(title),
			Lines:   lines,
			Changed: anyChanged(lines),
		})
		current = nil
	}

	for _, op := range script {
		if depth == 0 && isBlockStart(op) {
			flush()
			index++
			title = fmt.Sprintf("block %d", index)
		}
		current = append(current, op)
		if isBlockStart(op) {
			depth++
		}
		if isBlockEnd(op) {
			depth--
			if depth == 0 {
				flush()
				title = fmt.Sprintf("block %d (cont.)", index)
			}
		}
	}
	flush()

	if flushErr != nil {
		return nil, flushErr
	}
	return sections, nil
}

func isBlockStart(op align.Operation) bool {
	if t, ok := op.LeftToken(); ok && t.Kind == token.BlockStart {
		return true
	}
	if t, ok := op.RightToken(); ok && t.Kind == token.BlockStart {
		return true
	}
	return false
}

func isBlockEnd(op align.Operation) bool {
	if t, ok := op.LeftToken(); ok && t.Kind == token.BlockEnd {
		return true
	}
	if t, ok := op.RightToken(); ok && t.Kind == token.BlockEnd {
		return true
	}
	return false
}

func anyChanged(lines []render.Line) bool {
	for _, l := range lines {
		if !l.Same {
			return true
		}
	}
	return false
}

// Markdown renders only the changed sections of script as a markdown
// document: one heading per changed section, with a fenced diff body using
// the same "-"/"+" line convention as the text renderer.
func Markdown(script []align.Operation) (string, error) {
	sections, err := Sections(script)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range sections {
		if !s.Changed {
			continue
		}
		fmt.Fprintf(&b, "## %s {#%s}\n\n", s.Title, s.Anchor)
		b.WriteString("```diff\n")
		for _, l := range s.Lines {
			writeDiffLine(&b, l)
		}
		b.WriteString("```\n\n")
	}
	return b.String(), nil
}

func writeDiffLine(b *strings.Builder, l render.Line) {
	if l.Same {
		fmt.Fprintf(b, "  %s\n", stripANSI(l.Text))
		return
	}
	if l.HasLeft {
		fmt.Fprintf(b, "- %s\n", stripANSI(l.Left))
	}
	if l.HasRight {
		fmt.Fprintf(b, "+ %s\n", stripANSI(l.Right))
	}
}

// stripANSI removes the color escape sequences render.Render embeds,
// since a markdown/HTML report carries change markers via the diff fence
// and heading structure instead of terminal color codes.
func stripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// HTML renders script to an HTML fragment by first producing the markdown
// document and running it through blackfriday.
func HTML(script []align.Operation) ([]byte, error) {
	md, err := Markdown(script)
	if err != nil {
		return nil, err
	}
	return blackfriday.Run([]byte(md)), nil
}
