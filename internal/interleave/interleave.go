// Package interleave splices a secondary token stream — the whitespace
// tokens set aside before alignment — back into an already-computed
// alignment script, anchored by each token's original start offset.
package interleave

import (
	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/token"
)

// Interleave returns a new script that includes every token of
// leftSecondary and rightSecondary as an InsertLeft/InsertRight operation
// placed at its correct positional location within script.
//
// The algorithm walks script once, tracking the most recently seen start
// offset on each side. Before re-emitting each operation, it drains any
// secondary tokens (right side first, then left — that ordering is
// observable in interleaved output and must be preserved, see spec.md §4.E
// and §9) whose start offset precedes the tracked position. Any secondary
// tokens left over after the script is exhausted are flushed at the end,
// right side first.
func Interleave(script []align.Operation, leftSecondary, rightSecondary []token.Token) []align.Operation {
	out := make([]align.Operation, 0, len(script)+len(leftSecondary)+len(rightSecondary))

	li, ri := 0, 0
	leftPos, havePos := -1, false
	rightPos, haveRightPos := -1, false

	for _, op := range script {
		if t, ok := op.RightToken(); ok {
			rightPos, haveRightPos = t.Start, true
		}
		if haveRightPos {
			for ri < len(rightSecondary) && rightSecondary[ri].Start < rightPos {
				out = append(out, align.Operation{Kind: align.InsertRight, Right: rightSecondary[ri]})
				ri++
			}
		}

		if t, ok := op.LeftToken(); ok {
			leftPos, havePos = t.Start, true
		}
		if havePos {
			for li < len(leftSecondary) && leftSecondary[li].Start < leftPos {
				out = append(out, align.Operation{Kind: align.InsertLeft, Left: leftSecondary[li]})
				li++
			}
		}

		out = append(out, op)
	}

	for ; ri < len(rightSecondary); ri++ {
		out = append(out, align.Operation{Kind: align.InsertRight, Right: rightSecondary[ri]})
	}
	for ; li < len(leftSecondary); li++ {
		out = append(out, align.Operation{Kind: align.InsertLeft, Left: leftSecondary[li]})
	}

	return out
}
