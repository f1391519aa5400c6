// Package scoring implements the pluggable cost functions the aligner uses
// to score insertions and mutations over token.Token values.
package scoring

import (
	"golang.org/x/text/cases"

	"github.com/mic47/platypus-diff/internal/token"
)

// Policy is a stateless object scoring the two edit operations the aligner
// considers besides straight copy. Lower is better; +Inf denotes
// unreachable. Implementations must be side-effect free: the aligner may
// call either method an unbounded number of times per cell.
type Policy interface {
	// InsertScore costs inserting t. previousWasSameKindInsert is true only
	// when the immediately preceding operation on the path reaching this
	// cell was an insert on the same side of the same kind.
	InsertScore(t token.Token, previousWasSameKindInsert bool) float64
	// MutationScore costs replacing left with right (or matching them, when
	// free).
	MutationScore(left, right token.Token) float64
}

var fold = cases.Fold()

// foldEqual reports whether a and b compare equal after Unicode case
// folding, matching §4.C's "case-folded text" comparison.
func foldEqual(a, b string) bool {
	return fold.String(a) == fold.String(b)
}

// Uniform is the baseline policy used in tests: every insert costs 1
// regardless of context, and mutation is free between equal (case-folded)
// tokens of the same kind, costs 1 between unequal tokens of the same kind,
// and costs 100 across differing kinds — high enough to make cross-kind
// mutation effectively forbidden.
type Uniform struct{}

// InsertScore always returns 1.
func (Uniform) InsertScore(token.Token, bool) float64 { return 1 }

// MutationScore returns 0 for case-folded-equal same-kind tokens, 1 for
// unequal same-kind tokens, and 100 across differing kinds.
func (Uniform) MutationScore(left, right token.Token) float64 {
	if left.Kind != right.Kind {
		return 100
	}
	if foldEqual(left.Text, right.Text) {
		return 0
	}
	return 1
}

var _ Policy = Uniform{}

// Affine is the production policy: an affine-gap cost where starting an
// insertion run costs more than extending it, BlockEnd inserts carry an
// extra penalty, and mutation between BlockStart/BlockEnd markers is scored
// by the absolute difference of their indent widths.
type Affine struct {
	StartInsert           float64
	ExtendInsert          float64
	BlockEndInsertPenalty float64
	MismatchedTypePenalty float64
	MismatchedTextPenalty float64
}

// DefaultAffine returns the production-default Affine policy from §4.C.
func DefaultAffine() Affine {
	return Affine{
		StartInsert:           0.7,
		ExtendInsert:          0.3,
		BlockEndInsertPenalty: 1.0,
		MismatchedTypePenalty: 100.0,
		MismatchedTextPenalty: 1.0,
	}
}

// InsertScore charges StartInsert (or ExtendInsert, if previousWasSameKindInsert)
// plus BlockEndInsertPenalty when t is a BlockEnd marker.
func (a Affine) InsertScore(t token.Token, previousWasSameKindInsert bool) float64 {
	cost := a.StartInsert
	if previousWasSameKindInsert {
		cost = a.ExtendInsert
	}
	if t.Kind == token.BlockEnd {
		cost += a.BlockEndInsertPenalty
	}
	return cost
}

// MutationScore charges MismatchedTypePenalty across differing kinds;
// |indent difference| for BlockStart/BlockEnd pairs; 0 for case-folded-equal
// text; MismatchedTextPenalty otherwise.
func (a Affine) MutationScore(left, right token.Token) float64 {
	if left.Kind != right.Kind {
		return a.MismatchedTypePenalty
	}
	if left.Kind == token.BlockStart || left.Kind == token.BlockEnd {
		diff := left.Indent - right.Indent
		if diff < 0 {
			diff = -diff
		}
		return float64(diff)
	}
	if foldEqual(left.Text, right.Text) {
		return 0
	}
	return a.MismatchedTextPenalty
}

var _ Policy = Affine{}
