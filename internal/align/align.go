package align

import (
	"math"

	"github.com/mic47/platypus-diff/internal/scoring"
	"github.com/mic47/platypus-diff/internal/token"
)

// layerState is one of a cell's three parallel cost layers: (cost, path).
// path is a pathArena index, meaningful only when cost is finite.
type layerState struct {
	cost float64
	path int
}

var unreachable = layerState{cost: math.Inf(1), path: root}

// cellState holds the three layers of one DP cell, indexed by the kind of
// the last operation on the path reaching it.
type cellState struct {
	mutation    layerState
	insertLeft  layerState
	insertRight layerState
}

// pickBest implements the aligner's tie-break policy (§4.D): the insert-left
// candidate is weighed against mutation when it is strictly cheaper than
// insert-right, otherwise insert-right is; that insert wins only if it is
// strictly cheaper than mutation, so ties go to mutation. This must match exactly —
// diverging changes which script ties resolve to (see spec.md §9 and S5).
func pickBest(mutationCost, insertLeftCost, insertRightCost float64, mutationPath, insertLeftPath, insertRightPath int) (cost float64, path int) {
	if insertLeftCost < insertRightCost {
		if insertLeftCost < mutationCost {
			return insertLeftCost, insertLeftPath
		}
		return mutationCost, mutationPath
	}
	if insertRightCost < mutationCost {
		return insertRightCost, insertRightPath
	}
	return mutationCost, mutationPath
}

// extend picks the cheapest of three ways to extend src's layers by one
// operation, given the would-be cost of arriving via each of src's layers.
func extend(arena *pathArena, src cellState, op Operation, viaMutation, viaInsertLeft, viaInsertRight float64) layerState {
	cost, parent := pickBest(viaMutation, viaInsertLeft, viaInsertRight, src.mutation.path, src.insertLeft.path, src.insertRight.path)
	return layerState{cost: cost, path: arena.push(parent, op)}
}

// extractBest picks the minimum-cost layer of a cell, used at termination.
// Its comparison order differs from pickBest's (mutation is compared first)
// and must match the Rust original's AlignmentState::extract_best exactly.
func (c cellState) extractBest() layerState {
	if c.mutation.cost < c.insertLeft.cost {
		if c.mutation.cost < c.insertRight.cost {
			return c.mutation
		}
		return c.insertRight
	}
	if c.insertLeft.cost < c.insertRight.cost {
		return c.insertLeft
	}
	return c.insertRight
}

// Align returns the cheapest edit script transforming left into right under
// policy, among Mutation/InsertLeft/InsertRight scripts. Ties are broken per
// pickBest/extractBest above. Always succeeds: insert-only scripts are
// always admissible, so the result is never empty unless both inputs are.
//
// Complexity is O(n*m) time, O(n+m) working set for the two row buffers,
// plus the path arena, which keeps every node pushed (about three per cell,
// so O(n*m) nodes) until Align returns (see DESIGN.md on why it is not
// compacted).
func Align(policy scoring.Policy, left, right []token.Token) []Operation {
	m, n := len(left), len(right)

	var arena pathArena
	prevRow := make([]cellState, m+1)
	row := make([]cellState, m+1)

	// Row 0: only the insert-left layer is reachable, by inserting a
	// prefix of left with no right tokens consumed yet.
	row[0] = cellState{
		mutation:    layerState{cost: 0, path: root},
		insertLeft:  unreachable,
		insertRight: unreachable,
	}
	for l := 1; l <= m; l++ {
		src := row[l-1]
		tok := left[l-1]
		il := extend(&arena, src, Operation{Kind: InsertLeft, Left: tok},
			src.mutation.cost+policy.InsertScore(tok, false),
			src.insertLeft.cost+policy.InsertScore(tok, true),
			src.insertRight.cost+policy.InsertScore(tok, false),
		)
		row[l] = cellState{mutation: unreachable, insertLeft: il, insertRight: unreachable}
	}

	for r := 1; r <= n; r++ {
		prevRow, row = row, prevRow
		rtok := right[r-1]

		// Column 0: only the insert-right layer is reachable.
		src := prevRow[0]
		ir := extend(&arena, src, Operation{Kind: InsertRight, Right: rtok},
			src.mutation.cost+policy.InsertScore(rtok, false),
			src.insertLeft.cost+policy.InsertScore(rtok, false),
			src.insertRight.cost+policy.InsertScore(rtok, true),
		)
		row[0] = cellState{mutation: unreachable, insertLeft: unreachable, insertRight: ir}

		for l := 1; l <= m; l++ {
			ltok := left[l-1]

			diag := prevRow[l-1]
			s := policy.MutationScore(ltok, rtok)
			mutationOp := Operation{Kind: Mutation, Left: ltok, Right: rtok}
			mut := extend(&arena, diag, mutationOp,
				diag.mutation.cost+s,
				diag.insertLeft.cost+s,
				diag.insertRight.cost+s,
			)

			horiz := row[l-1]
			il := extend(&arena, horiz, Operation{Kind: InsertLeft, Left: ltok},
				horiz.mutation.cost+policy.InsertScore(ltok, false),
				horiz.insertLeft.cost+policy.InsertScore(ltok, true),
				horiz.insertRight.cost+policy.InsertScore(ltok, false),
			)

			vert := prevRow[l]
			ir := extend(&arena, vert, Operation{Kind: InsertRight, Right: rtok},
				vert.mutation.cost+policy.InsertScore(rtok, false),
				vert.insertLeft.cost+policy.InsertScore(rtok, false),
				vert.insertRight.cost+policy.InsertScore(rtok, true),
			)

			row[l] = cellState{mutation: mut, insertLeft: il, insertRight: ir}
		}
	}

	best := row[m].extractBest()
	return arena.extractPath(best.path)
}
