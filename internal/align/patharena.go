package align

// pathArena is the persistent path list of §3 and §4.D, realized as an
// arena of nodes addressed by index rather than a reference-counted linked
// list: each node holds one Operation plus an integer "previous" pointer
// into the same arena. Many DP cells share tails by sharing a parent index,
// exactly as the spec's persistent path list shares tails by pointer; Go's
// garbage collector reclaims the whole arena at once when align returns,
// which stands in for the spec's "nodes are reclaimed when the last holder
// drops them" — there is no periodic compaction since a single align() call
// never runs long enough to need it (see DESIGN.md).
//
// This mirrors the teacher's scanio.ByteArena: a single growable backing
// slice that callers take stable handles (here, plain ints) into.
type pathArena struct {
	nodes []pathNode
}

type pathNode struct {
	op     Operation
	parent int // index into nodes, or root
}

// root is the parent index denoting the empty path (spec's PathList::End).
const root = -1

// push appends a new node extending parent with op, returning its index.
func (a *pathArena) push(parent int, op Operation) int {
	a.nodes = append(a.nodes, pathNode{op: op, parent: parent})
	return len(a.nodes) - 1
}

// extractPath walks from tail back to root and returns the operations in
// forward (root-to-tail) order, the "destructively walk the chosen chain
// into a flat sequence" step from §3.
func (a *pathArena) extractPath(tail int) []Operation {
	var out []Operation
	for i := tail; i != root; i = a.nodes[i].parent {
		out = append(out, a.nodes[i].op)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
