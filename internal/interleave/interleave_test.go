package interleave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/interleave"
	"github.com/mic47/platypus-diff/internal/token"
)

func word(text string, start int) token.Token { return token.New(text, start, token.Word) }
func space(text string, start int) token.Token { return token.New(text, start, token.Whitespace) }

func leftTokens(script []align.Operation) []token.Token {
	var out []token.Token
	for _, op := range script {
		if t, ok := op.LeftToken(); ok {
			out = append(out, t)
		}
	}
	return out
}

func rightTokens(script []align.Operation) []token.Token {
	var out []token.Token
	for _, op := range script {
		if t, ok := op.RightToken(); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestOrderPreservation(t *testing.T) {
	// "a b" vs "a b": primary a(0) b(2); secondary space(1).
	a0 := word("a", 0)
	b2 := word("b", 2)
	script := []align.Operation{
		{Kind: align.Mutation, Left: a0, Right: a0},
		{Kind: align.Mutation, Left: b2, Right: b2},
	}
	sp := space(" ", 1)

	out := interleave.Interleave(script, []token.Token{sp}, []token.Token{sp})

	left := leftTokens(out)
	right := rightTokens(out)
	require.Len(t, left, 3)
	require.Len(t, right, 3)
	assert.Equal(t, []token.Token{a0, sp, b2}, left)
	assert.Equal(t, []token.Token{a0, sp, b2}, right)
}

func TestRightDrainedBeforeLeftAtSamePosition(t *testing.T) {
	// Regression for the "right checked before left" ordering in §4.E/§9:
	// a secondary token anchored exactly at the next op's boundary on both
	// sides must come out right-then-left.
	a := word("a", 0)
	rightExtra := space(" ", 1)
	leftExtra := space(" ", 1)
	b := word("b", 2)

	script := []align.Operation{
		{Kind: align.Mutation, Left: a, Right: a},
		{Kind: align.Mutation, Left: b, Right: b},
	}

	out := interleave.Interleave(script, []token.Token{leftExtra}, []token.Token{rightExtra})

	// Both secondary tokens have Start==1, strictly less than the next op's
	// (b's) Start==2, so both drain before the Mutation{b,b} op is
	// re-emitted; right drains first.
	require.Len(t, out, 4)
	assert.Equal(t, align.InsertRight, out[1].Kind)
	assert.Equal(t, align.InsertLeft, out[2].Kind)
}

func TestTrailingSecondaryTokensFlushedRightThenLeft(t *testing.T) {
	a := word("a", 0)
	script := []align.Operation{{Kind: align.Mutation, Left: a, Right: a}}

	trailingLeft := space(" ", 1)
	trailingRight := space(" ", 1)

	out := interleave.Interleave(script, []token.Token{trailingLeft}, []token.Token{trailingRight})

	require.Len(t, out, 3)
	assert.Equal(t, align.InsertRight, out[1].Kind)
	assert.Equal(t, align.InsertLeft, out[2].Kind)
}

func TestEmptySecondaries(t *testing.T) {
	a := word("a", 0)
	script := []align.Operation{{Kind: align.Mutation, Left: a, Right: a}}
	out := interleave.Interleave(script, nil, nil)
	assert.Equal(t, script, out)
}
