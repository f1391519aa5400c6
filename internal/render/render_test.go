package render_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/diffutil"
	"github.com/mic47/platypus-diff/internal/render"
	"github.com/mic47/platypus-diff/internal/token"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func word(text string, start int) token.Token { return token.New(text, start, token.Word) }
func space(text string, start int) token.Token { return token.New(text, start, token.Whitespace) }

// S1: "foo" vs "foo" renders as a single Same line.
func TestScenarioS1(t *testing.T) {
	foo := word("foo", 0)
	script := []align.Operation{{Kind: align.Mutation, Left: foo, Right: foo}}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Same)
	assert.Equal(t, "foo", lines[0].Text)
}

// S2: "foo" vs "bar" renders as a left-only line then a right-only line —
// here, a single Change line with both sides present.
func TestScenarioS2(t *testing.T) {
	script := []align.Operation{{Kind: align.Mutation, Left: word("foo", 0), Right: word("bar", 0)}}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.False(t, lines[0].Same)
	require.True(t, lines[0].HasLeft)
	require.True(t, lines[0].HasRight)
	assert.Equal(t, "foo", lines[0].Left)
	assert.Equal(t, "bar", lines[0].Right)
}

// S3: whitespace copied to both buffers keeps the line Same, even though
// the left buffer received padding spaces rather than right's literal text
// in the equal-mutation branch.
func TestScenarioS3(t *testing.T) {
	a := word("a", 0)
	b := word("b", 6)
	rightSpace := space("  ", 2) // right's "a  b" has two spaces
	leftSpace := space(" ", 1)   // left's "a b" has one; collapsed by prev_was_space

	script := []align.Operation{
		{Kind: align.Mutation, Left: a, Right: a},
		{Kind: align.InsertRight, Right: rightSpace},
		{Kind: align.InsertLeft, Left: leftSpace},
		{Kind: align.Mutation, Left: b, Right: b},
	}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Same)
	assert.Equal(t, "a  b", lines[0].Text)
}

// S5: "a b c" vs "a c", fully interleaved — the dropped left token `b` and
// its surrounding whitespace render inline on the right buffer (per §4.F,
// InsertLeft's removed content lands on the opposite side), producing one
// change line that reads "a b c" with " b" (the space before b, then b)
// marked as removed.
func TestScenarioS5(t *testing.T) {
	a := word("a", 0)
	leftSpaceAB := space(" ", 1)
	b := word("b", 2)
	leftSpaceBC := space(" ", 3)
	c := word("c", 4)
	rightSpaceAC := space(" ", 1)

	script := []align.Operation{
		{Kind: align.Mutation, Left: a, Right: a},
		{Kind: align.InsertLeft, Left: leftSpaceAB},
		{Kind: align.InsertLeft, Left: b},
		{Kind: align.InsertRight, Right: rightSpaceAC},
		{Kind: align.InsertLeft, Left: leftSpaceBC},
		{Kind: align.Mutation, Left: c, Right: c},
	}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.False(t, lines[0].Same)
	assert.False(t, lines[0].HasLeft, "InsertLeft only ever pads the left buffer with spaces")
	require.True(t, lines[0].HasRight)
	assert.Equal(t, "a b c", lines[0].Right, `" b" is the removed run, rest is unchanged context`)
}

// S6: empty left, right "x" renders as a right-only change line.
func TestScenarioS6(t *testing.T) {
	script := []align.Operation{{Kind: align.InsertRight, Right: word("x", 0)}}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.False(t, lines[0].Same)
	assert.False(t, lines[0].HasLeft)
	require.True(t, lines[0].HasRight)
	assert.Equal(t, "x", lines[0].Right)
}

func TestInsertRightWhitespaceWithNewlineFlushesLines(t *testing.T) {
	a := word("a", 0)
	nl := space("\n", 1)
	b := word("b", 2)

	script := []align.Operation{
		{Kind: align.Mutation, Left: a, Right: a},
		{Kind: align.InsertRight, Right: nl},
		{Kind: align.Mutation, Left: b, Right: b},
	}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.True(t, lines[0].Same)
	assert.Equal(t, "a", lines[0].Text)
	assert.True(t, lines[1].Same)
	assert.Equal(t, "b", lines[1].Text)
}

func TestMutationDifferentLengthPadding(t *testing.T) {
	script := []align.Operation{{Kind: align.Mutation, Left: word("a", 0), Right: word("bcd", 0)}}

	lines, err := render.Render(script)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "a  ", lines[0].Left, "left padded to match the longer right text")
	assert.Equal(t, "bcd", lines[0].Right)
}

func TestMutationBlockMarkerAgainstNonMarkerIsInvariantError(t *testing.T) {
	marker := token.NewBlockMarker(0, token.BlockStart, 2)
	script := []align.Operation{{Kind: align.Mutation, Left: marker, Right: word("x", 0)}}

	lines, err := render.Render(script)

	assert.Nil(t, lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, diffutil.ErrInvariant)
	var invErr *diffutil.InvariantError
	require.ErrorAs(t, err, &invErr)
}
