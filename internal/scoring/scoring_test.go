package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mic47/platypus-diff/internal/scoring"
	"github.com/mic47/platypus-diff/internal/token"
)

func TestUniformInsertScore(t *testing.T) {
	u := scoring.Uniform{}
	tok := token.New("foo", 0, token.Word)
	assert.Equal(t, 1.0, u.InsertScore(tok, false))
	assert.Equal(t, 1.0, u.InsertScore(tok, true))
}

func TestUniformMutationScore(t *testing.T) {
	u := scoring.Uniform{}
	foo := token.New("foo", 0, token.Word)
	fooCased := token.New("FOO", 0, token.Word)
	bar := token.New("bar", 0, token.Word)
	special := token.New("foo", 0, token.SpecialCharacter)

	assert.Equal(t, 0.0, u.MutationScore(foo, foo))
	assert.Equal(t, 0.0, u.MutationScore(foo, fooCased), "case-folded equality")
	assert.Equal(t, 1.0, u.MutationScore(foo, bar))
	assert.Equal(t, 100.0, u.MutationScore(foo, special), "mismatched kinds forbidden")
}

func TestAffineInsertScore(t *testing.T) {
	a := scoring.DefaultAffine()
	word := token.New("foo", 0, token.Word)
	blockEnd := token.NewBlockMarker(0, token.BlockEnd, 2)

	assert.Equal(t, 0.7, a.InsertScore(word, false))
	assert.Equal(t, 0.3, a.InsertScore(word, true))
	assert.Equal(t, 1.7, a.InsertScore(blockEnd, false), "BlockEnd adds the block-end penalty")
	assert.Equal(t, 1.3, a.InsertScore(blockEnd, true))
}

func TestAffineMutationScoreBlockIndent(t *testing.T) {
	a := scoring.DefaultAffine()
	left := token.NewBlockMarker(0, token.BlockStart, 2)
	right := token.NewBlockMarker(0, token.BlockStart, 4)

	assert.Equal(t, 2.0, a.MutationScore(left, right))
}

func TestAffineMutationScoreText(t *testing.T) {
	a := scoring.DefaultAffine()
	foo := token.New("foo", 0, token.Word)
	fooCased := token.New("FOO", 0, token.Word)
	bar := token.New("bar", 0, token.Word)
	special := token.New("foo", 0, token.SpecialCharacter)

	assert.Equal(t, 0.0, a.MutationScore(foo, foo))
	assert.Equal(t, 0.0, a.MutationScore(foo, fooCased))
	assert.Equal(t, 1.0, a.MutationScore(foo, bar))
	assert.Equal(t, 100.0, a.MutationScore(foo, special))
}

func TestAffineImplementsPolicy(t *testing.T) {
	var _ scoring.Policy = scoring.DefaultAffine()
	var _ scoring.Policy = scoring.Uniform{}
}
