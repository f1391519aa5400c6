// Package diffengine wires the six components together: tokenize both
// inputs, partition each into primary/secondary streams, align the primary
// streams, splice the secondary (whitespace) streams back in, and render
// the result. This is the one entry point the CLI calls.
package diffengine

import (
	"github.com/mic47/platypus-diff/internal/align"
	"github.com/mic47/platypus-diff/internal/interleave"
	"github.com/mic47/platypus-diff/internal/render"
	"github.com/mic47/platypus-diff/internal/scoring"
	"github.com/mic47/platypus-diff/internal/tokenizer"
)

// Result is the full output of a Run: the interleaved script (useful for
// --debug and the report package) and the rendered lines.
type Result struct {
	Script []align.Operation
	Lines  []render.Line
}

// Options controls how a Run partitions tokens before alignment.
type Options struct {
	// IncludeBlockMarkers decides whether BlockStart/BlockEnd markers are
	// part of the significant subsequence the aligner sees, or are treated
	// like whitespace and spliced back in by position. Defaults to true,
	// which is what the affine policy expects since its mutation score
	// reads marker indent fields.
	IncludeBlockMarkers bool
}

// DefaultOptions returns the recommended Options: block markers significant,
// whitespace spliced back in afterward.
func DefaultOptions() Options {
	return Options{IncludeBlockMarkers: true}
}

// Run tokenizes left and right, aligns them under policy using
// DefaultOptions, splices whitespace back in, and renders the result.
func Run(policy scoring.Policy, left, right string) (Result, error) {
	return RunWithOptions(policy, left, right, DefaultOptions())
}

// RunWithOptions is Run with an explicit partitioning choice.
func RunWithOptions(policy scoring.Policy, left, right string, opt Options) (Result, error) {
	leftTokens, err := tokenizer.All(tokenizer.New(left))
	if err != nil {
		return Result{}, err
	}
	rightTokens, err := tokenizer.All(tokenizer.New(right))
	if err != nil {
		return Result{}, err
	}

	leftPrimary, leftSecondary := tokenizer.Partition(leftTokens, opt.IncludeBlockMarkers)
	rightPrimary, rightSecondary := tokenizer.Partition(rightTokens, opt.IncludeBlockMarkers)

	script := align.Align(policy, leftPrimary, rightPrimary)
	script = interleave.Interleave(script, leftSecondary, rightSecondary)

	lines, err := render.Render(script)
	if err != nil {
		return Result{}, err
	}

	return Result{Script: script, Lines: lines}, nil
}
