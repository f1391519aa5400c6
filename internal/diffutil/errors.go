package diffutil

import (
	"errors"
	"fmt"
)

// InputError wraps a problem with one of the two input files: a bad path,
// a permission failure, or content that isn't valid UTF-8. The CLI reports
// these as a one-line stderr message and a non-zero exit, never a stack
// trace.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// NewInputError wraps err as an InputError rooted at path.
func NewInputError(path string, err error) *InputError {
	return &InputError{Path: path, Err: err}
}

// ErrInvariant is the sentinel every InvariantError wraps, so a caller that
// only cares "did some internal invariant break" can test with errors.Is
// without pattern-matching Detail strings.
var ErrInvariant = errors.New("internal invariant violated")

// InvariantError reports a violation of one of the renderer's internal
// invariants (spec.md §7) — concretely, render.Render finding a Mutation
// that pairs a block marker against a non-marker token, which the tokenizer
// never produces on well-formed input. These are never expected to occur;
// the CLI treats them as fatal bugs rather than a reportable input problem.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvariant, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// NewInvariantError constructs an InvariantError with the given detail.
func NewInvariantError(detail string) *InvariantError {
	return &InvariantError{Detail: detail}
}
