package diffutil

import (
	"fmt"
	"io"

	"github.com/google/renameio"
)

// WriteDebugFile writes the operation dump to path atomically: a crash or a
// second concurrent invocation targeting the same path never observes a
// half-written file. lines is called once per operation description, in
// order.
func WriteDebugFile(path string, lines []fmt.Stringer) error {
	t, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer t.Cleanup()

	if err := writeLines(t, lines); err != nil {
		return err
	}
	return t.CloseAtomicallyReplace()
}

func writeLines(w io.Writer, lines []fmt.Stringer) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}
