package main

import (
	"io"
	"log"
	"os"
)

// logState tracks the active log destination/flags, the way cmd/soc tracks
// its own, so per-input-path log lines can be prefixed without disturbing
// the base stderr logger other commands rely on.
type logState struct {
	out   io.Writer
	flags int
}

func (st *logState) setOutput(out io.Writer) *logState {
	log.SetOutput(out)
	st.out = out
	return st
}

var logs logState

func init() { logs.setOutput(os.Stderr) }
