package logging

import "io"

// Hooks for the external logging_test package. Caller-type inference can
// only be exercised from outside this package, because frames inside it
// are deliberately skipped by the stack walk.

// SwapConsoleWriter redirects console sinks attached after the call and
// returns a function restoring the previous writer.
func SwapConsoleWriter(w io.Writer) (restore func()) {
	old := consoleWriter
	consoleWriter = w
	return func() { consoleWriter = old }
}

// NewConsoleAdapter returns an adapter over a fresh console-only handle
// named name, configured at INFO level with a fixed record format.
func NewConsoleAdapter(name string) (*ContextLogger, error) {
	h := &Handle{name: name}
	if err := h.configure(testOptions()); err != nil {
		return nil, err
	}
	return newContextLogger(h), nil
}
