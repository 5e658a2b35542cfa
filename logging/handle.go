package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// consoleWriter is where console sinks write. Swapped out in tests.
var consoleWriter io.Writer = os.Stdout

type sinkKind int

const (
	sinkConsole sinkKind = iota
	sinkFile
)

// sink is one output destination of a handle: a writer, a minimum level
// and the templates used to render each record.
type sink struct {
	kind       sinkKind
	w          io.Writer
	closer     io.Closer
	level      Level
	format     string
	dateFormat string
}

// Handle is a configured named logger. Handles are created by a Registry
// and mutated in place when reconfigured; callers hold the same *Handle
// across reconfiguration calls. The zero name denotes the root handle.
//
// Emission through an already-configured handle is safe for concurrent
// use. Reconfiguration is serialized against emission by the same mutex,
// but concurrent factory calls for the same name should still be avoided;
// configure loggers once at startup before spawning workers.
type Handle struct {
	name string

	mu    sync.Mutex
	level Level
	sinks []*sink
}

// Name returns the handle's registry name. The root handle's name is "".
func (h *Handle) Name() string {
	return h.name
}

// Level returns the handle's current minimum severity level.
func (h *Handle) Level() Level {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.level
}

// displayName is the name rendered into records.
func (h *Handle) displayName() string {
	if h.name == "" {
		return "root"
	}
	return h.name
}

// configure brings the handle's sink set and level to exactly match the
// given options. Every existing sink is detached first (closing file
// sinks), so calling this repeatedly never accumulates handlers: the sink
// set always reflects the most recent call only.
//
// The file sink opens its target in append mode and expects the parent
// directory to exist; path resolution and directory creation are the
// caller's job (see ResolveLogPath). The file is opened before anything
// is detached, so a failed call leaves the previous configuration fully
// intact.
func (h *Handle) configure(o options) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var f *os.File
	if o.toFile {
		var err error
		f, err = os.OpenFile(o.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return &Error{
				Op:      "logging.configure",
				Kind:    "filesystem",
				Message: "opening log file " + o.filePath,
				Err:     err,
			}
		}
	}

	for _, s := range h.sinks {
		if s.closer != nil {
			// Best effort: a sink that fails to close is discarded anyway.
			_ = s.closer.Close()
		}
	}
	h.sinks = nil
	h.level = o.level

	if o.toConsole {
		h.sinks = append(h.sinks, &sink{
			kind:       sinkConsole,
			w:          consoleWriter,
			level:      o.level,
			format:     o.format,
			dateFormat: o.dateFormat,
		})
	}

	if f != nil {
		h.sinks = append(h.sinks, &sink{
			kind:       sinkFile,
			w:          f,
			closer:     f,
			level:      o.level,
			format:     o.format,
			dateFormat: o.dateFormat,
		})
	}

	return nil
}

// sinkCount reports attached sinks by kind. Used by tests and the factory
// summary notice.
func (h *Handle) sinkCount(kind sinkKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, s := range h.sinks {
		if s.kind == kind {
			n++
		}
	}
	return n
}

// log renders one record and writes it to every sink at or below the
// record's severity. Records below the handle's level are dropped.
func (h *Handle) log(level Level, msg string, fields map[string]interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if level < h.level || len(h.sinks) == 0 {
		return
	}

	now := time.Now()
	for _, s := range h.sinks {
		if level < s.level {
			continue
		}
		line := renderRecord(s.format, s.dateFormat, now, level, h.displayName(), msg, fields)
		fmt.Fprintln(s.w, line)
	}
}

// renderRecord substitutes the record's fields into the format template
// and appends structured fields as sorted key=value pairs.
func renderRecord(format, dateFormat string, ts time.Time, level Level, name, msg string, fields map[string]interface{}) string {
	line := strings.NewReplacer(
		"{time}", ts.Format(dateFormat),
		"{level}", level.String(),
		"{name}", name,
		"{message}", msg,
	).Replace(format)

	if len(fields) == 0 {
		return line
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(line)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// Debug logs at DEBUG level.
func (h *Handle) Debug(msg string, fields map[string]interface{}) {
	h.log(LevelDebug, msg, fields)
}

// Info logs at INFO level.
func (h *Handle) Info(msg string, fields map[string]interface{}) {
	h.log(LevelInfo, msg, fields)
}

// Warn logs at WARNING level.
func (h *Handle) Warn(msg string, fields map[string]interface{}) {
	h.log(LevelWarning, msg, fields)
}

// Error logs at ERROR level.
func (h *Handle) Error(msg string, fields map[string]interface{}) {
	h.log(LevelError, msg, fields)
}

// Critical logs at CRITICAL level.
func (h *Handle) Critical(msg string, fields map[string]interface{}) {
	h.log(LevelCritical, msg, fields)
}
