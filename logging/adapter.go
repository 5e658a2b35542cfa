package logging

import (
	"reflect"
	"runtime"
	"strings"
)

// ContextLogger wraps a Handle and prefixes every message with the
// identity of the calling component, so a single shared logger produces
// per-caller-tagged output.
//
// The preferred way to establish identity is explicit: WithComponent binds
// a name at construction time. When no name is bound, the adapter falls
// back to inspecting the call stack for the nearest method receiver type
// outside this package. The inspection is best effort and can never fail;
// when nothing useful is found the message is emitted without a prefix.
type ContextLogger struct {
	handle    *Handle
	component string
}

func newContextLogger(h *Handle) *ContextLogger {
	return &ContextLogger{handle: h}
}

// Handle returns the underlying logger handle.
func (l *ContextLogger) Handle() *Handle {
	return l.handle
}

// WithComponent returns a new adapter bound to the same handle that
// prefixes every message with name instead of inspecting the stack.
func (l *ContextLogger) WithComponent(name string) *ContextLogger {
	return &ContextLogger{handle: l.handle, component: name}
}

func (l *ContextLogger) emit(level Level, msg string, fields map[string]interface{}) {
	prefix := l.component
	if prefix == "" {
		prefix = callerTypeName()
	}
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	l.handle.log(level, msg, fields)
}

// Debug logs at DEBUG level.
func (l *ContextLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit(LevelDebug, msg, fields)
}

// Info logs at INFO level.
func (l *ContextLogger) Info(msg string, fields map[string]interface{}) {
	l.emit(LevelInfo, msg, fields)
}

// Warn logs at WARNING level.
func (l *ContextLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit(LevelWarning, msg, fields)
}

// Error logs at ERROR level.
func (l *ContextLogger) Error(msg string, fields map[string]interface{}) {
	l.emit(LevelError, msg, fields)
}

// Critical logs at CRITICAL level.
func (l *ContextLogger) Critical(msg string, fields map[string]interface{}) {
	l.emit(LevelCritical, msg, fields)
}

// ownPkgPrefix is this package's import path plus a trailing dot, derived
// at init so the stack walk can tell its own frames from caller frames
// without hardcoding the module path.
var ownPkgPrefix = func() string {
	fn := runtime.FuncForPC(reflect.ValueOf(receiverTypeOf).Pointer()).Name()
	if i := strings.LastIndex(fn, "."); i >= 0 {
		return fn[:i+1]
	}
	return fn
}()

// callerTypeName walks outward through the caller frames and returns the
// receiver type name of the first method frame outside this package, so
// internal machinery (the adapter, handles, the registry, the factory)
// never becomes a message prefix. Plain function frames have no receiver
// and are skipped. Returns "" when the walk exhausts all frames. Must
// never panic; logging cannot be allowed to crash the caller.
func callerTypeName() (name string) {
	defer func() {
		if r := recover(); r != nil {
			name = ""
		}
	}()

	pc := make([]uintptr, 32)
	// Skip runtime.Callers, callerTypeName and emit.
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, ownPkgPrefix) {
			if typ := receiverTypeOf(frame.Function); typ != "" {
				return typ
			}
		}
		if !more {
			return ""
		}
	}
}

// receiverTypeOf extracts the receiver type from a fully qualified
// function name such as "example.com/pkg.(*Foo).Bar", returning "" for
// plain functions.
func receiverTypeOf(fn string) string {
	if fn == "" {
		return ""
	}
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	// Generic instantiations ("[...]") contain dots; drop them before
	// splitting so "pkg.Fn[...]" is still seen as a plain function.
	fn = strings.ReplaceAll(fn, "[...]", "")
	parts := strings.Split(fn, ".")
	if len(parts) < 3 {
		return ""
	}
	recv := parts[1]
	recv = strings.TrimPrefix(recv, "(*")
	recv = strings.TrimSuffix(recv, ")")
	// Generic receivers carry their instantiation: Foo[...] -> Foo.
	if i := strings.Index(recv, "["); i >= 0 {
		recv = recv[:i]
	}
	if recv == "" || !isExportedOrIdent(recv) {
		return ""
	}
	return recv
}

func isExportedOrIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
