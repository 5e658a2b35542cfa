package logging

import "fmt"

// GetLogger returns a context-aware logger for name, configured from the
// layered configuration (options > active tier > default tier). The
// configuration file is re-read on every call, the named handle is looked
// up in the default registry and its sink set is rebuilt to match the
// resolved options, so repeated calls reconfigure rather than duplicate.
//
// The log file path is resolved (and the logs directory created) only when
// file logging is enabled. When the resolved level is DEBUG, one
// initialization notice is emitted through the returned adapter.
func GetLogger(name string, opts ...Option) (*ContextLogger, error) {
	return defaultRegistry.GetLogger(name, opts...)
}

// InitializeRootLogger configures the process root logger from the layered
// configuration and emits a summary notice of the chosen options. It is
// intended to run once at startup, before workers spawn; calling it again
// fully reconfigures the root handle without error.
func InitializeRootLogger(opts ...Option) error {
	return defaultRegistry.InitializeRootLogger(opts...)
}

// GetLogger is the registry-scoped equivalent of the package-level
// function, for hosts that carry their own Registry.
func (r *Registry) GetLogger(name string, opts ...Option) (*ContextLogger, error) {
	adapter, o, err := r.configureLogger(name, opts)
	if err != nil {
		return nil, err
	}

	if o.level == LevelDebug {
		adapter.Info(fmt.Sprintf("initialized logger %q at level %s", adapter.handle.displayName(), o.level), nil)
	}
	return adapter, nil
}

// InitializeRootLogger is the registry-scoped equivalent of the
// package-level function.
func (r *Registry) InitializeRootLogger(opts ...Option) error {
	adapter, o, err := r.configureLogger(RootName, opts)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"log_level":      o.level.String(),
		"log_to_console": o.toConsole,
		"log_to_file":    o.toFile,
	}
	if o.toFile {
		fields["log_file_path"] = o.filePath
	}
	adapter.Info("root logger configured", fields)
	return nil
}

// configureLogger runs the shared sequence: load and resolve the layered
// configuration, resolve the file path if needed, reconfigure the handle.
func (r *Registry) configureLogger(name string, opts []Option) (*ContextLogger, options, error) {
	s, err := loadSettings(opts)
	if err != nil {
		return nil, options{}, err
	}

	o, err := s.resolve()
	if err != nil {
		return nil, options{}, err
	}

	if o.toFile {
		path, err := ResolveLogPath(o.filePath)
		if err != nil {
			return nil, options{}, err
		}
		o.filePath = path
	}

	h := r.Lookup(name)
	if err := h.configure(o); err != nil {
		return nil, options{}, err
	}
	return newContextLogger(h), o, nil
}
