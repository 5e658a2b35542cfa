package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// envVarName selects the active configuration tier.
	envVarName = "ENV"

	// defaultTierName is the tier every environment inherits from.
	defaultTierName = "default"

	// configPathEnv overrides the configuration file location.
	configPathEnv = "SNOWKIT_CONFIG"

	// configRelPath is the configuration file location under the project root.
	configRelPath = "config/config.yaml"
)

// tier mirrors one named section of the configuration document.
// Every key is optional per tier; pointer fields distinguish "absent"
// from zero values so the per-key merge can tell them apart.
type tier struct {
	LogLevel     *string `yaml:"log_level"`
	LogToConsole *bool   `yaml:"log_to_console"`
	LogToFile    *bool   `yaml:"log_to_file"`
	LogFormat    *string `yaml:"log_format"`
	DateFormat   *string `yaml:"date_format"`
	LogFilePath  *string `yaml:"log_file_path"`
}

// configDocument is the on-disk shape: a logging section holding the
// default tier and zero or more environment-named tiers.
type configDocument struct {
	Logging map[string]tier `yaml:"logging"`
}

// settings is the layered, still-partial configuration: file tiers merged
// per-key, with functional options applied on top. resolve turns it into
// the concrete option set a handle is configured with.
type settings struct {
	level      *Level
	toConsole  *bool
	toFile     *bool
	format     *string
	dateFormat *string
	filePath   *string

	configPath string
}

// options is the fully resolved configuration for one handle.
type options struct {
	level      Level
	toConsole  bool
	toFile     bool
	format     string
	dateFormat string
	filePath   string
}

// Option overrides a single configuration key for one factory call.
// Options are the highest-priority layer, above both configuration tiers.
type Option func(*settings) error

// WithLevel sets the minimum severity level.
func WithLevel(level Level) Option {
	return func(s *settings) error {
		s.level = &level
		return nil
	}
}

// WithLevelName sets the minimum severity level from a configuration-style
// name (DEBUG, INFO, WARNING, ERROR, CRITICAL).
func WithLevelName(name string) Option {
	return func(s *settings) error {
		level, err := ParseLevel(name)
		if err != nil {
			return err
		}
		s.level = &level
		return nil
	}
}

// WithConsole enables or disables the console sink.
func WithConsole(enabled bool) Option {
	return func(s *settings) error {
		s.toConsole = &enabled
		return nil
	}
}

// WithFile enables or disables the file sink.
func WithFile(enabled bool) Option {
	return func(s *settings) error {
		s.toFile = &enabled
		return nil
	}
}

// WithFormat sets the record template. Recognized placeholders are
// {time}, {level}, {name} and {message}.
func WithFormat(format string) Option {
	return func(s *settings) error {
		s.format = &format
		return nil
	}
}

// WithDateFormat sets the Go time layout used for the {time} placeholder.
func WithDateFormat(layout string) Option {
	return func(s *settings) error {
		s.dateFormat = &layout
		return nil
	}
}

// WithFilePath sets the log file path, absolute or project-root-relative.
func WithFilePath(path string) Option {
	return func(s *settings) error {
		s.filePath = &path
		return nil
	}
}

// WithConfigPath reads the tiered configuration from an explicit file
// instead of <project root>/config/config.yaml.
func WithConfigPath(path string) Option {
	return func(s *settings) error {
		s.configPath = path
		return nil
	}
}

// locateConfigFile decides where the configuration document lives:
// an explicit path (option), the SNOWKIT_CONFIG variable, or
// config/config.yaml under the discovered project root, in that order.
func locateConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if fromEnv := os.Getenv(configPathEnv); fromEnv != "" {
		return fromEnv, nil
	}
	root, err := findProjectRootFromWD()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(configRelPath)), nil
}

// loadSettings reads the configuration document, merges the active tier
// over the default tier, and layers the given options on top. The file is
// read fresh on every call so configuration edits are picked up without a
// process restart.
func loadSettings(opts []Option) (settings, error) {
	var s settings

	// Options may carry the config location itself, so apply them first to
	// a scratch copy, read the file, then apply them again so they win.
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return settings{}, err
		}
	}

	path, err := locateConfigFile(s.configPath)
	if err != nil {
		return settings{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings{}, &Error{
			Op:      "logging.loadSettings",
			Kind:    "config",
			Message: fmt.Sprintf("reading %s (%v)", path, err),
			Err:     ErrConfigLoad,
		}
	}

	var doc configDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return settings{}, &Error{
			Op:      "logging.loadSettings",
			Kind:    "config",
			Message: fmt.Sprintf("parsing %s (%v)", path, err),
			Err:     ErrConfigLoad,
		}
	}

	active := os.Getenv(envVarName)
	if active == "" {
		active = defaultTierName
	}

	merged := mergeTiers(doc.Logging[defaultTierName], doc.Logging[active])
	s, err = merged.toSettings()
	if err != nil {
		return settings{}, err
	}
	s.configPath = path

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return settings{}, err
		}
	}
	return s, nil
}

// mergeTiers overlays the active tier on the default tier, key by key.
// The active tier wins wherever it provides a value. An unknown active
// tier name contributes nothing, leaving the default tier's values.
func mergeTiers(base, override tier) tier {
	out := base
	if override.LogLevel != nil {
		out.LogLevel = override.LogLevel
	}
	if override.LogToConsole != nil {
		out.LogToConsole = override.LogToConsole
	}
	if override.LogToFile != nil {
		out.LogToFile = override.LogToFile
	}
	if override.LogFormat != nil {
		out.LogFormat = override.LogFormat
	}
	if override.DateFormat != nil {
		out.DateFormat = override.DateFormat
	}
	if override.LogFilePath != nil {
		out.LogFilePath = override.LogFilePath
	}
	return out
}

// toSettings converts a merged tier to settings, validating the level name
// eagerly so a bad configuration fails at load time rather than first use.
func (t tier) toSettings() (settings, error) {
	var s settings
	if t.LogLevel != nil {
		level, err := ParseLevel(*t.LogLevel)
		if err != nil {
			return settings{}, err
		}
		s.level = &level
	}
	s.toConsole = t.LogToConsole
	s.toFile = t.LogToFile
	s.format = t.LogFormat
	s.dateFormat = t.DateFormat
	s.filePath = t.LogFilePath
	return s, nil
}

// resolve produces the concrete option set. Every key except the file path
// must have a value from some layer; the file path may stay empty because
// ResolveLogPath supplies the default location.
func (s settings) resolve() (options, error) {
	var o options

	missing := func(key string) error {
		return &Error{
			Op:      "logging.resolve",
			Kind:    "config",
			Message: fmt.Sprintf("no value for %q in any configuration layer", key),
			Err:     ErrMissingConfiguration,
		}
	}

	if s.level == nil {
		return options{}, missing("log_level")
	}
	o.level = *s.level

	if s.toConsole == nil {
		return options{}, missing("log_to_console")
	}
	o.toConsole = *s.toConsole

	if s.toFile == nil {
		return options{}, missing("log_to_file")
	}
	o.toFile = *s.toFile

	if s.format == nil {
		return options{}, missing("log_format")
	}
	o.format = *s.format

	if s.dateFormat == nil {
		return options{}, missing("date_format")
	}
	o.dateFormat = *s.dateFormat

	if s.filePath != nil {
		o.filePath = *s.filePath
	}
	return o, nil
}
