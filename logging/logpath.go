package logging

import (
	"os"
	"path/filepath"
)

// logsDirName is where the default log file lives under the project root.
const logsDirName = "logs"

// ResolveLogPath derives the absolute log file path from a configured path.
//
//   - An absolute configPath is returned unchanged.
//   - A relative configPath is joined against the discovered project root.
//   - An empty configPath defaults to <root>/logs/<root base name>.log,
//     creating the logs directory if it does not exist.
func ResolveLogPath(configPath string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", &Error{Op: "logging.ResolveLogPath", Kind: "filesystem", Err: err}
	}
	return resolveLogPathFrom(wd, configPath)
}

func resolveLogPathFrom(start, configPath string) (string, error) {
	if configPath != "" && filepath.IsAbs(configPath) {
		return configPath, nil
	}

	root, err := FindProjectRoot(start)
	if err != nil {
		return "", err
	}

	if configPath != "" {
		return filepath.Join(root, configPath), nil
	}

	logDir := filepath.Join(root, logsDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", &Error{
			Op:      "logging.ResolveLogPath",
			Kind:    "filesystem",
			Message: "creating " + logDir,
			Err:     err,
		}
	}

	return filepath.Join(logDir, filepath.Base(root)+".log"), nil
}
