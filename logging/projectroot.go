package logging

import (
	"os"
	"path/filepath"
)

// SentinelName is the directory entry that marks the project root.
// Its content is irrelevant; presence alone is the signal.
const SentinelName = ".projectroot"

// FindProjectRoot returns the nearest ancestor directory of start
// (inclusive) that contains the sentinel marker. If start is a file, the
// search begins at its containing directory. There is no fallback: when no
// ancestor carries the marker the search fails with ErrProjectRootNotFound.
func FindProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", &Error{Op: "logging.FindProjectRoot", Kind: "path", Err: err}
	}

	dir := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, SentinelName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root reached.
			return "", &Error{
				Op:      "logging.FindProjectRoot",
				Kind:    "path",
				Message: "no ancestor of " + abs + " contains " + SentinelName,
				Err:     ErrProjectRootNotFound,
			}
		}
		dir = parent
	}
}

// findProjectRootFromWD anchors the sentinel walk at the current working
// directory. The binary has no source location to walk from, so the working
// directory is the search start for both config and log path resolution.
func findProjectRootFromWD() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", &Error{Op: "logging.FindProjectRoot", Kind: "filesystem", Err: err}
	}
	return FindProjectRoot(wd)
}
