package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeProject lays out a marked project root with a nested directory tree
// and returns the root and the deepest directory.
func makeProject(t *testing.T) (root, deep string) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, SentinelName), nil, 0o644))
	deep = filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	return root, deep
}

func TestFindProjectRootFromNestedDirectory(t *testing.T) {
	root, deep := makeProject(t)

	got, err := FindProjectRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindProjectRootFromFileStartsAtContainingDirectory(t *testing.T) {
	root, deep := makeProject(t)
	file := filepath.Join(deep, "main.go")
	require.NoError(t, os.WriteFile(file, []byte("package main\n"), 0o644))

	got, err := FindProjectRoot(file)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindProjectRootIsInclusiveOfStart(t *testing.T) {
	root, _ := makeProject(t)

	got, err := FindProjectRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindProjectRootReturnsNearestMarkedAncestor(t *testing.T) {
	root, deep := makeProject(t)
	// Mark an inner directory too; the nearest marker wins.
	inner := filepath.Join(root, "a")
	require.NoError(t, os.WriteFile(filepath.Join(inner, SentinelName), nil, 0o644))

	got, err := FindProjectRoot(deep)
	require.NoError(t, err)
	assert.Equal(t, inner, got)
}

func TestFindProjectRootFailsWithoutSentinel(t *testing.T) {
	dir := t.TempDir()

	_, err := FindProjectRoot(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProjectRootNotFound))

	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "path", lerr.Kind)
}
