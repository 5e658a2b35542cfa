package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLogPathReturnsAbsolutePathUnchanged(t *testing.T) {
	_, deep := makeProject(t)
	abs := filepath.Join(t.TempDir(), "elsewhere.log")

	got, err := resolveLogPathFrom(deep, abs)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestResolveLogPathJoinsRelativePathToProjectRoot(t *testing.T) {
	root, deep := makeProject(t)

	got, err := resolveLogPathFrom(deep, filepath.Join("var", "out.log"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "var", "out.log"), got)
}

func TestResolveLogPathDefaultsToLogsDirNamedAfterRoot(t *testing.T) {
	root, deep := makeProject(t)

	got, err := resolveLogPathFrom(deep, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "logs", filepath.Base(root)+".log"), got)

	info, err := os.Stat(filepath.Join(root, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "logs directory should have been created")
}

func TestResolveLogPathDefaultIsIdempotent(t *testing.T) {
	_, deep := makeProject(t)

	first, err := resolveLogPathFrom(deep, "")
	require.NoError(t, err)
	second, err := resolveLogPathFrom(deep, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveLogPathPropagatesMissingProjectRoot(t *testing.T) {
	dir := t.TempDir()

	_, err := resolveLogPathFrom(dir, "relative.log")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProjectRootNotFound))
}
