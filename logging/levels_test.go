package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelRecognizesAllNames(t *testing.T) {
	cases := map[string]Level{
		"DEBUG":    LevelDebug,
		"INFO":     LevelInfo,
		"WARNING":  LevelWarning,
		"WARN":     LevelWarning,
		"ERROR":    LevelError,
		"CRITICAL": LevelCritical,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, "level %s", name)
		assert.Equal(t, want, got, "level %s", name)
	}
}

func TestParseLevelIsCaseInsensitive(t *testing.T) {
	got, err := ParseLevel("  debug ")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, got)

	got, err = ParseLevel("Warning")
	require.NoError(t, err)
	assert.Equal(t, LevelWarning, got)
}

func TestParseLevelRejectsUnknownNames(t *testing.T) {
	_, err := ParseLevel("VERBOSE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
	assert.True(t, IsConfigurationError(err))
}

func TestLevelStringMatchesConfigurationEnum(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARNING", LevelWarning.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "CRITICAL", LevelCritical.String())
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, LevelDebug < LevelInfo)
	assert.True(t, LevelInfo < LevelWarning)
	assert.True(t, LevelWarning < LevelError)
	assert.True(t, LevelError < LevelCritical)
}
