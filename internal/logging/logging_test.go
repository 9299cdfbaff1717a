package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, Level("debug"))
	assert.Equal(t, zerolog.WarnLevel, Level(" WARN "))
	assert.Equal(t, zerolog.NoLevel, Level("none"))
	assert.Equal(t, zerolog.InfoLevel, Level(""))
	assert.Equal(t, zerolog.InfoLevel, Level("verbose"))
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courtview.log")

	l, closeFn, err := New(Options{Level: "debug", File: path, Interactive: true})
	require.NoError(t, err)
	l.Debug().Str("endpoint", "shotchartdetail").Msg("fetch")
	l.Trace().Msg("hidden")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"endpoint":"shotchartdetail"`)
	assert.Contains(t, string(data), `"message":"fetch"`)
	assert.NotContains(t, string(data), "hidden")

	// appends on reopen
	l, closeFn, err = New(Options{File: path})
	require.NoError(t, err)
	l.Info().Msg("second")
	closeFn()
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch")
	assert.Contains(t, string(data), "second")
}

func TestNew_BadFile(t *testing.T) {
	_, closeFn, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening log file")
	assert.NotNil(t, closeFn)
}

func TestNew_InteractiveIsSilent(t *testing.T) {
	l, closeFn, err := New(Options{Interactive: true})
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
