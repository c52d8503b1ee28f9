package config

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		want     Options
	}{
		{
			name:     "no flags shows everything",
			args:     []string{"file.txt"},
			wantPath: "file.txt",
			want:     Options{ShowLines: true, ShowWords: true, ShowChars: true},
		},
		{
			name:     "all flags",
			args:     []string{"-l", "-w", "-c", "file.txt"},
			wantPath: "file.txt",
			want:     Options{ShowLines: true, ShowWords: true, ShowChars: true},
		},
		{
			name:     "lines only",
			args:     []string{"-l", "file.txt"},
			wantPath: "file.txt",
			want:     Options{ShowLines: true},
		},
		{
			name:     "combined short flags",
			args:     []string{"-cw", "file.txt"},
			wantPath: "file.txt",
			want:     Options{ShowWords: true, ShowChars: true},
		},
		{
			name:     "flags after path",
			args:     []string{"file.txt", "-c"},
			wantPath: "file.txt",
			want:     Options{ShowChars: true},
		},
		{
			name:     "long flags",
			args:     []string{"--words", "--lines", "file.txt"},
			wantPath: "file.txt",
			want:     Options{ShowLines: true, ShowWords: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, c.Path)
			assert.Equal(t, tt.want, c.Effective())
		})
	}
}

func TestEffectiveDoesNotMutate(t *testing.T) {
	c, err := Parse([]string{"file.txt"}, &bytes.Buffer{})
	require.NoError(t, err)

	_ = c.Effective()
	assert.False(t, c.Lines)
	assert.False(t, c.Words)
	assert.False(t, c.Chars)
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]string{"file.txt"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "WARN", c.LogLevel)
	assert.False(t, c.JSONOutput)
	assert.False(t, c.Verbose)
	assert.NotEmpty(t, c.Version)
}

func TestParseNoColor(t *testing.T) {
	c, err := Parse([]string{"--no-color", "file.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, c.UseColors)
}

func TestParseErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := Parse([]string{"-l"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("too many paths", func(t *testing.T) {
		_, err := Parse([]string{"a.txt", "b.txt"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrUsage)
		assert.Contains(t, err.Error(), "got 2")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := Parse([]string{"-z", "a.txt"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUsage)
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		_, err := Parse([]string{"--help"}, &out)
		assert.ErrorIs(t, err, pflag.ErrHelp)
		assert.Contains(t, out.String(), "Usage: wc")
	})
}

func TestParseVersionWithoutPath(t *testing.T) {
	c, err := Parse([]string{"--version"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, c.ShowVersion)
	assert.Empty(t, c.Path)
}

func TestParseVersionFillsColorSetting(t *testing.T) {
	version, err := Parse([]string{"--version"}, &bytes.Buffer{})
	require.NoError(t, err)
	regular, err := Parse([]string{"file.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, regular.UseColors, version.UseColors)

	version, err = Parse([]string{"--version", "--no-color"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, version.NoColor)
	assert.False(t, version.UseColors)
}
