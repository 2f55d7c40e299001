package main

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	name = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestRunArgs(t *testing.T) {
	out, _, err := runCmd(t, "", "m", "1", "1", "h", "2", "v", "2", "z")
	require.NoError(t, err)
	assert.Equal(t, "M1,1L3,1L3,3Z\nbounds: x=1 y=1 width=2 height=2\n", out)
}

func TestRunStdin(t *testing.T) {
	out, _, err := runCmd(t, "M0 0 L4 2\n")
	require.NoError(t, err)
	assert.Equal(t, "M0,0L4,2\nbounds: x=0 y=0 width=4 height=2\n", out)
}

func TestRunTransform(t *testing.T) {
	out, _, err := runCmd(t, "", "-transform", "translate(10 20) scale(2)", "M0 0 L1 1")
	require.NoError(t, err)
	assert.Equal(t, "M10,20L12,22\nbounds: x=10 y=20 width=2 height=2\n", out)
}

func TestRunBoundsMatchPathFormat(t *testing.T) {
	out, _, err := runCmd(t, "", "M0 0 L1000000 0.5")
	require.NoError(t, err)
	assert.Equal(t, "M0,0L1000000,0.5\nbounds: x=0 y=0 width=1000000 height=0.5\n", out)
}

func TestRunPrecisionAndStripes(t *testing.T) {
	out, _, err := runCmd(t, "", "-precision", "2", "-stripes", "M0 0 L3 0 L1.23456 2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "M0,0L3,0L1.23,2", lines[0])
	assert.Equal(t, "bounds: x=0 y=0 width=3 height=2", lines[1])
	assert.Equal(t, "stripe: 0 0 1 0 2 0 3 0 2.41 0.67 1.82 1.33 1.23 2", lines[2])
}

func TestRunSVG(t *testing.T) {
	name := writeFile(t, "doc.svg", `<svg>
  <line id="a" x1="0" y1="0" x2="5" y2="0"/>
  <rect width="1" height="2"/>
</svg>`)
	out, _, err := runCmd(t, "", "-svg", name)
	require.NoError(t, err)
	want := "line#a:\n" +
		"M0,0L5,0\nbounds: x=0 y=0 width=5 height=0\n" +
		"\n" +
		"rect:\n" +
		"M0,0L1,0L1,2L0,2Z\nbounds: x=0 y=0 width=1 height=2\n"
	assert.Equal(t, want, out)

	_, _, err = runCmd(t, "", "-svg", name, "M0 0")
	assert.Error(t, err)
}

func TestRunConfig(t *testing.T) {
	cfg := writeFile(t, "pathinfo.toml", `
precision = 1
transform = "scale(10)"
log_level = "debug"
`)
	out, logs, err := runCmd(t, "", "-config", cfg, "M0.123 0")
	require.NoError(t, err)
	assert.Equal(t, "M1.2,0\nbounds: x=1.2 y=0 width=0 height=0\n", out)
	assert.Empty(t, logs)

	// Flags override the file.
	out, _, err = runCmd(t, "", "-config", cfg, "-precision", "0", "-transform", "", "M0.125 0")
	require.NoError(t, err)
	assert.Equal(t, "M0.125,0\nbounds: x=0.125 y=0 width=0 height=0\n", out)
}

func TestRunLogging(t *testing.T) {
	_, logs, err := runCmd(t, "", "-v", "M0 0 A 1 1 0 0 1 10 0")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=DEBUG")

	_, logs, err = runCmd(t, "", "M0 0 A 1 1 0 0 1 10 0")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad path", []string{"M0 0 L1"}},
		{"bad transform", []string{"-transform", "spin(1)", "M0 0"}},
		{"negative precision", []string{"-precision", "-1", "M0 0"}},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "none.toml"), "M0 0"}},
		{"missing svg", []string{"-svg", filepath.Join(t.TempDir(), "none.svg")}},
		{"unknown flag", []string{"-frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, "", tt.args...)
			assert.Error(t, err)
		})
	}

	_, _, err := runCmd(t, "", "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestLoadConfig(t *testing.T) {
	name := writeFile(t, "ok.toml", "precision = 3\nstripes = true\nlog_level = \"info\"\n")
	cfg, err := loadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, Config{Precision: 3, Stripes: true, LogLevel: "info"}, cfg)
	l, err := cfg.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	for content, msg := range map[string]string{
		"precision = ":      "syntax",
		"precision = -2":    "negative",
		"precision = \"x\"": "type",
	} {
		_, err := loadConfig(writeFile(t, "bad.toml", content))
		assert.Error(t, err, msg)
	}

	l, err = Config{}.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = Config{LogLevel: "loud"}.level()
	assert.Error(t, err)
}
