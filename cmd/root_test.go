package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edna-quiz/config"
)

const testData = "../quiz/testdata/data.json"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSpeciesCommand(t *testing.T) {
	out, err := execute(t, "species", "--data", testData, "--lang", "cz")
	require.NoError(t, err)
	assert.Equal(t, "Bobr\nKachna divoká\nRak říční\nSkokan\nŠtika\nVydra\n", out)
}

func TestSpeciesCommandAllLocales(t *testing.T) {
	out, err := execute(t, "species", "--data", testData, "--all")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[en]\nBeaver\n"), out)
	assert.Contains(t, out, "[cz]\nBobr\n")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect", "--data", testData)
	require.NoError(t, err)
	assert.Contains(t, out, "river")
	assert.Contains(t, out, "Pond")
	assert.Contains(t, out, "extras")
	assert.Contains(t, out, "species (en): 6")
	assert.Contains(t, out, "species (cz): 6")
	assert.NotContains(t, out, "blank display")
}

func TestRootRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "species", "--data", testData, "--lang", "de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiz.lang")

	_, err = execute(t, "species", "--data", testData, "--level", "expert")
	require.Error(t, err)
}

func TestMissingDataset(t *testing.T) {
	_, err := execute(t, "species", "--data", "testdata/nope.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading testdata/nope.json")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("whatever"))
}

func TestNewLoggerWritesToGivenOutput(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("dropped")
	logger.Warn("kept", "water", "pond")

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	assert.NotContains(t, line, "dropped")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "pond", rec["water"])
	assert.Equal(t, "edna-quiz", rec["app"])
	assert.NotContains(t, rec, slog.SourceKey)

	buf.Reset()
	NewLogger(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	slog.Debug("default replaced")
	assert.Contains(t, buf.String(), "msg=\"default replaced\"")
	assert.NotContains(t, buf.String(), "source=")
}

func TestScreenLogOutput(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	w, closeLog, err := screenLogOutput("")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
	require.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "quiz.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))
	w, closeLog, err = screenLogOutput(path)
	require.NoError(t, err)
	NewLogger(config.LogConfig{Level: "info", Format: "text"}, w).Info("quiz started")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "earlier\n"))
	assert.Contains(t, string(data), "quiz started")

	_, _, err = screenLogOutput(filepath.Join(t.TempDir(), "missing", "quiz.log"))
	assert.Error(t, err)
}
