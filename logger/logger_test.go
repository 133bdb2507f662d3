package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", "json", &buf)
	require.NoError(t, err)
	l.Debug("hello", "k", "v")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	buf.Reset()
	l, err = New("warn", "text", &buf)
	require.NoError(t, err)
	l.Info("quiet")
	assert.Empty(t, buf.String())

	_, err = New("loud", "text", &buf)
	assert.Error(t, err)
	_, err = New("info", "xml", &buf)
	assert.Error(t, err)
}

func TestTracer(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0o644))

	tr, err := NewTracer(dir)
	require.NoError(t, err)
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))

	trace := &Trace{ID: "seg-1", Input: "図2.1"}
	trace.Add("clean", "ず2の1")
	require.NoError(t, tr.Write(trace))

	b, err := os.ReadFile(filepath.Join(dir, "seg-1.json"))
	require.NoError(t, err)
	var got Trace
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, *trace, got)

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestNilTracer(t *testing.T) {
	tr, err := NewTracer("")
	require.NoError(t, err)
	assert.Nil(t, tr)
	assert.NoError(t, tr.Write(&Trace{ID: "x"}))
}
