// Package logger builds the process logger and writes per-segment stage
// traces for debugging.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New returns a slog logger writing to w. format is "text" or "json".
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl := slog.LevelInfo
	if level == "" {
		level = "info"
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// Stage is the text of a segment after one pipeline stage.
type Stage struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Trace records every stage a segment went through.
type Trace struct {
	ID     string  `json:"id"`
	Index  int     `json:"index"`
	Input  string  `json:"input"`
	Stages []Stage `json:"stages"`
	Error  string  `json:"error,omitempty"`
}

// Add appends the text after stage name.
func (t *Trace) Add(name, text string) {
	t.Stages = append(t.Stages, Stage{Name: name, Text: text})
}

// Tracer writes traces as <dir>/<id>.json. A nil Tracer discards them.
type Tracer struct {
	dir string
}

// NewTracer prepares dir for a run and returns a Tracer writing into it.
// An empty dir returns nil.
func NewTracer(dir string) (*Tracer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := InitLogs(dir); err != nil {
		return nil, err
	}
	return &Tracer{dir: dir}, nil
}

// Write stores tr.
func (t *Tracer) Write(tr *Trace) error {
	if t == nil || tr == nil {
		return nil
	}
	return LogJSON(t.dir, tr.ID, tr)
}

// InitLogs makes sure dir exists and removes the .json files left by an
// earlier run.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		// keep going; a stale file is harmless
		_ = os.Remove(f)
	}
	return nil
}

// LogJSON writes v as indented JSON to <dir>/<name>.json through a temporary
// file, so readers never see a partial file.
func LogJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name)+".json")
	tmp := final + ".tmp"
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
