package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/vlq"
	"github.com/wippyai/vlq/sourcemap"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg config)
	}{
		{
			name: "positional mappings",
			args: []string{"AAAA;AACA"},
			check: func(t *testing.T, cfg config) {
				if cfg.mappings != "AAAA;AACA" {
					t.Errorf("mappings = %q", cfg.mappings)
				}
				if cfg.color != "auto" {
					t.Errorf("color = %q, want auto", cfg.color)
				}
			},
		},
		{
			name: "file and flags",
			args: []string{"-file", "out.js.map", "-v", "-color", "never"},
			check: func(t *testing.T, cfg config) {
				if cfg.file != "out.js.map" || !cfg.verbose || cfg.color != "never" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "interactive without input",
			args: []string{"-i"},
			check: func(t *testing.T, cfg config) {
				if !cfg.interactive {
					t.Error("interactive not set")
				}
			},
		},
		{name: "no input", args: nil, wantErr: true},
		{name: "both inputs", args: []string{"-file", "x.map", "AAAA"}, wantErr: true},
		{name: "too many args", args: []string{"AAAA", "CAAC"}, wantErr: true},
		{name: "bad color", args: []string{"-color", "sometimes", "AAAA"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got cfg %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestDump(t *testing.T) {
	m, err := sourcemap.DecodeMappings("AAAAA,IAAI;ACAAC")
	if err != nil {
		t.Fatalf("DecodeMappings: %v", err)
	}
	sm := &sourcemap.SourceMap{
		Sources:  []string{"a.js", "b.js"},
		Names:    []string{"foo", "bar"},
		Mappings: m,
	}

	var b strings.Builder
	if err := dump(&b, sm, newStyles(false)); err != nil {
		t.Fatalf("dump: %v", err)
	}

	want := strings.Join([]string{
		"================",
		"Line 0",
		"   column 0",
		"   source #0 (a.js)",
		"   orig line 0",
		"   orig column 0",
		"   name #0 (foo)",
		"",
		"   column 4",
		"   source #0 (a.js)",
		"   orig line 0",
		"   orig column 4",
		"",
		"",
		"================",
		"Line 1",
		"   column 0",
		"   source #1 (b.js)",
		"   orig line 0",
		"   orig column 4",
		"   name #1 (bar)",
		"",
		"",
		"",
	}, "\n")
	if b.String() != want {
		t.Errorf("dump output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestDumpWithoutNames(t *testing.T) {
	m, err := sourcemap.DecodeMappings("C")
	if err != nil {
		t.Fatalf("DecodeMappings: %v", err)
	}
	var b strings.Builder
	if err := dump(&b, &sourcemap.SourceMap{Mappings: m}, newStyles(false)); err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "================\nLine 0\n   column 1\n\n\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestLoad(t *testing.T) {
	t.Run("mappings argument", func(t *testing.T) {
		sm, err := load(config{mappings: "AAAA;AACA"})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(sm.Mappings) != 2 {
			t.Errorf("got %d lines, want 2", len(sm.Mappings))
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.js.map")
		doc := `{"version":3,"sources":["a.js"],"names":[],"mappings":"AAAA"}`
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatal(err)
		}
		sm, err := load(config{file: path})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if s, ok := sm.Source(0); !ok || s != "a.js" {
			t.Errorf("Source(0) = %q, %v", s, ok)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := load(config{file: filepath.Join(t.TempDir(), "absent.map")})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist in chain, got %v", err)
		}
	})

	t.Run("bad mappings", func(t *testing.T) {
		_, err := load(config{mappings: "A!"})
		if !errors.Is(err, vlq.ErrInvalidBase64) {
			t.Errorf("expected ErrInvalidBase64, got %v", err)
		}
	})
}

func TestInteractiveModel(t *testing.T) {
	m, err := sourcemap.DecodeMappings("AAAA")
	if err != nil {
		t.Fatalf("DecodeMappings: %v", err)
	}
	model := newInteractiveModel(&sourcemap.SourceMap{Mappings: m}, newStyles(false))
	if model.err != nil {
		t.Fatalf("initial decode: %v", model.err)
	}
	if !strings.Contains(model.View(), "orig column 0") {
		t.Errorf("view missing dump:\n%s", model.View())
	}

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	if !errors.Is(model.err, vlq.ErrInvalidBase64) {
		t.Fatalf("expected ErrInvalidBase64 after typing '!', got %v", model.err)
	}
	if !strings.Contains(model.View(), "Error:") {
		t.Errorf("view missing error:\n%s", model.View())
	}

	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("esc should return a quit command")
	}
}
