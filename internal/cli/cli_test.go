package cli

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, false, true)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Info("hidden %d", 1)
	l.Debug("resolved %s", "i32")
	l.Warn("careful")
	l.Error("failed: %v", "boom")

	be.Equal(t, buf.String(), "[DEBUG] 03:04:05: resolved i32\n"+
		"[WARN] 03:04:05: careful\n"+
		"[ERROR] 03:04:05: failed: boom\n")
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	l.Info("x")
	l.Debug("x")
	l.Warn("x")
	l.Error("x")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), DefaultConfigFile))
	be.Err(t, err, nil)
	be.Equal(t, cfg.Color, ColorAuto)
	be.Equal(t, cfg.Module.Name, "main")
	be.True(t, cfg.Jobs >= 1)

	cfg, err = LoadConfig("")
	be.Err(t, err, nil)
	be.Equal(t, cfg.WorkDir, ".")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	data := `{"verbose": true, "jobs": 3, "color": "never", "module": {"name": "geo", "version": "1.2.0"}, "compiler": ">=0.1.0"}`
	be.Err(t, os.WriteFile(path, []byte(data), 0o644), nil)

	cfg, err := LoadConfig(path)
	be.Err(t, err, nil)
	be.True(t, cfg.Verbose)
	be.Equal(t, cfg.Jobs, 3)
	be.Equal(t, cfg.Color, ColorNever)
	be.Equal(t, cfg.Module, ModuleConfig{Name: "geo", Version: "1.2.0"})
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"syntax", `{"jobs": `, "failed to parse config file"},
		{"jobs", `{"jobs": 0}`, "jobs must be at least 1"},
		{"color", `{"color": "rainbow"}`, `got "rainbow"`},
		{"module version", `{"module": {"name": "m", "version": "one"}}`, `module version "one"`},
		{"bad constraint", `{"compiler": "?!"}`, "compiler constraint"},
		{"unsatisfied", `{"compiler": ">=99.0.0"}`, "does not satisfy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFile)
			be.Err(t, os.WriteFile(path, []byte(tt.data), 0o644), nil)
			_, err := LoadConfig(path)
			be.Err(t, err, tt.wantErr)
		})
	}
}

func TestCheckCompiler(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compiler = "^0.4"
	be.Err(t, cfg.CheckCompiler("0.4.7"), nil)
	be.Err(t, cfg.CheckCompiler("0.5.0"), "does not satisfy")
	be.Err(t, cfg.CheckCompiler("x"), "compiler version")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	cfg := DefaultConfig()
	cfg.Jobs = 2
	cfg.Module.Name = "geo"
	be.Err(t, cfg.SaveConfig(path), nil)

	loaded, err := LoadConfig(path)
	be.Err(t, err, nil)
	be.Equal(t, loaded.Jobs, 2)
	be.Equal(t, loaded.Module.Name, "geo")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "seamc", false)
	be.True(t, strings.HasPrefix(buf.String(), "seamc v"+Version+"\n"))

	buf.Reset()
	PrintVersion(&buf, "seamc", true)
	be.True(t, strings.Contains(buf.String(), `"tool": "seamc"`))
}

func TestPrintCommandUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintCommandUsage(&buf, CommandInfo{
		Name:        "seamc",
		Usage:       "seamc [options] file.seam...",
		Description: "seam compiler front end",
		Examples:    []string{"seamc -dump-ast main.seam"},
	})
	be.True(t, strings.Contains(buf.String(), "EXAMPLES:\n    seamc -dump-ast main.seam\n"))
	be.True(t, strings.HasSuffix(buf.String(), "OPTIONS:\n"))
}

func TestExitWithCode(t *testing.T) {
	if code := os.Getenv("SEAM_EXIT_CODE"); code != "" {
		n, _ := strconv.Atoi(code)
		ExitWithCode(n, "stopped after %d files", 3)
		return
	}

	tests := []struct {
		code   int
		stderr string
	}{
		{ExitFailure, "Error: stopped after 3 files\n"},
		{ExitInternal, "Error: stopped after 3 files\n"},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.code), func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExitWithCode$")
			cmd.Env = append(os.Environ(), "SEAM_EXIT_CODE="+strconv.Itoa(tt.code))
			var stderr bytes.Buffer
			cmd.Stderr = &stderr

			err := cmd.Run()
			var exitErr *exec.ExitError
			be.True(t, errors.As(err, &exitErr))
			be.Equal(t, exitErr.ExitCode(), tt.code)
			be.Equal(t, stderr.String(), tt.stderr)
		})
	}
}
