package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/storage"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "quick.yaml")
	if err := os.WriteFile(cfgPath, config.DefaultYAML(), 0o644); err != nil {
		t.Fatalf("WriteFile() = %v", err)
	}

	flagConfig, flagSeed, flagDBPath, flagFrameTime = cfgPath, 0, filepath.Join(dir, "quick.db"), 0
	flagDifficulty, flagMute, flagLogFile, flagLogLevel = "", true, "", "error"
	flagTicks, flagOut, flagInput, flagGamepad, flagClear = 120, "", "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list = %v", err)
	}
	for _, id := range []string{"bricks", "paddle"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")

	for _, path := range []string{first, second} {
		if _, err := execute(t, "snapshot", "paddle", "--seed", "7", "--ticks", "90", "--out", path); err != nil {
			t.Fatalf("snapshot = %v", err)
		}
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 48 {
		t.Errorf("bounds = %v, expected 80x48", b)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Errorf("snapshots with the same seed differ")
	}
}

func TestSnapshotWithScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.png")
	if _, err := execute(t, "snapshot", "bricks", "--seed", "11", "--input", "20:A 30-40:Right", "--ticks", "60", "--out", path); err != nil {
		t.Fatalf("snapshot = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat() = %v, expected the PNG", err)
	}
}

func TestSnapshotWithGamepad(t *testing.T) {
	dir := t.TempDir()
	pad := filepath.Join(dir, "pad.yaml")
	if err := os.WriteFile(pad, []byte("- {from: 0, to: 40, axes: [-1, 0]}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() = %v", err)
	}

	withPad := filepath.Join(dir, "pad.png")
	idle := filepath.Join(dir, "idle.png")
	if _, err := execute(t, "snapshot", "paddle", "--seed", "7", "--ticks", "30", "--gamepad", pad, "--out", withPad); err != nil {
		t.Fatalf("snapshot --gamepad = %v", err)
	}
	if _, err := execute(t, "snapshot", "paddle", "--seed", "7", "--ticks", "30", "--out", idle); err != nil {
		t.Fatalf("snapshot = %v", err)
	}

	a, _ := os.ReadFile(withPad)
	b, _ := os.ReadFile(idle)
	if bytes.Equal(a, b) {
		t.Errorf("gamepad replay left the frame unchanged, expected the paddle to move")
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown demo", []string{"snapshot", "nope"}},
		{"bad script", []string{"snapshot", "paddle", "--input", "5:Jump"}},
		{"bad ticks", []string{"snapshot", "paddle", "--ticks", "0"}},
		{"script and gamepad", []string{"snapshot", "paddle", "--input", "1:A", "--gamepad", "pad.yaml"}},
		{"missing gamepad file", []string{"snapshot", "paddle", "--gamepad", "does-not-exist.yaml"}},
		{"bad difficulty", []string{"snapshot", "paddle", "--difficulty", "insane"}},
		{"play unknown", []string{"play", "nope"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Errorf("%v = nil, expected an error", tc.args)
			}
		})
	}
}

func TestSaves(t *testing.T) {
	db := filepath.Join(t.TempDir(), "saves.db")
	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if err := store.Put("bricks", []byte("best: 2\n")); err != nil {
		t.Fatalf("Put() = %v", err)
	}
	store.Close()

	out, err := execute(t, "saves", "--db", db)
	if err != nil {
		t.Fatalf("saves = %v", err)
	}
	if !strings.Contains(out, "bricks") {
		t.Errorf("saves output missing bricks:\n%s", out)
	}

	if _, err := execute(t, "saves", "--db", db, "--clear", "bricks"); err != nil {
		t.Fatalf("saves --clear = %v", err)
	}
	out, err = execute(t, "saves", "--db", db)
	if err != nil {
		t.Fatalf("saves = %v", err)
	}
	if !strings.Contains(out, "No saves yet.") {
		t.Errorf("saves output after clear = %q, expected empty", out)
	}
}
