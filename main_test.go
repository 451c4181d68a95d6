package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chargrid/canvas"
	"chargrid/script"
)

func TestRunDemo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "none.json")

	if err := run([]string{"-config", missing}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	g, err := script.Demo().Run(nil)
	if err != nil {
		t.Fatalf("Demo().Run() error = %v", err)
	}
	if got, want := stdout.String(), g.Render()+"\n"; got != want {
		t.Errorf("stdout =\n%s\nwant\n%s", got, want)
	}
}

func TestRunScriptWithOverrides(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.json")
	err := os.WriteFile(scene, []byte(`{"ops": [
		{"op": "line", "from": [0, 0], "to": [3, 0], "char": "-"},
		{"op": "text", "at": [0, 1], "text": "ok"}
	]}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"-config", filepath.Join(dir, "none.json"), "-columns", "4", "-rows", "2", "-background", ".", scene}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got, want := stdout.String(), "----\nok..\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	var stdout, stderr bytes.Buffer
	args := []string{"-config", filepath.Join(dir, "none.json"), "-o", out}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "Hello!") {
		t.Errorf("output file missing demo text:\n%s", data)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when -o is set, got %q", stdout.String())
	}
}

func TestRunDebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-config", filepath.Join(t.TempDir(), "none.json"), "-log-level", "debug"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "grid created") {
		t.Errorf("debug log missing from stderr:\n%s", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	noConfig := filepath.Join(dir, "none.json")

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"ops": [{"op": "text", "at": [0, 0], "text": "x", "direction": "diagonal"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"Bad background", []string{"-config", noConfig, "-background", "ab"}, canvas.ErrInvalidCharacter},
		{"Bad size", []string{"-config", noConfig, "-rows", "-2"}, canvas.ErrInvalidDimension},
		{"Bad script", []string{"-config", noConfig, bad}, canvas.ErrInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if !errors.Is(err, tt.want) {
				t.Errorf("run() error = %v, want %v", err, tt.want)
			}
		})
	}
}
