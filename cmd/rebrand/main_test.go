package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"watch without answers", []string{"-watch"}, "-watch requires -answers"},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"stray argument", []string{"extra"}, "unexpected arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, strings.NewReader(""), &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("run(%v) error = %v, want %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-h"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run(-h) error = %v", err)
	}
	if !strings.Contains(out.String(), "-answers") {
		t.Errorf("usage missing flags: %q", out.String())
	}
}

func TestRunAnswersFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{\n  \"name\": \"calurcap\"\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	answers := filepath.Join(t.TempDir(), "rebrand.env")
	if err := os.WriteFile(answers, []byte("REBRAND_APP_NAME=Demo App\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	if err := run([]string{"-root", root, "-answers", answers, "-no-color"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	b, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"name": "demo-app"`) {
		t.Errorf("package.json = %s", b)
	}
	if !strings.Contains(out.String(), "(rebrand)  Updated package.json") {
		t.Errorf("missing status line: %q", out.String())
	}
	if !strings.Contains(out.String(), "Setup complete!") {
		t.Errorf("missing completion notice: %q", out.String())
	}
}
