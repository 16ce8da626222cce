package rebrand

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const completeNotice = `✨ Setup complete! You may need to run "npx cap sync" to apply changes to the Android project.`

func TestRun(t *testing.T) {
	root := setupTestDir(t, templateFiles())
	var out, logs bytes.Buffer

	err := Run(Options{
		Root: root,
		In:   strings.NewReader("My App\ncom.example.myapp\n\n\n\n"),
		Out:  &out,
		Log:  testLogger(&logs),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	printed := out.String()
	for _, want := range []string{"🚀 Calurcap Setup Wizard", labelAppName, labelGoogleClientID, completeNotice} {
		if !strings.Contains(printed, want) {
			t.Errorf("output missing %q:\n%s", want, printed)
		}
	}
	if !strings.HasSuffix(printed, completeNotice+"\n\n") {
		t.Errorf("completion notice should come last:\n%s", printed)
	}

	if got := readFile(t, root, PathPackageJSON); !strings.Contains(got, `"name": "my-app"`) {
		t.Errorf("package.json:\n%s", got)
	}
	if got := readFile(t, root, PathSupabaseClient); got != templateFiles()[PathSupabaseClient] {
		t.Errorf("supabase client should be untouched:\n%s", got)
	}
	moved := "android/app/src/main/java/com/example/myapp/MainActivity.java"
	if got := readFile(t, root, moved); !strings.HasPrefix(got, "package com.example.myapp;") {
		t.Errorf("activity not moved:\n%s", got)
	}
}

func TestRunAnswersFile(t *testing.T) {
	root := setupTestDir(t, templateFiles())
	answers := filepath.Join(t.TempDir(), "rebrand.env")
	if err := os.WriteFile(answers, []byte("REBRAND_APP_NAME=Acme\nREBRAND_APP_ID=org.acme.app\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	err := Run(Options{Root: root, AnswersFile: answers, In: strings.NewReader(""), Out: &out, Log: testLogger(&bytes.Buffer{})})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), labelAppName) {
		t.Errorf("answers file should replace the prompts:\n%s", out.String())
	}
	if got := readFile(t, root, PathCapacitorConfig); !strings.Contains(got, "appId: 'org.acme.app'") {
		t.Errorf("capacitor config:\n%s", got)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	var out, logs bytes.Buffer

	err := Run(Options{Root: root, In: strings.NewReader("\ncom.example.myapp\n\n\n\n"), Out: &out, Log: testLogger(&logs)})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), completeNotice) {
		t.Errorf("completion notice missing:\n%s", out.String())
	}
	if files := snapshot(t, root); len(files) != 0 {
		t.Errorf("files created in empty directory: %v", files)
	}
	if !strings.Contains(logs.String(), "Could not find MainActivity.java") {
		t.Errorf("missing relocation warning: %q", logs.String())
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	files := templateFiles()
	files[PathPackageJSON] = `{"name": `
	root := setupTestDir(t, files)
	var out bytes.Buffer

	err := Run(Options{Root: root, In: strings.NewReader("My App\ncom.example.myapp\n"), Out: &out, Log: testLogger(&bytes.Buffer{})})
	if err == nil {
		t.Fatal("Run() should fail")
	}
	if strings.Contains(out.String(), completeNotice) {
		t.Error("completion notice printed after a failure")
	}
	if got := readFile(t, root, PathCapacitorConfig); got != files[PathCapacitorConfig] {
		t.Error("later targets should not be touched")
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(activityTemplatePath))); err != nil {
		t.Error("activity should not be moved after a failure")
	}
}
