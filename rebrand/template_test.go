package rebrand

import (
	"os"
	"path/filepath"
	"testing"
)

const activityTemplatePath = "android/app/src/main/java/com/avarnic/calurcap/MainActivity.java"

// templateFiles is a trimmed copy of the Calurcap template project.
func templateFiles() map[string]string {
	return map[string]string{
		PathPackageJSON: `{
	"name": "calurcap",
	"version": "0.0.1",
	"private": true,
	"scripts": {
		"dev": "vite dev",
		"build": "vite build"
	}
}
`,
		PathCapacitorConfig: `import type { CapacitorConfig } from '@capacitor/cli';

const config: CapacitorConfig = {
  appId: 'com.avarnic.calurcap',
  appName: 'Calurcap',
  webDir: 'build',
  plugins: {
    GoogleAuth: {
      scopes: ['profile', 'email'],
      serverClientId: 'YOUR_GOOGLE_CLIENT_ID.apps.googleusercontent.com',
      forceCodeForRefreshToken: true,
    },
  },
};

export default config;
`,
		PathBuildGradle: `apply plugin: 'com.android.application'

android {
    namespace "com.avarnic.calurcap"
    compileSdk rootProject.ext.compileSdkVersion
    defaultConfig {
        applicationId "com.avarnic.calurcap"
        minSdkVersion rootProject.ext.minSdkVersion
        versionCode 1
        versionName "1.0"
    }
}
`,
		PathSupabaseClient: `import { createClient } from '@supabase/supabase-js';

const supabaseUrl = import.meta.env.VITE_SUPABASE_URL || 'https://placeholder.supabase.co';
const supabaseAnonKey = import.meta.env.VITE_SUPABASE_ANON_KEY || 'placeholder-key';

export const supabase = createClient(supabaseUrl, supabaseAnonKey);
`,
		PathStringsXML: `<?xml version='1.0' encoding='utf-8'?>
<resources>
    <string name="app_name">Calurcap</string>
    <string name="title_activity_main">Calurcap</string>
    <string name="package_name">com.avarnic.calurcap</string>
    <string name="custom_url_scheme">com.avarnic.calurcap</string>
</resources>
`,
		PathLandingPage: `<svelte:head>
	<title>Calurcap.</title>
</svelte:head>

<h1 class="brand">
	Calurcap
</h1>
<p>Welcome to Calurcap.</p>
`,
		activityTemplatePath: `package com.avarnic.calurcap;

import com.getcapacitor.BridgeActivity;

public class MainActivity extends BridgeActivity {}
`,
	}
}

// setupTestDir creates a temporary project containing files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// snapshot returns the content of every regular file under root keyed by
// its slash-separated relative path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return files
}
