package util

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	tests := []struct {
		path     string
		expected string
	}{
		{"~", usr.HomeDir},
		{"~/charts", filepath.Join(usr.HomeDir, "charts")},
		{"/tmp/charts", "/tmp/charts"},
		{"~charts", "~charts"}, // other users' homes are not expanded
		{"", ""},
	}
	for _, test := range tests {
		result := ExpandUser(test.path)
		if result != test.expected {
			t.Errorf("expected %s, got %s for path %s", test.expected, result, test.path)
		}
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.yaml")
	if err := os.WriteFile(file, []byte("mse: [1]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	exists, err := FileExists(file)
	if err != nil || !exists {
		t.Errorf("expected file to exist, got %v, %v", exists, err)
	}
	exists, err = FileExists(filepath.Join(dir, "missing.yaml"))
	if err != nil || exists {
		t.Errorf("expected missing file, got %v, %v", exists, err)
	}
	if _, err = FileExists(dir); err == nil {
		t.Error("expected error for directory passed as file")
	}
	exists, err = DirectoryExists(dir)
	if err != nil || !exists {
		t.Errorf("expected directory to exist, got %v, %v", exists, err)
	}
	if _, err = DirectoryExists(file); err == nil {
		t.Error("expected error for file passed as directory")
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := CreateDirectoryIfNotExists(dir, 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if exists, _ := DirectoryExists(dir); !exists {
		t.Fatal("directory was not created")
	}
	if err := CreateDirectoryIfNotExists(dir, 0755); err != nil {
		t.Errorf("existing directory should not be an error: %v", err)
	}
}

func TestWriteFileInDir(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFileInDir(dir, "charts.html", []byte("<html></html>"))
	if err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if path != filepath.Join(dir, "charts.html") {
		t.Errorf("unexpected path %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil || string(content) != "<html></html>" {
		t.Errorf("unexpected content %q, %v", content, err)
	}
	for _, name := range []string{"", "../charts.html", "sub/charts.html"} {
		if _, err := WriteFileInDir(dir, name, nil); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}
