// File: filex_test.go
// Title: File Utility Tests
// Description: Tests for source reading and atomic writes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package filex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.monkey")
	if err := os.WriteFile(file, []byte("let a = 1;"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path   string
		exists bool
		isFile bool
	}{
		{file, true, true},
		{dir, true, false},
		{filepath.Join(dir, "missing"), false, false},
	}

	for _, tt := range tests {
		if got := Exists(tt.path); got != tt.exists {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.exists)
		}
		if got := IsFile(tt.path); got != tt.isFile {
			t.Errorf("IsFile(%q) = %v, want %v", tt.path, got, tt.isFile)
		}
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prog.monkey")
	if err := os.WriteFile(file, []byte("let x = 5;"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"file", file, "let x = 5;"},
		{"dash reads stdin", Stdin, "from stdin"},
		{"empty reads stdin", "", "from stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadSource(tt.path, strings.NewReader("from stdin"))
			if err != nil {
				t.Fatalf("ReadSource() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ReadSource() = %q, want %q", got, tt.expected)
			}
		})
	}

	if _, err := ReadSource(filepath.Join(dir, "missing.monkey"), nil); err == nil {
		t.Error("ReadSource() on missing file should fail")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "history.json")

	if err := WriteFileAtomic(path, []byte("[1]"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := WriteFileAtomic(path, []byte("[1,2]"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := ReadString(path)
	if err != nil {
		t.Fatalf("ReadString() error = %v", err)
	}
	if got != "[1,2]" {
		t.Errorf("content = %q, want %q", got, "[1,2]")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the target file", len(entries))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}
