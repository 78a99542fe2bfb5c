package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildTargetNames(t *testing.T) {
	tests := []struct {
		target     BuildTarget
		wantSystem string
		wantArch   string
	}{
		{BuildTarget{"darwin", "arm64"}, "macos", "arm64"},
		{BuildTarget{"darwin", "amd64"}, "macos", "x86_64"},
		{BuildTarget{"linux", "arm64"}, "linux", "aarch64"},
		{BuildTarget{"linux", "amd64"}, "linux", "x86_64"},
		{BuildTarget{"windows", "amd64"}, "windows", "amd64"},
		{BuildTarget{"windows", "386"}, "windows", "x86"},
	}

	for _, tt := range tests {
		t.Run(tt.target.os+"/"+tt.target.arch, func(t *testing.T) {
			system, arch := tt.target.names()

			if system != tt.wantSystem || arch != tt.wantArch {
				t.Errorf("names() = %s, %s, want %s, %s", system, arch, tt.wantSystem, tt.wantArch)
			}
		})
	}
}

func TestAppendChecksum(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a", "b"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := appendChecksum(path); err != nil {
			t.Fatalf("appendChecksum(%q) error = %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, checksumFilename))
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 checksum lines, got %d", len(lines))
	}

	// SHA-512 of "a".
	wantA := "1f40fc92da241694750979ee6cf582f2d5d7d28e18335de05abc54d0560e0f5302860c652bf08d560252aa5e74210546f369fbbbce8c12cfc7957b2652fe9a75"
	if lines[0] != wantA+"  a" {
		t.Errorf("Unexpected first line %q", lines[0])
	}

	if !strings.HasSuffix(lines[1], "  b") {
		t.Errorf("Unexpected second line %q", lines[1])
	}
}
