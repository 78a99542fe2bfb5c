package main

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	checksumFilename = "SHA512SUMS.txt"
	projectName      = "setup-audio-dirs"
	distDir          = "dist"
)

type BuildTarget struct {
	os   string
	arch string
}

// Display names used in release filenames.
func (t BuildTarget) names() (system, arch string) {
	system, arch = t.os, t.arch

	switch system {
	case "darwin":
		system = "macos"
	}

	switch {
	case arch == "386":
		arch = "x86"
	case arch == "amd64" && system != "windows":
		arch = "x86_64"
	case arch == "arm64" && system == "linux":
		arch = "aarch64"
	}

	return system, arch
}

func main() {
	version := os.Getenv("VERSION")
	if version == "" {
		fmt.Fprintln(os.Stderr, "'VERSION' environment variable must be set")
		os.Exit(1)
	}

	releaseDir := filepath.Join(distDir, version)
	if err := os.MkdirAll(releaseDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create release directory: %v\n", err)
		os.Exit(1)
	}

	targets := []BuildTarget{
		{"darwin", "amd64"},
		{"darwin", "arm64"},
		{"freebsd", "amd64"},
		{"linux", "amd64"},
		{"linux", "arm64"},
		{"openbsd", "amd64"},
		{"windows", "386"},
		{"windows", "amd64"},
	}

	for _, target := range targets {
		if err := build(releaseDir, target, version); err != nil {
			fmt.Fprintf(os.Stderr, "Build failed for %s/%s: %v\n", target.os, target.arch, err)
			os.Exit(1)
		}
	}
}

func build(dir string, target BuildTarget, version string) error {
	fmt.Printf("Building for %s/%s\n", target.os, target.arch)

	ext := ""
	if target.os == "windows" {
		ext = ".exe"
	}

	system, arch := target.names()
	filename := fmt.Sprintf("%s-v%s-%s-%s%s", projectName, version, system, arch, ext)
	outputPath := filepath.Join(dir, filename)

	cmd := exec.Command("go", "build", "-trimpath", "-ldflags", "-s -w", "-o", outputPath, ".")
	cmd.Env = append(os.Environ(),
		"GOOS="+target.os,
		"GOARCH="+target.arch,
		"CGO_ENABLED=0",
	)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("build command failed: %w\nOutput:\n%s", err, output)
	}

	return appendChecksum(outputPath)
}

func appendChecksum(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %q for checksumming: %w", filePath, err)
	}
	defer f.Close()

	h := sha512.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("failed to hash %q: %w", filePath, err)
	}

	line := fmt.Sprintf("%s  %s\n", hex.EncodeToString(h.Sum(nil)), filepath.Base(filePath))

	sums, err := os.OpenFile(
		filepath.Join(filepath.Dir(filePath), checksumFilename),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return fmt.Errorf("failed to open checksum file: %w", err)
	}
	defer sums.Close()

	if _, err := sums.WriteString(line); err != nil {
		return fmt.Errorf("failed to write checksum: %w", err)
	}

	return nil
}
