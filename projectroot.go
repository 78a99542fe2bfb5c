package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// findProjectRoot returns the directory that contains the running executable.
func findProjectRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	return projectRootOf(exe)
}

func projectRootOf(exePath string) (string, error) {
	abs, err := filepath.Abs(exePath)
	if err != nil {
		return "", fmt.Errorf("failed to make %q absolute: %w", exePath, err)
	}

	// Follow the whole symlink chain so the root is where the binary really lives.
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", abs, err)
	}

	return filepath.Dir(resolved), nil
}
