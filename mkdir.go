package main

import (
	"os"
	"path/filepath"
)

// createDirectories creates the audio directories under root if they don't exist.
// It stops at the first failure and returns the paths in creation order.
func createDirectories(root string) ([]string, error) {
	dirs := make([]string, 0, len(audioDirNames))

	for _, name := range audioDirNames {
		path := filepath.Join(root, name)

		if err := os.MkdirAll(path, dirPerms); err != nil {
			return nil, newDirError(path, err)
		}

		dirs = append(dirs, path)
	}

	return dirs, nil
}
