package main

import "io"

func run(config Config, stdout io.Writer) error {
	dirs, err := createDirectories(config.ProjectRoot)
	if err != nil {
		return err
	}

	return printSummary(stdout, dirs)
}
