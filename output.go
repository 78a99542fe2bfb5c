package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func printSummary(w io.Writer, dirs []string) error {
	check := color.New(color.FgGreen, color.Bold)

	if _, err := check.Fprint(w, "✔"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, " Audio folders are ready:"); err != nil {
		return err
	}

	for _, dir := range dirs {
		if _, err := fmt.Fprintf(w, "  %s\n", dir); err != nil {
			return err
		}
	}

	return nil
}
