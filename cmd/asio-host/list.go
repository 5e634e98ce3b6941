package main

import (
	"fmt"
	"io"
)

func runList(a *app, w io.Writer) error {
	descs, diff, err := a.scan()
	if err != nil {
		return err
	}

	if len(descs) == 0 {
		fmt.Fprintln(w, "No ASIO drivers installed.")
	}
	for _, d := range descs {
		fmt.Fprintf(w, "%-32s %s\n", d.Name, d.ID)
		fmt.Fprintf(w, "  %s\n", d.Path)
	}

	for _, d := range diff.Added {
		fmt.Fprintf(w, "+ new driver: %s\n", d.Name)
	}
	for _, d := range diff.Removed {
		fmt.Fprintf(w, "- removed driver: %s\n", d.Name)
	}
	return nil
}
