package report

import (
	"fmt"
	"io"
)

// WriteRunningOrder prints the order the executor is about to run.
// When parallel is false, order is expected to hold exactly one group
// (the flattened serial sequence) and prints as a plain list. When
// parallel is true, each group in order prints under its own
// "Group - k" heading (1-based).
func WriteRunningOrder(w io.Writer, order [][]string, parallel bool) {
	if !parallel {
		for _, group := range order {
			for _, name := range group {
				fmt.Fprintln(w, name)
			}
		}
		return
	}
	for i, group := range order {
		fmt.Fprintf(w, "Group - %d\n", i+1)
		for _, name := range group {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}
