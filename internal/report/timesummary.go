package report

import (
	"fmt"
	"io"
	"time"

	"github.com/vk/buildgrid/internal/target"
)

// WriteTimeSummary tabulates each executed target's duration, padded
// to the longest name, followed by the total and a final
// "Status: Ok"/"Status: Failure" line.
func WriteTimeSummary(w io.Writer, executions []target.Execution, hasErrors bool) {
	longest := len("Total")
	for _, e := range executions {
		if len(e.Name) > longest {
			longest = len(e.Name)
		}
	}

	var total time.Duration
	for _, e := range executions {
		fmt.Fprintf(w, "%-*s  %s\n", longest, e.Name, e.Duration)
		total += e.Duration
	}
	fmt.Fprintf(w, "%-*s  %s\n", longest, "Total", total)

	if hasErrors {
		fmt.Fprintln(w, "Status: Failure")
	} else {
		fmt.Fprintln(w, "Status: Ok")
	}
}
