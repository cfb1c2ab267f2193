package report

import (
	"fmt"
	"io"

	"github.com/vk/buildgrid/internal/target"
)

// WriteTargetList prints every registered target name, one per line,
// with its description (if any) alongside it — the --listTargets/-lt
// reporter.
func WriteTargetList(w io.Writer, reg *target.Registry) {
	for _, name := range reg.ListTargetNames() {
		t, err := reg.GetTarget(name)
		if err != nil {
			continue
		}
		if t.Description != "" {
			fmt.Fprintf(w, "%s - %s\n", t.Name, t.Description)
		} else {
			fmt.Fprintln(w, t.Name)
		}
	}
}
