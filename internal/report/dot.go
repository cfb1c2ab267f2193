package report

import (
	"fmt"
	"io"

	"github.com/vk/buildgrid/internal/target"
)

// WriteDOT emits the full registered-target graph as Graphviz DOT,
// exactly the shape spec §4.6/§6 require: the digraph header, one node
// directive per registered target, then one edge directive per
// dependency (soft edges tagged style=dotted), then the closing brace.
func WriteDOT(w io.Writer, reg *target.Registry) error {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintln(w, "  node [shape=box];")

	names := reg.ListTargetNames()
	for _, name := range names {
		fmt.Fprintf(w, "  %q;\n", name)
	}
	for _, name := range names {
		t, err := reg.GetTarget(name)
		if err != nil {
			return err
		}
		for _, dep := range t.HardDependencies {
			fmt.Fprintf(w, "  %q -> %q;\n", t.Name, dep)
		}
		for _, dep := range t.SoftDependencies {
			fmt.Fprintf(w, "  %q -> %q [style=dotted];\n", t.Name, dep)
		}
	}
	fmt.Fprintln(w, "}")
	return nil
}
