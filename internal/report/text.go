// Package report renders the dependency graph, running order, and run
// results for human (and DOT-tool) consumption. Every reporter reads
// registry state; none of them mutate it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/buildgrid/internal/target"
)

func arrow(kind target.EdgeKind) string {
	if kind == target.Hard {
		return "<=="
	}
	return "<=?"
}

// WriteShortGraph prints the shortened dependency graph rooted at
// root: one indented "<arrow> <name>" line per first-visit, repeat
// visits omitted.
func WriteShortGraph(w io.Writer, reg *target.Registry, root string) error {
	return writeGraph(w, reg, root, false)
}

// WriteVerboseGraph prints the same walk but also prints repeat
// visits (targets reached more than once from root).
func WriteVerboseGraph(w io.Writer, reg *target.Registry, root string) error {
	return writeGraph(w, reg, root, true)
}

func writeGraph(w io.Writer, reg *target.Registry, root string, verbose bool) error {
	rootTarget, err := reg.GetTarget(root)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rootTarget.Name)

	_, _, err = reg.VisitDependencies(root, func(_ string, _ bool, name string, kind target.EdgeKind, depth int, alreadyVisited bool) {
		if alreadyVisited && !verbose {
			return
		}
		indent := strings.Repeat("  ", depth-1)
		fmt.Fprintf(w, "%s%s %s\n", indent, arrow(kind), name)
	})
	return err
}
