package report

import (
	"fmt"
	"io"

	"github.com/vk/buildgrid/internal/target"
)

// WriteErrorSummary enumerates the accumulated error records with
// 1-based indices.
func WriteErrorSummary(w io.Writer, errs []target.ErrorRecord) {
	for i, e := range errs {
		fmt.Fprintf(w, "%d) %s: %s\n", i+1, e.Target, e.Message)
	}
}
