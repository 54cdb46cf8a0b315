// Package renderer turns the reports and views of kpifolio into
// markdown, the exchange format between the engine and a terminal or a
// BI hand-off document.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// table prints a markdown pipe table: one left-aligned label column
// followed by right-aligned value columns.
type table struct {
	w io.Writer
}

func newTable(w io.Writer, headers ...string) *table {
	fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprint(w, "|:---|")
	for range headers[1:] {
		fmt.Fprint(w, "---:|")
	}
	fmt.Fprintln(w, "")
	return &table{w: w}
}

func (t *table) row(cells ...string) {
	fmt.Fprintf(t.w, "| %s |\n", strings.Join(cells, " | "))
}
