package renderer

import (
	"fmt"
	"io"
	"strings"

	"kpifolio"
)

// ViolationsMarkdown renders the integrity diagnostic stream.
// An empty list renders as an all-clear line.
func ViolationsMarkdown(vs []kpifolio.Violation) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Integrity Check\n\n")
	if len(vs) == 0 {
		fmt.Fprintln(&b, "No violation found.")
		return b.String()
	}
	fmt.Fprintf(&b, "%d violation(s) found.\n\n", len(vs))

	tbl := newTable(&b, "Kind", "Entity", "Id", "Detail")
	for _, v := range vs {
		tbl.row(v.Kind.String(), string(v.Entity), v.Key, v.Detail)
	}
	return b.String()
}

// FindingsMarkdown renders the quality diagnostic stream. Clean checks
// are summarized in one line; only dirty checks get a section.
func FindingsMarkdown(fs []kpifolio.Finding) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Quality Scan\n\n")

	var clean []string
	for _, f := range fs {
		ConditionalBlock(&b, func(w io.Writer) bool {
			if f.Clean() {
				clean = append(clean, f.Check)
				return false
			}
			fmt.Fprintf(w, "## %s (%d)\n\n", f.Check, len(f.Rows))
			tbl := newTable(w, "Entity", "Id", "Detail")
			for _, row := range f.Rows {
				tbl.row(string(row.Entity), row.Key, row.Detail)
			}
			fmt.Fprintln(w, "")
			return true
		})
	}

	if len(clean) == len(fs) {
		fmt.Fprintln(&b, "All checks passed.")
	} else if len(clean) > 0 {
		fmt.Fprintf(&b, "Clean: %s.\n", strings.Join(clean, ", "))
	}
	return b.String()
}
