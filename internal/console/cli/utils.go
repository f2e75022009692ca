package cli

import (
	"fmt"
	"io"
	"strings"
)

// tabRow writes one tab-separated row for a tabwriter.
func tabRow(w io.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(w, strings.Join(parts, "\t"))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
