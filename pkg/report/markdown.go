// Package report renders workflow summaries for display.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/greboid/wfl/pkg/workflow"
)

const title = "GitHub Actions Workflows"

// Markdown writes summaries as a markdown table followed by the total count.
// Summaries are written in the order given.
func Markdown(w io.Writer, summaries []workflow.Summary) error {
	buf := bufio.NewWriter(w)

	_, _ = fmt.Fprintf(buf, "# %s\n\n", title)
	_, _ = fmt.Fprintln(buf, "| Workflow | Triggers | Jobs |")
	_, _ = fmt.Fprintln(buf, "|----------|----------|------|")

	for _, s := range summaries {
		_, _ = fmt.Fprintf(buf, "| **%s** | %s | %s |\n",
			s.Name,
			strings.Join(s.Triggers, ", "),
			strings.Join(s.Jobs, ", "))
	}

	_, _ = fmt.Fprintf(buf, "\n**Total workflows:** %d\n", len(summaries))

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
