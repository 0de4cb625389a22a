package table

import (
	"bufio"
	"fmt"
	"hotel/shared/constant"
	"io"
	"strings"
)

// Render writes the header, one tab separated line per row and the row count.
// Null cells print as the empty string.
func Render(w io.Writer, t Table) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintln(buf, strings.Join(t.Columns, constant.Tab))

	line := make([]string, 0, len(t.Columns))
	for _, row := range t.Rows {
		line = line[:0]
		for _, cell := range row {
			line = append(line, cell.String)
		}

		fmt.Fprintln(buf, strings.Join(line, constant.Tab))
	}

	fmt.Fprintf(buf, "Total row(s): %d\n", len(t.Rows))

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
