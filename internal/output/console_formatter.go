package output

import (
	"bytes"
	"fmt"

	"github.com/vecalc/vector-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "VECTOR PAIR SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, pr := range results.Pairs {
		fmt.Fprintf(&buf, "%s: %s\n", pr.Name, pr.Expression)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Pairs=%d TotalDot=%s Orthogonal=%d\n",
		len(results.Pairs),
		FormatQuantity(results.TotalDot, results.Precision),
		results.OrthogonalCount,
	)
	return buf.Bytes(), nil
}
