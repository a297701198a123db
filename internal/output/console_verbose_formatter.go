package output

import (
	"bytes"
	"fmt"

	"github.com/vecalc/vector-calculator/internal/domain"
)

// ConsoleVerboseFormatter adds per-pair derived quantities to the console summary.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "VECTOR PAIR REPORT")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Generated: %s\n", results.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&buf)
	for _, pr := range results.Pairs {
		fmt.Fprintf(&buf, "%s: %s\n", pr.Name, pr.Expression)
		fmt.Fprintf(&buf, "  cross=%s |a|²=%s |b|²=%s orthogonal=%t\n",
			FormatQuantity(pr.Cross, results.Precision),
			FormatQuantity(pr.NormSquaredA, results.Precision),
			FormatQuantity(pr.NormSquaredB, results.Precision),
			pr.Orthogonal,
		)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Pairs=%d TotalDot=%s Orthogonal=%d\n",
		len(results.Pairs),
		FormatQuantity(results.TotalDot, results.Precision),
		results.OrthogonalCount,
	)
	return buf.Bytes(), nil
}
