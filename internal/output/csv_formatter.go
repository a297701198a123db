package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/vecalc/vector-calculator/internal/domain"
)

// CSVFormatter implements the summary CSV output (one row per pair).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Pair", "AX", "AY", "BX", "BY", "Dot", "Cross", "NormSquaredA", "NormSquaredB", "Orthogonal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, pr := range results.Pairs {
		row := []string{
			pr.Name,
			pr.A.X.String(),
			pr.A.Y.String(),
			pr.B.X.String(),
			pr.B.Y.String(),
			FormatQuantity(pr.Dot, results.Precision),
			FormatQuantity(pr.Cross, results.Precision),
			FormatQuantity(pr.NormSquaredA, results.Precision),
			FormatQuantity(pr.NormSquaredB, results.Precision),
			strconv.FormatBool(pr.Orthogonal),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
