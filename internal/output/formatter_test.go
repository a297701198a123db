package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecalc/vector-calculator/internal/domain"
	"github.com/vecalc/vector-calculator/pkg/vec2"
)

func sampleBatch() *domain.BatchResult {
	return &domain.BatchResult{
		GeneratedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Pairs: []domain.PairResult{
			{
				Name:         "textbook",
				A:            vec2.NewFromInt(1, 2),
				B:            vec2.NewFromInt(3, 4),
				Expression:   "(1,2)·(3,4) = 11",
				Dot:          decimal.NewFromInt(11),
				Cross:        decimal.NewFromInt(-2),
				NormSquaredA: decimal.NewFromInt(5),
				NormSquaredB: decimal.NewFromInt(25),
			},
			{
				Name:         "axes",
				A:            vec2.NewFromInt(1, 0),
				B:            vec2.NewFromInt(0, 1),
				Expression:   "(1,0)·(0,1) = 0",
				Dot:          decimal.Zero,
				Cross:        decimal.NewFromInt(1),
				NormSquaredA: decimal.NewFromInt(1),
				NormSquaredB: decimal.NewFromInt(1),
				Orthogonal:   true,
			},
		},
		TotalDot:        decimal.NewFromInt(11),
		OrthogonalCount: 1,
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "console-verbose", "json", "csv"} {
		assert.NotNil(t, GetFormatterByName(name), "formatter %q", name)
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestGetFormatterByAlias(t *testing.T) {
	f := GetFormatterByName("verbose")
	require.NotNil(t, f)
	assert.Equal(t, "console-verbose", f.Name())

	f = GetFormatterByName("JSON-Pretty")
	require.NotNil(t, f)
	assert.Equal(t, "json", f.Name())
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName("  Pretty "))
	assert.Equal(t, "csv", NormalizeFormatName("csv-summary"))
	assert.Equal(t, "unknown", NormalizeFormatName("unknown"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "console-verbose", "csv", "json"}, names)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleBatch())
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "(1,2)·(3,4) = 11")
	assert.Contains(t, out, "textbook:")
	assert.Contains(t, out, "Pairs=2 TotalDot=11 Orthogonal=1")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	data, err := ConsoleVerboseFormatter{}.Format(sampleBatch())
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Generated: 2026-08-26 12:00:00")
	assert.Contains(t, out, "cross=-2")
	assert.Contains(t, out, "orthogonal=true")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleBatch())
	require.NoError(t, err)

	var decoded struct {
		Pairs []struct {
			Name       string `json:"name"`
			Expression string `json:"expression"`
			Dot        string `json:"dot"`
			Orthogonal bool   `json:"orthogonal"`
		} `json:"pairs"`
		TotalDot string `json:"total_dot"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Pairs, 2)
	assert.Equal(t, "textbook", decoded.Pairs[0].Name)
	assert.Equal(t, "(1,2)·(3,4) = 11", decoded.Pairs[0].Expression)
	assert.Equal(t, "11", decoded.Pairs[0].Dot)
	assert.True(t, decoded.Pairs[1].Orthogonal)
	assert.Equal(t, "11", decoded.TotalDot)
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleBatch())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Pair", "AX", "AY", "BX", "BY", "Dot", "Cross", "NormSquaredA", "NormSquaredB", "Orthogonal"}, records[0])
	assert.Equal(t, []string{"textbook", "1", "2", "3", "4", "11", "-2", "5", "25", "false"}, records[1])
	assert.Equal(t, "true", records[2][9])
}

func TestFormatQuantity(t *testing.T) {
	d := decimal.RequireFromString("2.5")
	assert.Equal(t, "2.5", FormatQuantity(d, 0))
	assert.Equal(t, "2.50", FormatQuantity(d, 2))
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	err := GenerateReport(sampleBatch(), "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "console")
}
