package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecalc/vector-calculator/internal/calculation"
	"github.com/vecalc/vector-calculator/internal/config"
	"github.com/vecalc/vector-calculator/internal/output"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	results, err := engine.RunBatch(cfg)
	require.NoError(t, err)

	require.Len(t, results.Pairs, 3)
	assert.Equal(t, "(1,2)·(3,4) = 11", results.Pairs[0].Expression)
	assert.True(t, results.Pairs[1].Orthogonal)
	assert.Equal(t, 1, results.OrthogonalCount)

	// 11 + 0 + (-13)
	assert.True(t, results.TotalDot.Equal(decimal.NewFromInt(-2)))
}

func TestAllFormattersProduceOutput(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine()
	results, err := engine.RunBatch(cfg)
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		f := output.GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q", name)
		data, err := f.Format(results)
		require.NoError(t, err, "formatter %q", name)
		assert.NotEmpty(t, data, "formatter %q", name)
	}
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	path := t.TempDir() + "/example.yaml"
	require.NoError(t, output.SaveConfiguration(cfg, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Pairs, len(cfg.Pairs))
	for i := range cfg.Pairs {
		assert.Equal(t, cfg.Pairs[i].Name, loaded.Pairs[i].Name)
		assert.True(t, cfg.Pairs[i].A.Equal(loaded.Pairs[i].A))
		assert.True(t, cfg.Pairs[i].B.Equal(loaded.Pairs[i].B))
	}

	engine := calculation.NewEngine()
	results, err := engine.RunBatch(loaded)
	require.NoError(t, err)
	assert.Equal(t, len(cfg.Pairs), len(results.Pairs))
}
