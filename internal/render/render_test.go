package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"ecommerce-eda-lab/internal/analysis"
	"ecommerce-eda-lab/internal/data"
)

func smallOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Path:   filepath.Join(t.TempDir(), "eda.png"),
		Width:  12 * vg.Inch,
		Height: 12 * vg.Inch,
		DPI:    40,
	}
}

func TestPanels_FillGrid(t *testing.T) {
	list := panels()
	require.Len(t, list, gridRows*gridCols)

	seen := make(map[string]bool)
	for _, p := range list {
		assert.NotEmpty(t, p.Title)
		assert.False(t, seen[p.Title], "duplicate title %q", p.Title)
		seen[p.Title] = true
	}
	assert.Equal(t, "Product Price Distribution", list[0].Title)
	assert.Equal(t, "Discount Effect on Purchase Quantity", list[len(list)-1].Title)
}

func TestPanels_BuildFromDataset(t *testing.T) {
	table, err := data.GenerateDataset(data.SeedConfig{Rows: data.DefaultRows, Seed: data.DefaultSeed})
	require.NoError(t, err)
	df := table.DataFrame()

	for _, p := range panels() {
		t.Run(p.Title, func(t *testing.T) {
			plt, err := p.Build(df)
			require.NoError(t, err)
			require.NotNil(t, plt)
		})
	}
}

func TestRender_WritesPNG(t *testing.T) {
	table, err := data.GenerateDataset(data.SeedConfig{Rows: data.DefaultRows, Seed: data.DefaultSeed})
	require.NoError(t, err)

	opts := smallOptions(t)
	require.NoError(t, New(opts, nil).Render(table))

	content, err := os.ReadFile(opts.Path)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), content[:8])
}

func TestRender_EmptyTableWritesNothing(t *testing.T) {
	opts := smallOptions(t)
	err := New(opts, nil).Render(data.Table{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRows))

	_, statErr := os.Stat(opts.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRender_MissingLevelWritesNothing(t *testing.T) {
	// three rows cannot cover every declared category level
	table, err := data.GenerateDataset(data.SeedConfig{Rows: 3, Seed: data.DefaultSeed})
	require.NoError(t, err)

	opts := smallOptions(t)
	err = New(opts, nil).Render(table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, analysis.ErrEmptyGroup))

	_, statErr := os.Stat(opts.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRender_InvalidCanvas(t *testing.T) {
	table, err := data.GenerateDataset(data.SeedConfig{Rows: 50, Seed: 1})
	require.NoError(t, err)

	opts := smallOptions(t)
	opts.DPI = 0
	require.Error(t, New(opts, nil).Render(table))
}

func TestNewPieChart(t *testing.T) {
	_, err := newPieChart(nil, husl(3))
	assert.True(t, errors.Is(err, analysis.ErrEmptyGroup))

	_, err = newPieChart([]analysis.Group{{Key: "a", Value: 0}}, husl(1))
	assert.True(t, errors.Is(err, analysis.ErrEmptyGroup))

	_, err = newPieChart([]analysis.Group{{Key: "a", Value: -1}, {Key: "b", Value: 2}}, husl(2))
	assert.Error(t, err)

	pc, err := newPieChart([]analysis.Group{{Key: "a", Value: 1}, {Key: "b", Value: 3}}, husl(2))
	require.NoError(t, err)
	assert.Equal(t, 4.0, pc.total)
}

func TestHues(t *testing.T) {
	assert.Len(t, husl(5), 5)
	assert.Len(t, pastel(3), 3)
	assert.Equal(t, steelBlue, husl(1)[0])
	assert.NotEqual(t, husl(4)[0], husl(4)[3])
}
