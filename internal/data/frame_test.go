package data

import (
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDataFrame(t *testing.T) {
	table, err := GenerateDataset(SeedConfig{Rows: 50, Seed: DefaultSeed})
	require.NoError(t, err)

	df := table.DataFrame()
	require.NoError(t, df.Err)

	rows, cols := df.Dims()
	assert.Equal(t, 50, rows)
	assert.Equal(t, 16, cols)

	assert.Equal(t, series.Float, df.Col(ColTotalAmount).Type())
	assert.Equal(t, series.Int, df.Col(ColQuantity).Type())
	assert.Equal(t, series.String, df.Col(ColProductCategory).Type())
	assert.Equal(t, series.Bool, df.Col(ColIsWeekend).Type())

	assert.InDelta(t, table.GrandTotal(), df.Col(ColTotalAmount).Sum(), 1e-6)
	assert.Equal(t, "2024-01-01", df.Col(ColOrderDate).Records()[0])
	assert.Equal(t, table[49].ProductCategory, df.Col(ColProductCategory).Records()[49])
}
