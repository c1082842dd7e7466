package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-eda-lab/internal/analysis"
	"ecommerce-eda-lab/internal/data"
)

func TestPrintSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	err := printSummaryTable(&buf, []analysis.Summary{
		{Column: "quantity", Count: 4, Mean: 2.5, Std: 1.29, Min: 1, Q1: 1.5, Median: 2.5, Q3: 3.5, Max: 4},
	})
	require.NoError(t, err)

	out := strings.ToUpper(buf.String())
	assert.Contains(t, out, "COLUMN")
	assert.Contains(t, out, "QUANTITY")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "1.29")
}

func TestExportCSV(t *testing.T) {
	table, err := data.GenerateDataset(data.SeedConfig{Rows: 20, Seed: data.DefaultSeed})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, exportCSV(path, table))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 21)
	assert.True(t, strings.HasPrefix(lines[0], data.ColOrderID+","))
}

func TestExportCSV_BadPath(t *testing.T) {
	err := exportCSV(filepath.Join(t.TempDir(), "missing", "orders.csv"), data.Table{})
	assert.Error(t, err)
}
