package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseSkipsHeaderRow(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]interface{}{
		{"CableID", "Spec", "Origin", "Destination"},
		{"C-101", "500mm² 110 XLPE CU FLEX", "ORIGIN: Panel A", "DESTINATION: Panel B"},
		{"C-102", "95mm 3C CU", "MCC-1", "DB-4"},
	})

	records, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "C-101", records[0].ID)
	assert.Equal(t, "Panel A", records[0].Origin)
	assert.Equal(t, "Panel B", records[0].Destination)
	assert.Equal(t, "500mm²", records[0].Size)
	assert.Equal(t, "C-102", records[1].ID)
}

func TestParseWithoutHeader(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]interface{}{
		{"C-201", "95mm 3C CU", "MCC-1", "DB-4"},
	})

	records, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "C-201", records[0].ID)
}

func TestParseDropsMalformedRows(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]interface{}{
		{"C-301", "95mm 3C CU", "MCC-1", "DB-4"},
		{"only-one-field"},
		{"", "25mm XLPE", "A", "B"},
	})

	records, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "C-301", records[0].ID)
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}
