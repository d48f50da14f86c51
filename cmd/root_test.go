package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeScheduleCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeScheduleXLSX(t *testing.T, name string, rows [][]interface{}) string {
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

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRunGenerateMissingFile(t *testing.T) {
	t.Parallel()

	err := runGenerate(filepath.Join(t.TempDir(), "no-such-schedule.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestScheduleCSV(t *testing.T) {
	t.Parallel()

	path := writeScheduleCSV(t,
		"CableID,Spec,Origin,Destination\n"+
			"C-101,500mm² 110 XLPE CU FLEX,ORIGIN: Panel A,DESTINATION: Panel B\n"+
			"C-102,95mm 3C CU,MCC-1,DB-4\n")

	records, encoding := ingestSchedule(path)
	require.Len(t, records, 2)
	assert.Equal(t, "utf-8", encoding)
	assert.Equal(t, "C-101", records[0].ID)
	assert.Equal(t, "Panel A", records[0].Origin)
}

func TestIngestScheduleXLSX(t *testing.T) {
	t.Parallel()

	path := writeScheduleXLSX(t, "schedule.xlsx", [][]interface{}{
		{"CableID", "Spec", "Origin", "Destination"},
		{"C-201", "95mm 3C CU", "MCC-1", "DB-4"},
	})

	records, encoding := ingestSchedule(path)
	require.Len(t, records, 1)
	assert.Empty(t, encoding)
	assert.Equal(t, "C-201", records[0].ID)
	assert.Equal(t, "MCC-1", records[0].Origin)
}

func TestIngestScheduleXLSXCaseInsensitiveExtension(t *testing.T) {
	t.Parallel()

	path := writeScheduleXLSX(t, "schedule.XLSX", [][]interface{}{
		{"C-301", "25mm XLPE", "A", "B"},
	})

	records, _ := ingestSchedule(path)
	require.Len(t, records, 1)
	assert.Equal(t, "C-301", records[0].ID)
}

func TestIngestScheduleUnreadableFile(t *testing.T) {
	t.Parallel()

	records, encoding := ingestSchedule(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Nil(t, records)
	assert.Empty(t, encoding)
}
