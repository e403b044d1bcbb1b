package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/refilllocal/directory/pkg/spreadsheet"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("Header_Normalized_And_Rows_Keyed", func(t *testing.T) {
		r := buildWorkbook(t, [][]interface{}{
			{" Name ", "FULL_ADDRESS", "latitude"},
			{"Refillery", "1 Main St", 41.5},
			{"Eco Shop", "2 Oak Ave"},
		})
		sheet, err := spreadsheet.Read(r)
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "full_address", "latitude"}, sheet.Header)
		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, "Refillery", sheet.Rows[0]["name"])
		assert.Equal(t, "41.5", sheet.Rows[0]["latitude"])
		// short row reads missing trailing cells as empty
		assert.Equal(t, "", sheet.Rows[1]["latitude"])
	})

	t.Run("Header_Only_Yields_Zero_Rows", func(t *testing.T) {
		r := buildWorkbook(t, [][]interface{}{{"name", "place_id"}})
		sheet, err := spreadsheet.Read(r)
		require.NoError(t, err)
		assert.Empty(t, sheet.Rows)
	})

	t.Run("Garbage_Input_Fails", func(t *testing.T) {
		_, err := spreadsheet.Read(bytes.NewReader([]byte("not a workbook")))
		require.Error(t, err)
	})
}
