package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectDedupTablesStableAcrossEqualWorkbooks(t *testing.T) {
	build := func() *Workbook {
		wb := NewWorkbook()
		sheet := wb.AddSheet("Sheet1")
		require.NoError(t, sheet.SetCell("A1", TextValue("alpha")))
		require.NoError(t, sheet.SetCell("B1", TextValue("beta")))
		require.NoError(t, sheet.SetCell("A2", TextValue("alpha")))
		require.NoError(t, sheet.SetFormat("A1", &CellFormat{Weight: WeightBold}))
		require.NoError(t, sheet.SetFormat("B1", &CellFormat{Weight: WeightBold}))
		return wb
	}

	d1 := CollectDedupTables(build())
	d2 := CollectDedupTables(build())

	assert.Equal(t, d1.SharedStrings, d2.SharedStrings)
	assert.Equal(t, d1.Formats, d2.Formats)
	assert.Equal(t, d1.NumberFormats, d2.NumberFormats)
}

func TestCollectDedupTablesOnlyIndexesTextCells(t *testing.T) {
	wb := NewWorkbook()
	sheet := wb.AddSheet("Sheet1")
	require.NoError(t, sheet.SetCell("A1", NumberValue(1)))
	require.NoError(t, sheet.SetCell("A2", BoolValue(true)))
	require.NoError(t, sheet.SetCell("A3", TextValue("only this one")))

	d := CollectDedupTables(wb)
	assert.Equal(t, []string{"only this one"}, d.SharedStrings)
}

func TestDedupTablesFormatIDDedupesIdenticalFormats(t *testing.T) {
	d := &DedupTables{formatIDs: map[string]int{}, sharedStringIDs: map[string]int{}, numberFormatIDs: map[string]int{}}
	a := &CellFormat{FontName: "Calibri"}
	b := &CellFormat{FontName: "Calibri"}
	idA := d.formatID(a)
	idB := d.formatID(b)
	assert.Equal(t, idA, idB)
	assert.Len(t, d.Formats, 1)
}

func TestDedupTablesNumberFormatIDStartsAt164(t *testing.T) {
	d := &DedupTables{formatIDs: map[string]int{}, sharedStringIDs: map[string]int{}, numberFormatIDs: map[string]int{}}
	f := &CellFormat{NumberFormat: NumberFormat{CustomCode: "0.0000"}}
	d.formatID(f)
	assert.Equal(t, 164, d.numberFormatIDFor(f))
}
