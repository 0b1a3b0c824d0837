package xlsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	return fakePNG(w, h)
}

func TestWriteEmitsExpectedPartTree(t *testing.T) {
	wb := NewWorkbook()
	sheet := wb.AddSheet("Sheet1")
	require.NoError(t, sheet.SetCell("A1", TextValue("hello")))
	require.NoError(t, sheet.SetCell("B1", NumberValue(3.5)))
	require.NoError(t, sheet.SetFormat("A1", &CellFormat{Weight: WeightBold}))

	img, err := NewExcelImage("img1", mustPNG(t, 96, 96), ImagePNG)
	require.NoError(t, err)
	require.NoError(t, wb.AddImage(img))
	require.NoError(t, sheet.AnchorImage("D5", "img1"))

	dir := t.TempDir()
	require.NoError(t, Write(wb, NewDirStorage(dir)))

	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"xl/workbook.xml",
		"xl/styles.xml",
		"xl/sharedStrings.xml",
		"xl/theme/theme1.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
		"xl/worksheets/_rels/sheet1.xml.rels",
		"xl/drawings/drawing1.xml",
		"xl/drawings/_rels/drawing1.xml.rels",
		"xl/media/img1.png",
	} {
		_, err := os.Stat(filepath.Join(dir, part))
		assert.NoError(t, err, "expected part %s to exist", part)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	build := func() *Workbook {
		wb := NewWorkbook()
		sheet := wb.AddSheet("Sheet1")
		require.NoError(t, sheet.SetCell("A1", TextValue("alpha")))
		require.NoError(t, sheet.SetCell("B1", TextValue("beta")))
		require.NoError(t, sheet.SetFormat("A1", &CellFormat{Weight: WeightBold}))
		return wb
	}

	dir1, dir2 := t.TempDir(), t.TempDir()
	require.NoError(t, Write(build(), NewDirStorage(dir1)))
	require.NoError(t, Write(build(), NewDirStorage(dir2)))

	for _, part := range []string{"xl/workbook.xml", "xl/styles.xml", "xl/sharedStrings.xml", "xl/worksheets/sheet1.xml"} {
		b1, err := os.ReadFile(filepath.Join(dir1, part))
		require.NoError(t, err)
		b2, err := os.ReadFile(filepath.Join(dir2, part))
		require.NoError(t, err)
		assert.Equal(t, string(b1), string(b2), "part %s differs between two writes of an equal workbook", part)
	}
}

func TestDrawingAnchorsImageAtExpectedCell(t *testing.T) {
	wb := NewWorkbook()
	sheet := wb.AddSheet("Sheet1")
	img, err := NewExcelImage("img1", mustPNG(t, 64, 64), ImagePNG)
	require.NoError(t, err)
	require.NoError(t, wb.AddImage(img))
	require.NoError(t, sheet.AnchorImage("D5", "img1"))

	dir := t.TempDir()
	require.NoError(t, Write(wb, NewDirStorage(dir)))

	data, err := os.ReadFile(filepath.Join(dir, "xl/drawings/drawing1.xml"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "<xdr:col>3</xdr:col>")
	assert.Contains(t, content, "<xdr:row>4</xdr:row>")

	sheetData, err := os.ReadFile(filepath.Join(dir, "xl/worksheets/sheet1.xml"))
	require.NoError(t, err)
	sheetContent := string(sheetData)
	assert.Contains(t, sheetContent, `r="5"`, "row 5 must be emitted even though D5 carries no cell value or format")
	assert.Contains(t, sheetContent, `customHeight="1"`, "the anchor's computed ideal row height must reach the worksheet XML")
	assert.Contains(t, sheetContent, `r="D5"`, "the anchor cell itself must still appear in <sheetData>")
	assert.Contains(t, sheetContent, `ref="D5:D5"`, "dimension bounds must expand to cover an image-only anchor")
}

func TestWriteEmitsRowForHeightOnlyRow(t *testing.T) {
	wb := NewWorkbook()
	sheet := wb.AddSheet("Sheet1")
	require.NoError(t, sheet.SetCell("A1", TextValue("hello")))
	sheet.SetRowHeight(9, 40)

	dir := t.TempDir()
	require.NoError(t, Write(wb, NewDirStorage(dir)))

	data, err := os.ReadFile(filepath.Join(dir, "xl/worksheets/sheet1.xml"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `r="9"`, "a row with only a custom height must still be emitted")
	assert.Contains(t, content, `customHeight="1"`)
}

func TestWriteFileProducesArchiveAtDestination(t *testing.T) {
	wb := NewWorkbook()
	sheet := wb.AddSheet("Sheet1")
	require.NoError(t, sheet.SetCell("A1", TextValue("hello")))

	dest := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteFile(wb, dest, nil))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
