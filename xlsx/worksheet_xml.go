package xlsx

import (
	"strconv"
)

// applyImageAnchorSizing grows every column/row a sheet has an anchored
// image on to the ideal size for that image's display dimensions, as a
// side effect of anchoring: the engine sets the corresponding column width
// and row height on the sheet to the ideal sizes so that the cell renders
// large enough. It must run before worksheet XML is emitted, since
// <cols>/<row ht=...> reflect the sheet's column-width/row-height maps at
// emission time.
func (w *engineWriter) applyImageAnchorSizing() {
	for _, sheet := range w.wb.Sheets {
		for addr, imageID := range sheet.anchoredImages() {
			img := w.wb.Image(imageID)
			if img == nil {
				continue
			}
			coord, err := ParseAddress(addr)
			if err != nil {
				continue
			}
			dw, dh := img.displaySize()
			geo := ComputeImageAnchorGeometry(dw, dh)
			sheet.SetColumnWidth(coord.Column, ColumnWidthToPixels(geo.IdealColumnWidth))
			sheet.SetRowHeight(coord.Row, RowHeightToPixels(geo.IdealRowHeight))
		}
	}
}

// writeWorksheet emits one xl/worksheets/sheet{N}.xml part.
func (w *engineWriter) writeWorksheet(sheet *Sheet) error {
	bb, x := newPartWriter()
	d := w.dedup

	x.OTag("+worksheet")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	bounds := sheet.usedBounds()
	x.OTag("+dimension").Attr("ref", FormatRange(bounds)).CTag()

	x.OTag("+sheetViews")
	x.OTag("+sheetView").Attr("tabSelected", 1).Attr("workbookViewId", 0).CTag()
	x.CTag() // sheetViews

	x.OTag("+sheetFormatPr").Attr("defaultRowHeight", 15).CTag()

	cols := sortedIntKeys(sheet.colWidths)
	if len(cols) > 0 {
		x.OTag("+cols")
		for _, col := range cols {
			width := PixelsToColumnWidth(sheet.colWidths[col])
			x.OTag("+col").Attr("min", col).Attr("max", col).Attr("width", width).Attr("customWidth", 1)
			x.CTag()
		}
		x.CTag() // cols
	}

	writeSheetData(x, sheet, d)

	if len(sheet.MergeCells) > 0 {
		x.OTag("+mergeCells").Attr("count", len(sheet.MergeCells))
		for _, mc := range sheet.MergeCells {
			x.OTag("+mergeCell").Attr("ref", FormatRange(mc)).CTag()
		}
		x.CTag()
	}

	x.OTag("+pageMargins")
	x.Attr("left", 0.7).Attr("right", 0.7).Attr("top", 0.75).Attr("bottom", 0.75).Attr("header", 0.3).Attr("footer", 0.3)
	x.CTag()

	hasImages := len(sheet.anchoredImages()) > 0
	if hasImages {
		x.OTag("+drawing").Attr("r:id", "rId1").CTag()
	}

	x.CTag() // worksheet

	path := "xl/worksheets/sheet" + strconv.Itoa(sheet.ID) + ".xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"

	rels := &RelationshipPart{}
	if hasImages {
		rels.Add(relTypeDrawing, "../drawings/drawing"+strconv.Itoa(sheet.ID)+".xml")
	}
	w.worksheetRels[sheet.ID] = rels

	return w.out.WriteBlob(path, bb.Bytes())
}

func writeSheetData(x xmlW, sheet *Sheet, d *DedupTables) {
	x.OTag("+sheetData")

	byRow := map[int][]CellCoordinate{}
	for _, addr := range sheet.usedAddresses() {
		c, _ := ParseAddress(addr)
		byRow[c.Row] = append(byRow[c.Row], c)
	}
	for row := range sheet.rowHeights {
		if _, ok := byRow[row]; !ok {
			byRow[row] = nil
		}
	}
	rows := sortedIntKeys(byRow)

	for _, row := range rows {
		cells := byRow[row]

		x.OTag("+row")
		x.Attr("r", row)
		if len(cells) > 0 {
			minCol, maxCol := cells[0].Column, cells[0].Column
			for _, c := range cells {
				if c.Column < minCol {
					minCol = c.Column
				}
				if c.Column > maxCol {
					maxCol = c.Column
				}
			}
			x.Attr("spans", strconv.Itoa(minCol)+":"+strconv.Itoa(maxCol))
		}
		if h, ok := sheet.rowHeights[row]; ok {
			x.Attr("ht", PixelsToRowHeight(h))
			x.Attr("customHeight", 1)
		}

		for _, c := range cells {
			writeCell(x, sheet, d, c)
		}

		x.CTag() // row
	}

	x.CTag() // sheetData
}

func writeCell(x xmlW, sheet *Sheet, d *DedupTables, c CellCoordinate) {
	addr := FormatAddress(c.Row, c.Column)
	v, hasValue := sheet.values[addr]
	format := sheet.formats[addr]

	x.OTag("+c")
	x.Attr("r", addr)
	if sid := d.formatID(format); sid != 0 {
		x.Attr("s", sid)
	}

	if !hasValue {
		v = EmptyValue
	}

	switch v.Kind {
	case KindText:
		x.Attr("t", "s")
		x.OTag("v").Write(d.sharedStringID(v.Text)).CTag()
	case KindNumber:
		x.Attr("t", "n")
		x.OTag("v").Write(strconv.FormatFloat(v.Number, 'g', -1, 64)).CTag()
	case KindInteger:
		x.Attr("t", "n")
		x.OTag("v").Write(strconv.FormatInt(v.Integer, 10)).CTag()
	case KindBool:
		x.Attr("t", "b")
		boolVal := "0"
		if v.Bool {
			boolVal = "1"
		}
		x.OTag("v").Write(boolVal).CTag()
	case KindDate:
		x.Attr("t", "n")
		x.OTag("v").Write(strconv.FormatFloat(DateToSerial(v.Date), 'f', -1, 64)).CTag()
	case KindFormula:
		x.Attr("t", "str")
		x.OTag("f").Write(v.Formula).CTag()
	case KindEmpty:
		// self-closing, no payload
	}

	x.CTag() // c
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortInts(keys)
	return keys
}
