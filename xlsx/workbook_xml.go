package xlsx

import "strconv"

// writeWorkbook emits xl/workbook.xml: the <sheets> list with r:id="rId
// {sheetID}" aliasing each sheet's relationship ID to its workbook-assigned
// integer ID, and registers the workbook relationship part entries for
// every sheet.
func (w *engineWriter) writeWorkbook() error {
	bb, x := newPartWriter()

	x.OTag("+workbook")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships")

	x.OTag("+sheets")
	for _, sheet := range w.wb.Sheets {
		rid := "rId" + strconv.Itoa(sheet.ID)
		x.OTag("+sheet")
		x.Attr("name", sheet.Name)
		x.Attr("sheetId", sheet.ID)
		x.Attr("r:id", rid)
		x.CTag()

		w.workbookRels.AddWithID(rid, relTypeWorksheet, "worksheets/sheet"+strconv.Itoa(sheet.ID)+".xml")
	}
	x.CTag() // sheets

	x.OTag("+calcPr").Attr("fullCalcOnLoad", 1).CTag()

	x.CTag() // workbook

	path := "xl/workbook.xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	w.globalRels.Add(relTypeOfficeDocument, "xl/workbook.xml")
	return w.out.WriteBlob(path, bb.Bytes())
}
