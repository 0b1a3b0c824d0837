package xlsx

// writeSharedStrings emits xl/sharedStrings.xml: one <si><t> per entry in
// the dedup table, in assigned-ID order.
func (w *engineWriter) writeSharedStrings() error {
	bb, x := newPartWriter()
	d := w.dedup

	x.OTag("+sst")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")
	x.Attr("count", len(d.SharedStrings))
	x.Attr("uniqueCount", len(d.SharedStrings))

	for _, s := range d.SharedStrings {
		x.OTag("+si")
		x.OTag("t").Write(s).CTag()
		x.CTag()
	}

	x.CTag()

	path := "xl/sharedStrings.xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	w.workbookRels.Add(relTypeSharedStrings, "sharedStrings.xml")
	return w.out.WriteBlob(path, bb.Bytes())
}
