package xlsx

// engineWriter carries the mutable state threaded through one package write:
// the workbook being serialized, its dedup tables, every part's assigned
// content type, and every relationship part under construction. It is
// created fresh for each write and discarded afterward; nothing about it
// survives across calls to Write.
type engineWriter struct {
	out Storage
	wb  *Workbook

	dedup *DedupTables

	defaultContentTypes map[string]string // extension -> content type
	partContentTypes    map[string]string // "/part/path" -> content type

	globalRels   *RelationshipPart // _rels/.rels
	workbookRels *RelationshipPart // xl/_rels/workbook.xml.rels
	worksheetRels map[int]*RelationshipPart // sheet ID -> xl/worksheets/_rels/sheet{ID}.xml.rels
	drawingRels   map[int]*RelationshipPart // sheet ID -> xl/drawings/_rels/drawing{ID}.xml.rels
}

func newEngineWriter(wb *Workbook, out Storage) *engineWriter {
	return &engineWriter{
		out:   out,
		wb:    wb,
		dedup: CollectDedupTables(wb),

		defaultContentTypes: map[string]string{
			"rels": "application/vnd.openxmlformats-package.relationships+xml",
			"xml":  "application/xml",
		},
		partContentTypes: map[string]string{},

		globalRels:    &RelationshipPart{},
		workbookRels:  &RelationshipPart{},
		worksheetRels: map[int]*RelationshipPart{},
		drawingRels:   map[int]*RelationshipPart{},
	}
}

// Write serializes wb into out as a complete SpreadsheetML package: media
// first (so content types are known), then every sheet's worksheet and
// drawing part, then the workbook-wide parts (workbook, styles, shared
// strings, theme), then docProps, then content types, then every
// relationship part last (their targets must all already be registered).
//
// This phase order is fixed so two writes of an equal workbook always
// touch Storage in the same sequence, which is what makes the resulting
// archive byte-for-byte reproducible.
func Write(wb *Workbook, out Storage) error {
	w := newEngineWriter(wb, out)

	w.applyImageAnchorSizing()

	if err := w.writeMedia(); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		if err := w.writeWorksheet(sheet); err != nil {
			return err
		}
		if err := w.writeDrawing(sheet); err != nil {
			return err
		}
	}

	if err := w.writeWorkbook(); err != nil {
		return err
	}
	if err := w.writeStyles(); err != nil {
		return err
	}
	if err := w.writeSharedStrings(); err != nil {
		return err
	}
	if err := w.writeTheme(); err != nil {
		return err
	}

	if err := w.writeCoreProperties(); err != nil {
		return err
	}
	if err := w.writeExtendedProperties(); err != nil {
		return err
	}

	if err := w.writeContentTypes(); err != nil {
		return err
	}

	return w.writeRelationshipParts()
}

// writeRelationshipParts emits the root package relationships, the
// workbook's relationships, and every sheet's worksheet/drawing
// relationships that turned out non-empty.
func (w *engineWriter) writeRelationshipParts() error {
	if err := writeRelationshipPart(w.out, "_rels/.rels", w.globalRels); err != nil {
		return err
	}
	if err := writeRelationshipPart(w.out, "xl/_rels/workbook.xml.rels", w.workbookRels); err != nil {
		return err
	}
	for _, sheet := range w.wb.Sheets {
		if rels, ok := w.worksheetRels[sheet.ID]; ok && !rels.IsEmpty() {
			path := "xl/worksheets/_rels/sheet" + formatIntCompact(sheet.ID) + ".xml.rels"
			if err := writeRelationshipPart(w.out, path, rels); err != nil {
				return err
			}
		}
		if rels, ok := w.drawingRels[sheet.ID]; ok && !rels.IsEmpty() {
			path := "xl/drawings/_rels/drawing" + formatIntCompact(sheet.ID) + ".xml.rels"
			if err := writeRelationshipPart(w.out, path, rels); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRelationshipPart(out Storage, path string, part *RelationshipPart) error {
	if part.IsEmpty() {
		return nil
	}
	bb, x := newPartWriter()

	x.OTag("+Relationships")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")
	for _, rel := range part.Entries() {
		x.OTag("+Relationship").Attr("Id", rel.ID).Attr("Type", rel.Type).Attr("Target", rel.Target)
		x.CTag()
	}
	x.CTag()

	return out.WriteBlob(path, bb.Bytes())
}
