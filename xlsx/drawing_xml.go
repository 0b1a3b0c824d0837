package xlsx

import "strconv"

// rowBleedOffsetEMU is a small EMU nudge applied to the anchor's row-offset
// "to" coordinate to avoid a one-pixel bleed past the target cell's bottom
// edge in some consumers.
const rowBleedOffsetEMU = 3175

// writeDrawing emits xl/drawings/drawing{N}.xml for a sheet that has at
// least one anchored image, plus the drawing's own relationship part
// linking each anchor to its media entry.
func (w *engineWriter) writeDrawing(sheet *Sheet) error {
	anchors := sheet.anchoredImages()
	if len(anchors) == 0 {
		return nil
	}

	addrs := make([]string, 0, len(anchors))
	for addr := range anchors {
		addrs = append(addrs, addr)
	}
	sortAddressesRowMajor(addrs)

	bb, x := newPartWriter()
	drawingRels := &RelationshipPart{}

	x.OTag("+xdr:wsDr")
	x.Attr("xmlns:xdr", "http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing")
	x.Attr("xmlns:a", "http://schemas.openxmlformats.org/drawingml/2006/main")

	for i, addr := range addrs {
		imageID := anchors[addr]
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

		mediaName := w.mediaFileName(img)
		rid := drawingRels.Add(relTypeImage, "../media/"+mediaName)

		// from is the anchor cell's own 0-based coordinate; to is the next
		// cell over (e.g. D5 -> from col=3,row=4 to col=4,row=5).
		fromCol, fromRow := coord.Column-1, coord.Row-1
		toCol, toRow := coord.Column, coord.Row

		x.OTag("+xdr:twoCellAnchor").Attr("editAs", "oneCell")

		x.OTag("+xdr:from")
		x.OTag("xdr:col").Write(fromCol).CTag()
		x.OTag("xdr:colOff").Write(0).CTag()
		x.OTag("xdr:row").Write(fromRow).CTag()
		x.OTag("xdr:rowOff").Write(0).CTag()
		x.CTag() // from

		x.OTag("+xdr:to")
		x.OTag("xdr:col").Write(toCol).CTag()
		x.OTag("xdr:colOff").Write(0).CTag()
		x.OTag("xdr:row").Write(toRow).CTag()
		x.OTag("xdr:rowOff").Write(rowBleedOffsetEMU).CTag()
		x.CTag() // to

		x.OTag("+xdr:pic")

		x.OTag("+xdr:nvPicPr")
		x.OTag("+xdr:cNvPr").Attr("id", i+2).Attr("name", "Picture "+strconv.Itoa(i+1)).CTag()
		x.OTag("+xdr:cNvPicPr")
		x.OTag("a:picLocks").Attr("noChangeAspect", 1).CTag()
		x.CTag() // cNvPicPr
		x.CTag() // nvPicPr

		x.OTag("+xdr:blipFill")
		x.OTag("a:blip").Attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships").Attr("r:embed", rid).CTag()
		x.OTag("+a:stretch")
		x.OTag("a:fillRect").CTag()
		x.CTag()
		x.CTag() // blipFill

		x.OTag("+xdr:spPr")
		x.OTag("+a:xfrm")
		x.OTag("a:off").Attr("x", geo.OffsetX).Attr("y", geo.OffsetY).CTag()
		x.OTag("a:ext").Attr("cx", geo.ExtentCX).Attr("cy", geo.ExtentCY).CTag()
		x.CTag() // xfrm
		x.OTag("+a:prstGeom").Attr("prst", "rect")
		x.OTag("a:avLst").CTag()
		x.CTag() // prstGeom
		x.CTag() // spPr

		x.CTag() // pic

		x.OTag("+xdr:clientData").CTag()

		x.CTag() // twoCellAnchor
	}

	x.CTag() // wsDr

	path := "xl/drawings/drawing" + strconv.Itoa(sheet.ID) + ".xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.drawing+xml"
	w.drawingRels[sheet.ID] = drawingRels

	return w.out.WriteBlob(path, bb.Bytes())
}

func sortAddressesRowMajor(addrs []string) {
	coords := make(map[string]CellCoordinate, len(addrs))
	for _, a := range addrs {
		c, _ := ParseAddress(a)
		coords[a] = c
	}
	sortStringsBy(addrs, func(a, b string) bool {
		ca, cb := coords[a], coords[b]
		if ca.Row != cb.Row {
			return ca.Row < cb.Row
		}
		return ca.Column < cb.Column
	})
}
