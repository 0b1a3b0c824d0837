package xlsx

// writeStyles emits xl/styles.xml: numFmts, fonts, fills, borders, and
// cellXfs built from the dedup tables' format list. A parallel font and
// fill entry is emitted for every deduplicated format even when that
// format does not touch fonts or fills, matching the package format's
// index-by-position convention between cellXfs and fonts/fills: a parallel
// font entry is emitted per format, using defaults for unset fields.
func (w *engineWriter) writeStyles() error {
	bb, x := newPartWriter()
	d := w.dedup

	x.OTag("+styleSheet")
	x.Attr("xmlns", "http://schemas.openxmlformats.org/spreadsheetml/2006/main")

	writeNumFmts(x, d)
	writeFonts(x, d)
	writeFills(x, d)
	writeBorders(x)
	writeCellStyleXfs(x)
	writeCellXfs(x, d)

	x.OTag("+cellStyles").Attr("count", 1)
	x.OTag("+cellStyle").Attr("name", "Normal").Attr("xfId", 0).Attr("builtinId", 0)
	x.CTag()
	x.CTag() // cellStyles

	x.OTag("+dxfs").Attr("count", 0)
	x.CTag()

	x.OTag("+tableStyles").Attr("count", 0).Attr("defaultTableStyle", "TableStyleMedium2").Attr("defaultPivotStyle", "PivotStyleLight16")
	x.CTag()

	x.CTag() // styleSheet

	path := "xl/styles.xml"
	w.partContentTypes["/"+path] = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	w.workbookRels.Add(relTypeStyles, "styles.xml")
	return w.out.WriteBlob(path, bb.Bytes())
}

func writeNumFmts(x xmlW, d *DedupTables) {
	x.OTag("+numFmts").Attr("count", len(d.NumberFormats)+1)
	x.OTag("+numFmt").Attr("numFmtId", 0).Attr("formatCode", "General")
	x.CTag()
	for i, code := range d.NumberFormats {
		x.OTag("+numFmt").Attr("numFmtId", 164+i).Attr("formatCode", code)
		x.CTag()
	}
	x.CTag() // numFmts
}

func writeFonts(x xmlW, d *DedupTables) {
	x.OTag("+fonts").Attr("count", len(d.Formats)+1)

	// Font 0: default.
	x.OTag("+font")
	x.OTag("sz").Attr("val", 11).CTag()
	x.OTag("color").Attr("theme", 1).CTag()
	x.OTag("name").Attr("val", "Calibri").CTag()
	x.CTag()

	for _, f := range d.Formats {
		x.OTag("+font")
		if f.Weight == WeightBold {
			x.OTag("b").CTag()
		}
		if f.Style == StyleItalic {
			x.OTag("i").CTag()
		}
		if f.Decoration == DecorationStrikethrough {
			x.OTag("strike").CTag()
		}
		if f.Decoration == DecorationUnderline {
			x.OTag("u").CTag()
		} else if f.Decoration == DecorationDoubleUnderline {
			x.OTag("u").Attr("val", "double").CTag()
		}
		size := f.FontSize
		if size == 0 {
			size = 11
		}
		x.OTag("sz").Attr("val", size).CTag()
		if f.FontColor != "" {
			x.OTag("color").Attr("rgb", "FF"+f.FontColor).CTag()
		} else {
			x.OTag("color").Attr("theme", 1).CTag()
		}
		name := f.FontName
		if name == "" {
			name = "Calibri"
		}
		x.OTag("name").Attr("val", name).CTag()
		x.CTag() // font
	}
	x.CTag() // fonts
}

func writeFills(x xmlW, d *DedupTables) {
	x.OTag("+fills").Attr("count", len(d.Formats)+2)

	x.OTag("+fill")
	x.OTag("patternFill").Attr("patternType", "none").CTag()
	x.CTag()

	x.OTag("+fill")
	x.OTag("patternFill").Attr("patternType", "gray125").CTag()
	x.CTag()

	for _, f := range d.Formats {
		x.OTag("+fill")
		if f.BackgroundColor != "" {
			x.OTag("+patternFill").Attr("patternType", "solid")
			x.OTag("fgColor").Attr("rgb", "FF"+f.BackgroundColor).CTag()
			x.OTag("bgColor").Attr("indexed", 64).CTag()
			x.CTag() // patternFill
		} else {
			x.OTag("patternFill").Attr("patternType", "none").CTag()
		}
		x.CTag() // fill
	}
	x.CTag() // fills
}

// writeBorders emits a single empty border record. Per-cell border sides
// set on a CellFormat are not rendered into styles.xml.
func writeBorders(x xmlW) {
	x.OTag("+borders").Attr("count", 1)
	x.OTag("+border")
	x.OTag("left").CTag()
	x.OTag("right").CTag()
	x.OTag("top").CTag()
	x.OTag("bottom").CTag()
	x.OTag("diagonal").CTag()
	x.CTag()
	x.CTag() // borders
}

func writeCellStyleXfs(x xmlW) {
	x.OTag("+cellStyleXfs").Attr("count", 1)
	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0)
	x.CTag()
	x.CTag()
}

func writeCellXfs(x xmlW, d *DedupTables) {
	x.OTag("+cellXfs").Attr("count", len(d.Formats)+1)

	x.OTag("+xf").Attr("numFmtId", 0).Attr("fontId", 0).Attr("fillId", 0).Attr("borderId", 0).Attr("xfId", 0)
	x.CTag()

	for i, f := range d.Formats {
		x.OTag("+xf")
		numFmtID := d.numberFormatIDFor(f)
		x.Attr("numFmtId", numFmtID)
		x.Attr("fontId", i+1)
		x.Attr("fillId", i+2)
		x.Attr("borderId", 0)
		x.Attr("xfId", 0)
		if f.hasFont() {
			x.Attr("applyFont", 1)
		}
		if f.BackgroundColor != "" {
			x.Attr("applyFill", 1)
		}
		if numFmtID != 0 {
			x.Attr("applyNumberFormat", 1)
		}
		if f.hasAlignment() {
			x.Attr("applyAlignment", 1)
			x.OTag("+alignment")
			if f.HAlign != "" {
				x.Attr("horizontal", string(f.HAlign))
			}
			if f.VAlign != "" {
				x.Attr("vertical", string(f.VAlign))
			}
			if f.WrapText {
				x.Attr("wrapText", 1)
			}
			if f.Rotation != 0 {
				x.Attr("textRotation", f.Rotation)
			}
			x.CTag() // alignment
		}
		x.CTag() // xf
	}
	x.CTag() // cellXfs
}
