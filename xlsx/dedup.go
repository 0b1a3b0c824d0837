package xlsx

// DedupTables holds the three workbook-wide deduplicated tables built by a
// single pass over every used cell across every sheet: shared strings,
// cell formats (styles), and custom/preset number-format codes. IDs are
// assigned in first-sight order during collection and the tables are
// immutable afterward, so two collections over an equal workbook always
// produce identical tables (the determinism property required of the
// write pipeline).
type DedupTables struct {
	SharedStrings   []string
	sharedStringIDs map[string]int // 0-based

	Formats   []*CellFormat
	formatIDs map[string]int // 1-based; 0 is the reserved default format

	NumberFormats   []string
	numberFormatIDs map[string]int // starts at 164
}

// sharedStringID returns the 0-based shared-string ID for s, assigning a
// new one on first sight.
func (d *DedupTables) sharedStringID(s string) int {
	if id, ok := d.sharedStringIDs[s]; ok {
		return id
	}
	id := len(d.SharedStrings)
	d.SharedStrings = append(d.SharedStrings, s)
	d.sharedStringIDs[s] = id
	return id
}

// formatID returns the style ID for f (1-based; 0 means "no format"),
// assigning a new one on first sight of its dedup key.
func (d *DedupTables) formatID(f *CellFormat) int {
	if f == nil || f.IsZero() {
		return 0
	}
	key := f.dedupKey()
	if id, ok := d.formatIDs[key]; ok {
		return id
	}
	id := len(d.Formats) + 1
	d.Formats = append(d.Formats, f)
	d.formatIDs[key] = id
	if f.NumberFormat.isSet() {
		d.numberFormatID(f.NumberFormat.Code())
	}
	return id
}

// numberFormatID returns the numFmtId for a format-code string, assigning
// the next ID starting at 164 (the spreadsheet convention reserving IDs
// below 164 for built-ins) on first sight.
func (d *DedupTables) numberFormatID(code string) int {
	if code == "" || code == "General" {
		return 0
	}
	if id, ok := d.numberFormatIDs[code]; ok {
		return id
	}
	id := 164 + len(d.NumberFormats)
	d.NumberFormats = append(d.NumberFormats, code)
	d.numberFormatIDs[code] = id
	return id
}

// numberFormatIDFor returns the already-assigned numFmtId for a format, or
// 0 (General) if it has no number format set. It never assigns a new ID;
// by the time it is called every format has already passed through
// formatID, which assigns number-format IDs as a side effect.
func (d *DedupTables) numberFormatIDFor(f *CellFormat) int {
	if f == nil || !f.NumberFormat.isSet() {
		return 0
	}
	return d.numberFormatIDs[f.NumberFormat.Code()]
}

// CollectDedupTables walks every sheet of wb in sheet order and every used
// cell within each sheet in row-major address order, populating a fresh
// DedupTables. Tie-breaking for equal inputs is guaranteed by this fixed
// traversal order: two collections over an equal workbook always assign
// identical IDs.
func CollectDedupTables(wb *Workbook) *DedupTables {
	d := &DedupTables{
		sharedStringIDs: map[string]int{},
		formatIDs:       map[string]int{},
		numberFormatIDs: map[string]int{},
	}
	for _, sheet := range wb.Sheets {
		for _, addr := range sheet.usedAddresses() {
			if v, ok := sheet.values[addr]; ok && v.Kind == KindText {
				d.sharedStringID(textRendition(v))
			}
			if f, ok := sheet.formats[addr]; ok {
				d.formatID(f)
			}
		}
	}
	return d
}
