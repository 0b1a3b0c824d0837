package xlsx

// RowBuilder is a sequential-append convenience layer over the
// address-keyed cell model: callers that want to build a sheet
// top-to-bottom, left-to-right without tracking coordinates by hand can use
// it instead of SetCellAt. It is additive — SetCell/SetCellAt remain the
// model of record and AppendRow is implemented entirely in terms of them.
type RowBuilder struct {
	sheet        *Sheet
	rowNumber    int
	nextColumn   int
}

// AppendRow starts a new row one past the highest row number this Sheet has
// been asked to append to so far (starting at 1), and returns a builder for
// adding cells to it left-to-right.
func (s *Sheet) AppendRow() *RowBuilder {
	s.nextAppendRow++
	return &RowBuilder{sheet: s, rowNumber: s.nextAppendRow, nextColumn: 1}
}

// AppendCell sets v at the column after this builder's previous cell
// (column 1 for the first call) and returns the address it was written to.
// A value already stored at that address is overwritten.
func (rb *RowBuilder) AppendCell(v CellValue) string {
	addr := FormatAddress(rb.rowNumber, rb.nextColumn)
	_ = rb.sheet.SetCellAt(rb.rowNumber, rb.nextColumn, v)
	rb.nextColumn++
	return addr
}

// AppendCellWithFormat is AppendCell followed by SetFormat at the same
// address.
func (rb *RowBuilder) AppendCellWithFormat(v CellValue, f *CellFormat) string {
	addr := rb.AppendCell(v)
	_ = rb.sheet.SetFormat(addr, f)
	return addr
}

// Row returns the 1-based row number this builder is appending to.
func (rb *RowBuilder) Row() int { return rb.rowNumber }
