package xlsx

import "sort"

// Workbook is the in-memory spreadsheet model: an ordered list of sheets
// plus a flat, workbook-level list of registered images. It is mutated
// freely up until it is handed to Write. Write changes it in one way only:
// it sets the column width and row height of every cell with an anchored
// image to the ideal size for that image.
type Workbook struct {
	Sheets []*Sheet

	sheetNames  map[string]*Sheet
	nextSheetID int

	images   []*ExcelImage
	imageIDs map[string]*ExcelImage
}

// NewWorkbook creates an empty workbook. Sheet IDs are assigned starting at
// 1 and are never reused, even if a sheet is later removed (this package
// has no sheet-removal operation, so in practice IDs are simply
// sequential).
func NewWorkbook() *Workbook {
	return &Workbook{
		sheetNames: map[string]*Sheet{},
		imageIDs:   map[string]*ExcelImage{},
	}
}

// AddSheet creates and appends a new, empty sheet named name. The engine
// does not enforce sheet name uniqueness — that is an external contract —
// so callers that need that guarantee should check before calling.
func (wb *Workbook) AddSheet(name string) *Sheet {
	wb.nextSheetID++
	s := &Sheet{
		ID:         wb.nextSheetID,
		Name:       name,
		workbook:   wb,
		values:     map[string]CellValue{},
		formats:    map[string]*CellFormat{},
		images:     map[string]string{},
		colWidths:  map[int]float64{},
		rowHeights: map[int]float64{},
	}
	wb.Sheets = append(wb.Sheets, s)
	wb.sheetNames[name] = s
	return s
}

// Sheet looks up a previously added sheet by name, or returns nil.
func (wb *Workbook) Sheet(name string) *Sheet {
	return wb.sheetNames[name]
}

// AddImage registers img with the workbook's flat image list. It is an
// error to register two images with the same ID.
func (wb *Workbook) AddImage(img *ExcelImage) error {
	if img == nil {
		return newErr(ErrXMLGeneration, "nil image")
	}
	if _, exists := wb.imageIDs[img.ID]; exists {
		return newErr(ErrXMLGeneration, "duplicate image id "+img.ID)
	}
	wb.images = append(wb.images, img)
	wb.imageIDs[img.ID] = img
	return nil
}

// Image looks up a registered image by ID, or returns nil.
func (wb *Workbook) Image(id string) *ExcelImage {
	return wb.imageIDs[id]
}

// Images returns the workbook's flat, registration-ordered image list.
func (wb *Workbook) Images() []*ExcelImage {
	return wb.images
}

// Sheet owns one worksheet's cell values, formats, anchored images, column
// widths, row heights, and merged ranges. Per-cell state is keyed by
// normalized address; column widths and row heights by 1-based index.
// Two Sheets are never structurally equal to each other; equality is
// reference identity, matching the model's lifecycle (a sheet is mutated
// in place, never compared by value).
type Sheet struct {
	ID   int
	Name string

	MergeCells []CellRange

	workbook *Workbook

	values     map[string]CellValue   // normalized address -> value
	formats    map[string]*CellFormat // normalized address -> format
	images     map[string]string      // normalized address -> image ID
	colWidths  map[int]float64        // 1-based column -> width, pixels
	rowHeights map[int]float64        // 1-based row -> height, pixels

	nextAppendRow int // 1-based, used only by AppendRow
}

// SetCell stores v at addr, overwriting any prior value at that address.
// The prior format (if any) is left untouched; use SetFormat to change it.
func (s *Sheet) SetCell(addr string, v CellValue) error {
	norm, err := NormalizeAddress(addr)
	if err != nil {
		return err
	}
	s.values[norm] = v
	return nil
}

// SetCellAt is SetCell addressed by (row, column) instead of a string.
func (s *Sheet) SetCellAt(row, col int, v CellValue) error {
	if row < 1 || col < 1 {
		return newErr(ErrInvalidCoordinate, "row and column must be >= 1")
	}
	s.values[FormatAddress(row, col)] = v
	return nil
}

// Cell returns the value stored at addr and whether one was set.
func (s *Sheet) Cell(addr string) (CellValue, bool) {
	norm, err := NormalizeAddress(addr)
	if err != nil {
		return CellValue{}, false
	}
	v, ok := s.values[norm]
	return v, ok
}

// SetFormat stores f as the format at addr, overwriting any prior format.
// Setting the value and the format at an address happen atomically with
// respect to each other only in the sense that neither call touches the
// other map: SetCell never clears a format and SetFormat never clears a
// value.
func (s *Sheet) SetFormat(addr string, f *CellFormat) error {
	norm, err := NormalizeAddress(addr)
	if err != nil {
		return err
	}
	if f == nil || f.IsZero() {
		delete(s.formats, norm)
		return nil
	}
	s.formats[norm] = f
	return nil
}

// Format returns the format stored at addr, or nil if none is set.
func (s *Sheet) Format(addr string) *CellFormat {
	norm, err := NormalizeAddress(addr)
	if err != nil {
		return nil
	}
	return s.formats[norm]
}

// SetColumnWidth sets a custom width, in pixels, for the given 1-based
// column. A width <= 0 removes the custom width.
func (s *Sheet) SetColumnWidth(col int, widthPx float64) {
	if col < 1 {
		return
	}
	if widthPx <= 0 {
		delete(s.colWidths, col)
		return
	}
	s.colWidths[col] = widthPx
}

// SetRowHeight sets a custom height, in pixels, for the given 1-based row.
// A height <= 0 removes the custom height.
func (s *Sheet) SetRowHeight(row int, heightPx float64) {
	if row < 1 {
		return
	}
	if heightPx <= 0 {
		delete(s.rowHeights, row)
		return
	}
	s.rowHeights[row] = heightPx
}

// AnchorImage anchors the workbook image identified by imageID to addr.
// The image must already be registered with the sheet's workbook.
func (s *Sheet) AnchorImage(addr, imageID string) error {
	norm, err := NormalizeAddress(addr)
	if err != nil {
		return err
	}
	if s.workbook.Image(imageID) == nil {
		return newErr(ErrXMLGeneration, "image "+imageID+" is not registered with this workbook")
	}
	s.images[norm] = imageID
	return nil
}

// anchoredImages returns the sheet's address->imageID anchors.
func (s *Sheet) anchoredImages() map[string]string {
	return s.images
}

// Merge records addr1:addr2 as a merged range. Ranges are not validated
// against each other for overlap; callers that need that guarantee should
// check the MergeCells field before calling.
func (s *Sheet) Merge(addr1, addr2 string) error {
	start, err := ParseAddress(addr1)
	if err != nil {
		return err
	}
	end, err := ParseAddress(addr2)
	if err != nil {
		return err
	}
	r := normalizedRange(CellRange{Start: start, End: end})
	s.MergeCells = append(s.MergeCells, r)
	return nil
}

// Clear empties all per-cell state (values, formats, anchored images),
// column widths, row heights, and merged ranges in one operation.
func (s *Sheet) Clear() {
	s.values = map[string]CellValue{}
	s.formats = map[string]*CellFormat{}
	s.images = map[string]string{}
	s.colWidths = map[int]float64{}
	s.rowHeights = map[int]float64{}
	s.MergeCells = nil
}

// usedAddresses returns every normalized address the sheet has a value,
// format, or anchored image at, sorted in row-major order. This is the set
// the worksheet emitter walks to build <sheetData> and compute <dimension>.
func (s *Sheet) usedAddresses() []string {
	seen := map[string]CellCoordinate{}
	for addr := range s.values {
		if c, err := ParseAddress(addr); err == nil {
			seen[addr] = c
		}
	}
	for addr := range s.formats {
		if c, err := ParseAddress(addr); err == nil {
			seen[addr] = c
		}
	}
	for addr := range s.images {
		if c, err := ParseAddress(addr); err == nil {
			seen[addr] = c
		}
	}
	addrs := make([]string, 0, len(seen))
	for addr := range seen {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		a, b := seen[addrs[i]], seen[addrs[j]]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Column < b.Column
	})
	return addrs
}

// usedBounds returns the bounding CellRange over every used address,
// defaulting to A1:A1 when the sheet has no cells.
func (s *Sheet) usedBounds() CellRange {
	addrs := s.usedAddresses()
	if len(addrs) == 0 {
		return CellRange{Start: CellCoordinate{1, 1}, End: CellCoordinate{1, 1}}
	}
	minRow, minCol := 1<<31-1, 1<<31-1
	maxRow, maxCol := 0, 0
	for _, addr := range addrs {
		c, _ := ParseAddress(addr)
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Column < minCol {
			minCol = c.Column
		}
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Column > maxCol {
			maxCol = c.Column
		}
	}
	return CellRange{Start: CellCoordinate{minRow, minCol}, End: CellCoordinate{maxRow, maxCol}}
}
