package xlsx

// Geometry constants for the dual pixel/EMU coordinate system an anchored
// image lives in: spreadsheet column-width/row-height units on one side,
// 914,400-EMU-per-inch drawing coordinates on the other.
const (
	// EMUPerPixel is the drawingML coordinate unit per pixel at 96 DPI.
	EMUPerPixel = 9525
	// columnWidthUnitDivisor converts pixels to the spreadsheet column-width
	// unit (roughly "characters of the default font").
	columnWidthUnitDivisor = 8.0
	// rowHeightUnitDivisor converts pixels to the spreadsheet row-height
	// unit (points).
	rowHeightUnitDivisor = 1.33
)

// PixelsToColumnWidth converts a pixel width to the spreadsheet
// column-width unit.
func PixelsToColumnWidth(px float64) float64 { return px / columnWidthUnitDivisor }

// ColumnWidthToPixels is the inverse of PixelsToColumnWidth.
func ColumnWidthToPixels(width float64) float64 { return width * columnWidthUnitDivisor }

// PixelsToRowHeight converts a pixel height to the spreadsheet row-height
// unit (points).
func PixelsToRowHeight(px float64) float64 { return px / rowHeightUnitDivisor }

// RowHeightToPixels is the inverse of PixelsToRowHeight.
func RowHeightToPixels(height float64) float64 { return height * rowHeightUnitDivisor }

// PixelsToEMU converts a pixel length to EMU (English Metric Units).
func PixelsToEMU(px float64) int64 { return int64(px * EMUPerPixel) }

// ImageAnchorGeometry is the full set of derived measurements needed to
// anchor an image of (width, height) pixels to a single cell: the ideal
// cell dimensions to grow the cell to, the cell pixel size recovered from
// those ideal dimensions (which may differ slightly from the image due to
// unit rounding), the drawing extent in EMU, and the centering offset in
// EMU per axis.
type ImageAnchorGeometry struct {
	IdealColumnWidth float64 // spreadsheet column-width units
	IdealRowHeight   float64 // spreadsheet row-height units (points)
	CellPixelWidth   float64 // cell pixel size recovered from IdealColumnWidth
	CellPixelHeight  float64 // cell pixel size recovered from IdealRowHeight
	ExtentCX         int64   // drawing extent, EMU
	ExtentCY         int64   // drawing extent, EMU
	OffsetX          int64   // centering offset, EMU
	OffsetY          int64   // centering offset, EMU
}

// ComputeImageAnchorGeometry derives the column/row sizing and EMU placement
// math for anchoring a (widthPx, heightPx) image to a single cell, per the
// package format's dual-coordinate positioning rules.
func ComputeImageAnchorGeometry(widthPx, heightPx int) ImageAnchorGeometry {
	w, h := float64(widthPx), float64(heightPx)

	g := ImageAnchorGeometry{
		IdealColumnWidth: PixelsToColumnWidth(w),
		IdealRowHeight:   PixelsToRowHeight(h),
		ExtentCX:         PixelsToEMU(w),
		ExtentCY:         PixelsToEMU(h),
	}
	g.CellPixelWidth = ColumnWidthToPixels(g.IdealColumnWidth)
	g.CellPixelHeight = RowHeightToPixels(g.IdealRowHeight)

	g.OffsetX = centeringOffsetEMU(g.CellPixelWidth, w)
	g.OffsetY = centeringOffsetEMU(g.CellPixelHeight, h)
	return g
}

func centeringOffsetEMU(cellPx, imgPx float64) int64 {
	d := (cellPx - imgPx) / 2
	if d < 0 {
		d = 0
	}
	return int64(d * EMUPerPixel)
}
