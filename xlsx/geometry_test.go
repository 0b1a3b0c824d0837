package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelConversionsRoundTrip(t *testing.T) {
	assert.InDelta(t, 100.0, ColumnWidthToPixels(PixelsToColumnWidth(100)), 1e-9)
	assert.InDelta(t, 100.0, RowHeightToPixels(PixelsToRowHeight(100)), 1e-9)
}

func TestPixelsToEMU(t *testing.T) {
	assert.Equal(t, int64(9525), PixelsToEMU(1))
	assert.Equal(t, int64(95250), PixelsToEMU(10))
}

func TestComputeImageAnchorGeometryCentersSquareImage(t *testing.T) {
	geo := ComputeImageAnchorGeometry(96, 96)
	assert.Equal(t, PixelsToEMU(96), geo.ExtentCX)
	assert.Equal(t, PixelsToEMU(96), geo.ExtentCY)
	// a cell sized exactly to its image should need no centering offset.
	assert.InDelta(t, 0, float64(geo.OffsetX), float64(EMUPerPixel))
	assert.InDelta(t, 0, float64(geo.OffsetY), float64(EMUPerPixel))
}

func TestCenteringOffsetNeverNegative(t *testing.T) {
	assert.Equal(t, int64(0), centeringOffsetEMU(10, 50))
}
