package xlsx

// ExcelImage is a raster image registered with a workbook. It is not scoped
// to any sheet; a sheet anchors to it by ID (see Sheet.AnchorImage).
type ExcelImage struct {
	ID     string
	Data   []byte
	Format ImageFormat

	// OriginalWidth/OriginalHeight are the image's native pixel size, read
	// from its header.
	OriginalWidth  int
	OriginalHeight int

	// DisplayWidth/DisplayHeight, if non-zero, override OriginalWidth/
	// OriginalHeight for all positioning math.
	DisplayWidth  int
	DisplayHeight int
}

// displaySize returns the size this image should be positioned at: the
// display size if set, otherwise the original size.
func (img *ExcelImage) displaySize() (int, int) {
	w, h := img.OriginalWidth, img.OriginalHeight
	if img.DisplayWidth > 0 {
		w = img.DisplayWidth
	}
	if img.DisplayHeight > 0 {
		h = img.DisplayHeight
	}
	return w, h
}

// extension returns the media file extension xlsxgen stores this image's
// payload under ("gif", "png", "jpg"), without a leading dot.
func (img *ExcelImage) extension() string {
	return img.Format.extension()
}

// NewExcelImage validates that data's magic bytes agree with format and
// builds an ExcelImage with its original pixel dimensions read from the
// header. This is the only ingestion path: format/payload agreement is an
// invariant of the data model, not just a convenience check.
func NewExcelImage(id string, data []byte, format ImageFormat) (*ExcelImage, error) {
	detected, width, height, err := ReadImageHeader(data)
	if err != nil {
		return nil, wrapErr(ErrXMLGeneration, "reading image header for "+id, err)
	}
	if detected != format {
		return nil, newErr(ErrXMLGeneration, "image "+id+": declared format "+string(format)+" does not match payload magic bytes ("+string(detected)+")")
	}
	return &ExcelImage{
		ID:             id,
		Data:           data,
		Format:         format,
		OriginalWidth:  width,
		OriginalHeight: height,
	}, nil
}
