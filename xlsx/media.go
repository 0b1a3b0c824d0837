package xlsx

// mediaFileName returns the xl/media/ filename for img. Naming is fixed by
// the package's external interface: one entry per image in the workbook's
// image list, named after its ID rather than its content, so the archive
// layout stays predictable to a caller that already knows its image IDs.
func (w *engineWriter) mediaFileName(img *ExcelImage) string {
	return img.ID + "." + img.extension()
}

// writeMedia writes every registered image's payload into xl/media/ and
// registers the "image" default content type for every extension in use.
func (w *engineWriter) writeMedia() error {
	for _, img := range w.wb.Images() {
		name := w.mediaFileName(img)

		ext := img.extension()
		w.defaultContentTypes[ext] = imageContentType(ext)

		if err := w.out.WriteBlob("xl/media/"+name, img.Data); err != nil {
			return wrapErr(ErrFileWrite, "writing media "+name, err)
		}
	}
	return nil
}

func imageContentType(ext string) string {
	switch ext {
	case "gif":
		return "image/gif"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}
