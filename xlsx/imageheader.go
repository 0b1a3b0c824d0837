package xlsx

import (
	"encoding/binary"
)

// ImageFormat is the embedded-image payload tag. The engine never decodes
// pixels, only magic bytes and header-region dimension fields.
type ImageFormat string

const (
	ImageGIF  ImageFormat = "gif"
	ImagePNG  ImageFormat = "png"
	ImageJPEG ImageFormat = "jpeg"
)

func (f ImageFormat) extension() string {
	switch f {
	case ImageGIF:
		return "gif"
	case ImagePNG:
		return "png"
	case ImageJPEG:
		return "jpg"
	}
	return ""
}

var (
	gifMagic = []byte{0x47, 0x49, 0x46} // "GIF"
	pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}
	jpgMagic = []byte{0xFF, 0xD8}
)

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if b[i] != p {
			return false
		}
	}
	return true
}

// DetectImageFormat inspects the leading bytes of data and reports which of
// GIF, PNG, or JPEG it matches. It never invokes a decoder.
func DetectImageFormat(data []byte) (ImageFormat, error) {
	switch {
	case hasPrefix(data, gifMagic):
		return ImageGIF, nil
	case hasPrefix(data, pngMagic):
		return ImagePNG, nil
	case hasPrefix(data, jpgMagic):
		return ImageJPEG, nil
	}
	return "", newErr(ErrXMLGeneration, "unrecognized image format")
}

// ReadImageHeader detects the format of data and extracts its pixel
// dimensions by inspecting fixed header offsets (GIF, PNG) or scanning
// JPEG markers for a start-of-frame segment. It rejects truncated buffers
// rather than reading past the end of data.
func ReadImageHeader(data []byte) (format ImageFormat, width, height int, err error) {
	format, err = DetectImageFormat(data)
	if err != nil {
		return "", 0, 0, err
	}
	switch format {
	case ImageGIF:
		width, height, err = readGIFHeader(data)
	case ImagePNG:
		width, height, err = readPNGHeader(data)
	case ImageJPEG:
		width, height, err = readJPEGHeader(data)
	}
	if err != nil {
		return "", 0, 0, err
	}
	return format, width, height, nil
}

func readGIFHeader(data []byte) (int, int, error) {
	if len(data) < 10 {
		return 0, 0, newErr(ErrXMLGeneration, "truncated GIF header")
	}
	w := int(binary.LittleEndian.Uint16(data[6:8]))
	h := int(binary.LittleEndian.Uint16(data[8:10]))
	return w, h, nil
}

func readPNGHeader(data []byte) (int, int, error) {
	if len(data) < 24 {
		return 0, 0, newErr(ErrXMLGeneration, "truncated PNG header")
	}
	w := int(binary.BigEndian.Uint32(data[16:20]))
	h := int(binary.BigEndian.Uint32(data[20:24]))
	return w, h, nil
}

// jpegSOFMarkers are the JPEG start-of-frame markers that carry dimensions.
// C4, C8, and CC are excluded: they are DHT (Huffman table), JPG (reserved),
// and DAC (arithmetic conditioning table) respectively, not frame headers.
func isJPEGSOFMarker(marker byte) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	return marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}

func readJPEGHeader(data []byte) (int, int, error) {
	// Scan for FF xx marker pairs; on the first start-of-frame marker, the
	// dimensions sit at fixed offsets relative to the marker: height as a
	// big-endian u16 five bytes past the marker, width two bytes after that.
	i := 2 // skip the SOI marker already matched by DetectImageFormat
	for i+1 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xD8 || marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			i += 2
			continue
		}
		if i+9 > len(data) {
			return 0, 0, newErr(ErrXMLGeneration, "truncated JPEG segment")
		}
		if isJPEGSOFMarker(marker) {
			height := int(binary.BigEndian.Uint16(data[i+5 : i+7]))
			width := int(binary.BigEndian.Uint16(data[i+7 : i+9]))
			return width, height, nil
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 {
			return 0, 0, newErr(ErrXMLGeneration, "invalid JPEG segment length")
		}
		i += 2 + segLen
	}
	return 0, 0, newErr(ErrXMLGeneration, "no JPEG start-of-frame marker found")
}
