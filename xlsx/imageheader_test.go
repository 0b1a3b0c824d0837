package xlsx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeGIF(w, h uint16) []byte {
	b := make([]byte, 13)
	copy(b, []byte{0x47, 0x49, 0x46, '8', '9', 'a'})
	binary.LittleEndian.PutUint16(b[6:8], w)
	binary.LittleEndian.PutUint16(b[8:10], h)
	return b
}

func fakePNG(w, h uint32) []byte {
	b := make([]byte, 24)
	copy(b, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	return b
}

func fakeJPEG(w, h uint16) []byte {
	b := []byte{0xFF, 0xD8}
	sof := make([]byte, 9)
	sof[0] = 0xFF
	sof[1] = 0xC0
	binary.BigEndian.PutUint16(sof[2:4], 8) // segment length, not read for a start-of-frame segment
	sof[4] = 8                              // bit depth
	binary.BigEndian.PutUint16(sof[5:7], h)
	binary.BigEndian.PutUint16(sof[7:9], w)
	return append(b, sof...)
}

func TestDetectImageFormat(t *testing.T) {
	gifFmt, err := DetectImageFormat(fakeGIF(1, 1))
	require.NoError(t, err)
	assert.Equal(t, ImageGIF, gifFmt)

	pngFmt, err := DetectImageFormat(fakePNG(1, 1))
	require.NoError(t, err)
	assert.Equal(t, ImagePNG, pngFmt)

	jpgFmt, err := DetectImageFormat(fakeJPEG(1, 1))
	require.NoError(t, err)
	assert.Equal(t, ImageJPEG, jpgFmt)

	_, err = DetectImageFormat([]byte{0x00, 0x01})
	assert.Error(t, err)
}

func TestReadImageHeaderDimensions(t *testing.T) {
	format, w, h, err := ReadImageHeader(fakeGIF(640, 480))
	require.NoError(t, err)
	assert.Equal(t, ImageGIF, format)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	format, w, h, err = ReadImageHeader(fakePNG(1920, 1080))
	require.NoError(t, err)
	assert.Equal(t, ImagePNG, format)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	format, w, h, err = ReadImageHeader(fakeJPEG(300, 200))
	require.NoError(t, err)
	assert.Equal(t, ImageJPEG, format)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestReadImageHeaderRejectsTruncated(t *testing.T) {
	_, _, _, err := ReadImageHeader(fakeGIF(1, 1)[:5])
	assert.Error(t, err)
}
