package generator

import (
	"bufio"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// readImage decodes a bitmap and emits its raw pixel buffer.
func readImage(path string) (ArrayContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArrayContent{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := bmp.Decode(bufio.NewReader(f))
	if err != nil {
		return ArrayContent{}, fmt.Errorf("failed to decode bitmap %s: %w", path, err)
	}

	pix, err := pixelBytes(img)
	if err != nil {
		return ArrayContent{}, fmt.Errorf("failed to decode bitmap %s: %w", path, err)
	}
	return ArrayContent{Count: len(pix), Blob: hexBlob(pix)}, nil
}

// pixelBytes flattens a decoded bitmap into its native pixel layout, rows
// top to bottom. Paletted images give one index byte per pixel, opaque
// truecolor gives R,G,B and translucent truecolor gives R,G,B,A.
func pixelBytes(img image.Image) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch m := img.(type) {
	case *image.Paletted:
		return packRows(m.Pix, m.Stride, w, h), nil
	case *image.RGBA:
		if m.Opaque() {
			return dropAlpha(m.Pix, m.Stride, w, h), nil
		}
		return packRows(m.Pix, m.Stride, w*4, h), nil
	case *image.NRGBA:
		if m.Opaque() {
			return dropAlpha(m.Pix, m.Stride, w, h), nil
		}
		return packRows(m.Pix, m.Stride, w*4, h), nil
	default:
		return nil, fmt.Errorf("unsupported pixel layout %T", img)
	}
}

// packRows copies rowLen bytes of each row, skipping stride padding.
func packRows(pix []byte, stride, rowLen, rows int) []byte {
	out := make([]byte, 0, rowLen*rows)
	for y := 0; y < rows; y++ {
		off := y * stride
		out = append(out, pix[off:off+rowLen]...)
	}
	return out
}

func dropAlpha(pix []byte, stride, w, h int) []byte {
	out := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*4]
		for x := 0; x < len(row); x += 4 {
			out = append(out, row[x], row[x+1], row[x+2])
		}
	}
	return out
}
