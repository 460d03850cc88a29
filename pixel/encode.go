package pixel

import (
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

func EncodePNG(w io.Writer, buf *Buffer) error {
	return png.Encode(w, buf)
}

func EncodeBMP(w io.Writer, buf *Buffer) error {
	return bmp.Encode(w, buf)
}
