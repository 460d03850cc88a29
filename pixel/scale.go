package pixel

import xdraw "golang.org/x/image/draw"

// Enlarge returns a copy of src where every cell becomes a factor×factor
// block. A factor below 1 is treated as 1.
//
// For factors above 1 the copy goes through premultiplied alpha, so only
// opaque cells keep their exact color. Translucent cells keep their alpha but
// may lose the low bits of their color channels.
func Enlarge(src *Buffer, factor int) *Buffer {
	if factor < 1 {
		factor = 1
	}
	dst := NewBuffer(src.Width*factor, src.Height*factor)
	if factor == 1 {
		copy(dst.Pix, src.Pix)
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
