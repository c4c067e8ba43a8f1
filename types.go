package act

// Point is a signed 2D coordinate. The standard library's image.Point
// is deliberately not reused here: that type travels with image.Image,
// and this package never produces non-indexed output (see Non-goals).
type Point struct {
	X, Y int
}

// RGB is one palette entry. The on-disk format stores a fourth,
// reserved byte after each triple; it is always written as zero and
// never surfaced here.
type RGB struct {
	R, G, B byte
}

// Raster is an external pixel source accepted by FromRaster,
// NewFrameFromRaster, and Frame.SetPixels. BitsPerPixel selects the
// pixel encoding of Pix:
//
//   - 1, 4, 8: packed or byte-per-pixel palette indices into Palette.
//   - 32: four bytes per pixel in B, G, R, A order; Palette is ignored
//     and A is discarded (ACT has no alpha channel).
type Raster struct {
	Width, Height int
	BitsPerPixel  int
	Pix           []byte
	Palette       []RGB
}
