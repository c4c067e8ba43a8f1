package act

// toIndexed converts an external Raster into an 8-bit indexed pixel
// buffer matched against palette. The result still needs trimPalette
// applied by the caller (Frame construction/assignment performs that
// step).
func toIndexed(r Raster, palette []RGB) ([]byte, error) {
	switch r.BitsPerPixel {
	case 32:
		return bgraToIndexed(r, palette)
	case 8:
		return reindexPaletted(r, palette)
	case 1, 4:
		unpacked, err := unpackIndices(r)
		if err != nil {
			return nil, err
		}
		return reindexPaletted(Raster{
			Width: r.Width, Height: r.Height, BitsPerPixel: 8,
			Pix: unpacked, Palette: r.Palette,
		}, palette)
	default:
		return nil, ErrNotIndexed
	}
}

// nearestIndex finds the palette entry minimizing squared Euclidean
// RGB distance to c, ties broken by lowest index, with an early exit
// on an exact match.
func nearestIndex(c RGB, palette []RGB) byte {
	best := 0
	bestDist := -1
	for i, p := range palette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if d == 0 {
			return byte(i)
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return byte(best)
}

// bgraToIndexed matches each B,G,R,A pixel (alpha discarded, ACT has
// no alpha channel) against the nearest entry in palette.
func bgraToIndexed(r Raster, palette []RGB) ([]byte, error) {
	want := r.Width * r.Height * 4
	if len(r.Pix) != want {
		return nil, ErrDimensionOutOfRange
	}
	n := r.Width * r.Height
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := r.Pix[i*4+0]
		g := r.Pix[i*4+1]
		rr := r.Pix[i*4+2]
		out[i] = nearestIndex(RGB{R: rr, G: g, B: b}, palette)
	}
	return out, nil
}

// reindexPaletted matches each entry of r's own palette against the
// target palette, then applies that remap to every pixel index. This
// lets a raster keep its own palette ordering while still landing on
// the caller's target slots.
func reindexPaletted(r Raster, palette []RGB) ([]byte, error) {
	if len(r.Palette) == 0 {
		return nil, ErrNotIndexed
	}
	remap := make([]byte, len(r.Palette))
	for i, c := range r.Palette {
		remap[i] = nearestIndex(c, palette)
	}
	out := make([]byte, len(r.Pix))
	for i, p := range r.Pix {
		if int(p) >= len(remap) {
			return nil, ErrIndexOutOfRange
		}
		out[i] = remap[p]
	}
	return out, nil
}

// unpackIndices expands 1- or 4-bit-per-pixel packed rows (most
// significant bits first, scanlines padded to a byte boundary) into
// one index byte per pixel.
func unpackIndices(r Raster) ([]byte, error) {
	bpp := r.BitsPerPixel
	perByte := 8 / bpp
	mask := byte((1 << uint(bpp)) - 1)
	bytesPerRow := (r.Width*bpp + 7) / 8

	out := make([]byte, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		rowStart := y * bytesPerRow
		for x := 0; x < r.Width; x++ {
			byteIdx := rowStart + x/perByte
			if byteIdx >= len(r.Pix) {
				return nil, ErrTruncatedStream
			}
			shift := uint(8 - bpp*(x%perByte+1))
			out[y*r.Width+x] = (r.Pix[byteIdx] >> shift) & mask
		}
	}
	return out, nil
}
