package act

const maxFrameDimension = 256

// Frame is one rectangular raster: its own palette, its own origin
// offset relative to the parent Image's center, and an 8-bit indexed
// pixel buffer. parent is a non-owning back-reference attached only by
// FrameList mutation methods; it is never used to transfer ownership,
// only to read the parent's center/size during offset validation, to
// read the parent's global palette, and to trigger a bounding-box
// recompute after a mutation.
type Frame struct {
	width, height    int
	offsetX, offsetY int
	offsetSet        bool
	palette          []RGB
	useFrameColors   bool
	pixels           []byte
	lengthBitCount   uint8
	parent           *Image
}

// deriveLengthBitCount picks the Short-opcode run-length field width:
// 5 bits for small palettes, 4 for mid-sized palettes or narrow
// frames, 3 otherwise.
func deriveLengthBitCount(paletteLen, width int) uint8 {
	switch {
	case paletteLen <= 8:
		return 5
	case paletteLen <= 16 || width <= 16:
		return 4
	default:
		return 3
	}
}

// NewFrameFromRaster builds a Frame from an 8-bit indexed raster,
// trimming the supplied palette to only the indices actually used and
// remapping pixels accordingly. img may be nil if the frame is not yet
// attached to an Image; FrameList.Add then attaches it and recomputes
// the parent bounding box. The default centered offset is not
// range-checked, here or by FrameList.Add.
func NewFrameFromRaster(img *Image, r Raster, palette []RGB) (*Frame, error) {
	indexed, err := toIndexed(r, palette)
	if err != nil {
		return nil, err
	}
	if r.Width < 1 || r.Width > maxFrameDimension || r.Height < 1 || r.Height > maxFrameDimension {
		return nil, ErrDimensionOutOfRange
	}

	f := &Frame{
		width:          r.Width,
		height:         r.Height,
		useFrameColors: true,
		parent:         img,
	}
	f.palette, f.pixels = trimPalette(palette, indexed)
	f.lengthBitCount = deriveLengthBitCount(len(f.palette), f.width)

	if !f.offsetSet {
		f.offsetX = -f.width / 2
		f.offsetY = -f.height / 2
		f.offsetSet = true
	}
	if img != nil {
		img.recomputeBounds()
	}
	return f, nil
}

// NewFrameFromBytes parses one frame body (its header, palette,
// extents, and row stream) exactly as the file codec does for each
// entry of a decoded image's frame-offset table. img may be nil.
func NewFrameFromBytes(img *Image, data []byte) (*Frame, error) {
	return decodeFrameBytes(img, data)
}

// trimPalette removes every palette entry with index >= 1 that no
// pixel references and, in a single pass, remaps every pixel byte to
// its entry's new position. Slot 0 is always kept (transparent by
// convention, regardless of use).
func trimPalette(palette []RGB, pix []byte) ([]RGB, []byte) {
	var used [256]bool
	used[0] = true
	for _, p := range pix {
		used[p] = true
	}

	out := make([]RGB, 0, len(palette))
	remap := make([]byte, len(palette))
	for i, c := range palette {
		if i == 0 || used[i] {
			remap[i] = byte(len(out))
			out = append(out, c)
		}
	}
	remapped := make([]byte, len(pix))
	for i, p := range pix {
		remapped[i] = remap[p]
	}
	return out, remapped
}

// Width returns the frame's pixel width.
func (f *Frame) Width() int { return f.width }

// Height returns the frame's pixel height.
func (f *Frame) Height() int { return f.height }

// Palette returns the frame's own palette; empty if UseFrameColors is false.
func (f *Frame) Palette() []RGB { return f.palette }

// ColorCount returns the number of entries in the frame's own palette.
func (f *Frame) ColorCount() int { return len(f.palette) }

// UseFrameColors reports whether this frame supplies its own palette,
// as opposed to deferring to the parent image's global palette.
func (f *Frame) UseFrameColors() bool { return f.useFrameColors }

// Pixels returns the frame's 8-bit indexed raster, row-major, top-down.
func (f *Frame) Pixels() []byte { return f.pixels }

// Offset returns the frame's origin relative to the parent center.
func (f *Frame) Offset() (x, y int) { return f.offsetX, f.offsetY }

// ResolvedPalette returns the palette this frame's pixel indices are
// actually drawn from: its own if UseFrameColors is set, otherwise the
// parent image's global palette. It fails with ErrNoColorSource if
// neither source is active, mirroring the validation the file codec
// performs on decode.
func (f *Frame) ResolvedPalette() ([]RGB, error) {
	if f.useFrameColors {
		return f.palette, nil
	}
	if f.parent != nil && f.parent.useGlobalColors {
		return f.parent.globalPalette, nil
	}
	return nil, ErrNoColorSource
}

// SetPalette replaces the frame's own palette. It fails with
// ErrIndexOutOfRange, leaving the frame unchanged, if colors is empty,
// holds more than 256 entries, or is too short for an existing pixel
// index; use SetPixels to assign a raster against the new palette.
func (f *Frame) SetPalette(colors []RGB) error {
	if len(colors) < 1 || len(colors) > 256 {
		return ErrIndexOutOfRange
	}
	for _, p := range f.pixels {
		if int(p) >= len(colors) {
			return ErrIndexOutOfRange
		}
	}
	f.palette = append([]RGB(nil), colors...)
	f.useFrameColors = true
	f.lengthBitCount = deriveLengthBitCount(len(f.palette), f.width)
	return nil
}

// SetPixels replaces the frame's raster from an external source,
// trimming the palette exactly as NewFrameFromRaster does. The
// frame's dimensions must match r's.
func (f *Frame) SetPixels(r Raster, palette []RGB) error {
	if r.Width != f.width || r.Height != f.height {
		return ErrRasterTooLarge
	}
	indexed, err := toIndexed(r, palette)
	if err != nil {
		return err
	}
	f.palette, f.pixels = trimPalette(palette, indexed)
	f.useFrameColors = true
	f.lengthBitCount = deriveLengthBitCount(len(f.palette), f.width)
	if f.parent != nil {
		f.parent.recomputeBounds()
	}
	return nil
}

// SetOffset moves the frame relative to the parent center, validating
// against the fixed 256-pixel addressable range. If the frame is not
// yet attached to an Image the value is accepted unchecked; adding the
// frame to a FrameList does not check it either.
func (f *Frame) SetOffset(x, y int) error {
	if f.parent != nil {
		cx, cy := f.parent.center.X, f.parent.center.Y
		if x < -cx || x > maxFrameDimension-f.width-cx {
			return ErrOffsetOutOfRange
		}
		if y < -cy || y > maxFrameDimension-f.height-cy {
			return ErrOffsetOutOfRange
		}
	}
	f.offsetX, f.offsetY = x, y
	f.offsetSet = true
	if f.parent != nil {
		f.parent.recomputeBounds()
	}
	return nil
}
