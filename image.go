package act

import "github.com/pkg/errors"

// Image is the top-level composite: a shared center (anchor), an
// ordered frame collection, and an optional global palette shared by
// frames that opt out of carrying their own.
type Image struct {
	size            Point
	center          Point
	frames          *FrameList
	globalPalette   []RGB
	useGlobalColors bool
	path            string
}

// FromRaster converts a single raster to 8-bit indexed form against
// palette and wraps it in a one-frame Image centered on the raster
// itself.
func FromRaster(r Raster, palette []RGB) (*Image, error) {
	img := &Image{
		center: Point{X: r.Width / 2, Y: r.Height / 2},
	}
	img.frames = &FrameList{parent: img}

	f, err := NewFrameFromRaster(img, r, palette)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	img.frames.frames = []*Frame{f}
	img.recomputeBounds()
	return img, nil
}

// Frames returns the image's frame collection.
func (img *Image) Frames() *FrameList { return img.frames }

// Center returns the image's anchor point.
func (img *Image) Center() Point { return img.center }

// Size returns the image's bounding-box size.
func (img *Image) Size() Point { return img.size }

// Path returns the path the image was opened from or last saved to;
// empty for images built directly from a raster or a bare byte buffer.
func (img *Image) Path() string { return img.path }

// GlobalPalette returns the image-level palette, nil if absent.
func (img *Image) GlobalPalette() []RGB { return img.globalPalette }

// UsesGlobalColors reports whether frames may defer to GlobalPalette.
func (img *Image) UsesGlobalColors() bool { return img.useGlobalColors }

// SetGlobalPalette installs an image-level palette and enables it.
// Passing nil disables the global palette; every frame must then set
// UseFrameColors, or later encoding/decoding calls fail with
// ErrNoColorSource.
func (img *Image) SetGlobalPalette(colors []RGB) {
	img.globalPalette = colors
	img.useGlobalColors = colors != nil
}

// recomputeBounds recomputes the composite bounding box from every
// frame's offset and re-anchors the center so the box starts at
// (0, 0). It runs after every mutation that could invalidate geometry.
func (img *Image) recomputeBounds() {
	if img.frames == nil || len(img.frames.frames) == 0 {
		return
	}
	left, top := 1<<30, 1<<30
	right, bottom := -(1 << 30), -(1 << 30)
	for _, f := range img.frames.frames {
		l := img.center.X + f.offsetX
		t := img.center.Y + f.offsetY
		r := l + f.width - 1
		b := t + f.height - 1
		if l < left {
			left = l
		}
		if t < top {
			top = t
		}
		if r > right {
			right = r
		}
		if b > bottom {
			bottom = b
		}
	}
	img.center.X -= left
	img.center.Y -= top
	img.size = Point{X: right - left + 1, Y: bottom - top + 1}
}
