package act

const (
	minFrameCount = 1
	maxFrameCount = 20
)

// FrameList is the bounded, ordered collection of frames an Image
// owns. Every successful mutation attaches the affected frame's parent
// pointer and triggers a bounding-box recompute on the owning Image.
type FrameList struct {
	frames []*Frame
	parent *Image
}

// Len returns the number of frames.
func (fl *FrameList) Len() int { return len(fl.frames) }

// At returns the frame at index i.
func (fl *FrameList) At(i int) (*Frame, error) {
	if i < 0 || i >= len(fl.frames) {
		return nil, ErrIndexOutOfRange
	}
	return fl.frames[i], nil
}

// Add appends f to the end of the list.
func (fl *FrameList) Add(f *Frame) error {
	return fl.Insert(len(fl.frames), f)
}

// Insert places f at index i, shifting subsequent frames back.
func (fl *FrameList) Insert(i int, f *Frame) error {
	if len(fl.frames) >= maxFrameCount {
		return ErrFrameCountOutOfRange
	}
	if i < 0 || i > len(fl.frames) {
		return ErrIndexOutOfRange
	}
	f.parent = fl.parent
	fl.frames = append(fl.frames, nil)
	copy(fl.frames[i+1:], fl.frames[i:])
	fl.frames[i] = f
	fl.parent.recomputeBounds()
	return nil
}

// RemoveAt removes the frame at index i. It refuses to remove the
// last remaining frame, reporting that refusal by returning false
// rather than an error.
func (fl *FrameList) RemoveAt(i int) (bool, error) {
	if i < 0 || i >= len(fl.frames) {
		return false, ErrIndexOutOfRange
	}
	if len(fl.frames) <= minFrameCount {
		return false, nil
	}
	fl.frames[i].parent = nil
	fl.frames = append(fl.frames[:i], fl.frames[i+1:]...)
	fl.parent.recomputeBounds()
	return true, nil
}

// SetCount resizes the list to exactly n frames. Growing appends
// trailing blank (fully transparent, 1x1) frames; shrinking removes
// frames from the end and requires allowTruncate to be true.
func (fl *FrameList) SetCount(n int, allowTruncate bool) error {
	if n < minFrameCount || n > maxFrameCount {
		return ErrFrameCountOutOfRange
	}
	switch {
	case n > len(fl.frames):
		for len(fl.frames) < n {
			blank, err := NewFrameFromRaster(nil, Raster{
				Width: 1, Height: 1, BitsPerPixel: 8,
				Pix:     []byte{0},
				Palette: []RGB{{}},
			}, []RGB{{}})
			if err != nil {
				return err
			}
			if err := fl.Add(blank); err != nil {
				return err
			}
		}
	case n < len(fl.frames):
		if !allowTruncate {
			return ErrTruncateDenied
		}
		for i := len(fl.frames) - 1; i >= n; i-- {
			fl.frames[i].parent = nil
		}
		fl.frames = fl.frames[:n]
		fl.parent.recomputeBounds()
	}
	return nil
}
