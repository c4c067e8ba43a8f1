package act

import "testing"

func TestRecomputeBoundsAfterMove(t *testing.T) {
	img, err := FromRaster(Raster{
		Width: 16, Height: 16, BitsPerPixel: 8,
		Pix: make([]byte, 256), Palette: []RGB{{}},
	}, []RGB{{}})
	if err != nil {
		t.Fatalf("FromRaster: %v", err)
	}
	// Single-frame construction centers the frame, giving center (8,8)
	// and size (16,16); moving the frame re-anchors the center so the
	// bounding box still starts at (0,0).
	f, err := img.Frames().At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if err := f.SetOffset(0, -8); err != nil {
		t.Fatalf("SetOffset: %v", err)
	}

	wantCenter := Point{X: 0, Y: 8}
	wantSize := Point{X: 16, Y: 16}
	if img.Center() != wantCenter {
		t.Fatalf("center = %+v, want %+v", img.Center(), wantCenter)
	}
	if img.Size() != wantSize {
		t.Fatalf("size = %+v, want %+v", img.Size(), wantSize)
	}
}

func TestBoundingBoxContainsEveryFrameAfterMutation(t *testing.T) {
	img, err := FromRaster(Raster{
		Width: 8, Height: 8, BitsPerPixel: 8,
		Pix: make([]byte, 64), Palette: []RGB{{}},
	}, []RGB{{}})
	if err != nil {
		t.Fatalf("FromRaster: %v", err)
	}

	second, err := NewFrameFromRaster(nil, Raster{
		Width: 20, Height: 5, BitsPerPixel: 8,
		Pix: make([]byte, 100), Palette: []RGB{{}},
	}, []RGB{{}})
	if err != nil {
		t.Fatalf("NewFrameFromRaster: %v", err)
	}
	if err := img.Frames().Add(second); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := second.SetOffset(-9, 50); err != nil {
		t.Fatalf("SetOffset: %v", err)
	}

	assertContained(t, img)
}

func assertContained(t *testing.T, img *Image) {
	t.Helper()
	for i := 0; i < img.Frames().Len(); i++ {
		f, err := img.Frames().At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		x, y := f.Offset()
		left := img.Center().X + x
		top := img.Center().Y + y
		if left < 0 || left+f.Width() > img.Size().X {
			t.Fatalf("frame %d x-extent [%d,%d) outside size.X=%d", i, left, left+f.Width(), img.Size().X)
		}
		if top < 0 || top+f.Height() > img.Size().Y {
			t.Fatalf("frame %d y-extent [%d,%d) outside size.Y=%d", i, top, top+f.Height(), img.Size().Y)
		}
	}
}
