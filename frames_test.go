package act

import "testing"

func newSingleFrameImage(t *testing.T, w, h int) *Image {
	t.Helper()
	img, err := FromRaster(Raster{
		Width: w, Height: h, BitsPerPixel: 8,
		Pix: make([]byte, w*h), Palette: []RGB{{}},
	}, []RGB{{}})
	if err != nil {
		t.Fatalf("FromRaster: %v", err)
	}
	return img
}

func TestFrameListRemoveAtRefusesLastFrame(t *testing.T) {
	img := newSingleFrameImage(t, 8, 8)
	removed, err := img.Frames().RemoveAt(0)
	if err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if removed {
		t.Fatal("RemoveAt on the only frame should return false")
	}
	if img.Frames().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", img.Frames().Len())
	}
}

func TestFrameListAddRejectsBeyondMax(t *testing.T) {
	img := newSingleFrameImage(t, 4, 4)
	for i := 1; i < maxFrameCount; i++ {
		f, err := NewFrameFromRaster(nil, Raster{
			Width: 4, Height: 4, BitsPerPixel: 8,
			Pix: make([]byte, 16), Palette: []RGB{{}},
		}, []RGB{{}})
		if err != nil {
			t.Fatalf("NewFrameFromRaster: %v", err)
		}
		if err := img.Frames().Add(f); err != nil {
			t.Fatalf("Add frame %d: %v", i, err)
		}
	}
	extra, err := NewFrameFromRaster(nil, Raster{
		Width: 4, Height: 4, BitsPerPixel: 8,
		Pix: make([]byte, 16), Palette: []RGB{{}},
	}, []RGB{{}})
	if err != nil {
		t.Fatalf("NewFrameFromRaster: %v", err)
	}
	if err := img.Frames().Add(extra); err == nil {
		t.Fatal("Add beyond 20 frames should fail")
	}
}

func TestFrameListSetCountGrowsAndShrinks(t *testing.T) {
	img := newSingleFrameImage(t, 4, 4)
	if err := img.Frames().SetCount(5, false); err != nil {
		t.Fatalf("SetCount(5, false): %v", err)
	}
	if img.Frames().Len() != 5 {
		t.Fatalf("Len() = %d, want 5", img.Frames().Len())
	}
	if err := img.Frames().SetCount(2, false); err == nil {
		t.Fatal("SetCount shrinking without allowTruncate should fail")
	}
	if err := img.Frames().SetCount(2, true); err != nil {
		t.Fatalf("SetCount(2, true): %v", err)
	}
	if img.Frames().Len() != 2 {
		t.Fatalf("Len() = %d, want 2", img.Frames().Len())
	}
}
