package act

import "testing"

func TestDeriveLengthBitCount(t *testing.T) {
	for _, tc := range []struct {
		paletteLen, width int
		want              uint8
	}{
		{2, 16, 5},
		{8, 16, 5},
		{9, 16, 4},
		{16, 200, 4},
		{17, 16, 4},
		{200, 200, 3},
	} {
		got := deriveLengthBitCount(tc.paletteLen, tc.width)
		if got != tc.want {
			t.Errorf("deriveLengthBitCount(%d, %d) = %d, want %d", tc.paletteLen, tc.width, got, tc.want)
		}
	}
}

func TestNewFrameFromRasterTrimsPalette(t *testing.T) {
	palette := make([]RGB, 256)
	for i := range palette {
		palette[i] = RGB{R: byte(i)}
	}
	r := Raster{
		Width: 4, Height: 1, BitsPerPixel: 8,
		Pix:     []byte{0, 5, 5, 0},
		Palette: palette,
	}
	f, err := NewFrameFromRaster(nil, r, palette)
	if err != nil {
		t.Fatalf("NewFrameFromRaster: %v", err)
	}
	if f.ColorCount() != 2 {
		t.Fatalf("ColorCount = %d, want 2", f.ColorCount())
	}
	for _, p := range f.Pixels() {
		if p > 1 {
			t.Fatalf("pixel %d not remapped into [0,1]", p)
		}
	}
}

func TestNewFrameFromRasterDefaultsOffsetToCentered(t *testing.T) {
	r := Raster{
		Width: 10, Height: 4, BitsPerPixel: 8,
		Pix:     make([]byte, 40),
		Palette: []RGB{{}},
	}
	f, err := NewFrameFromRaster(nil, r, []RGB{{}})
	if err != nil {
		t.Fatalf("NewFrameFromRaster: %v", err)
	}
	x, y := f.Offset()
	if x != -5 || y != -2 {
		t.Fatalf("offset = (%d, %d), want (-5, -2)", x, y)
	}
}

func TestSetOffsetRejectsOutOfRange(t *testing.T) {
	img, err := FromRaster(Raster{
		Width: 16, Height: 16, BitsPerPixel: 8,
		Pix: make([]byte, 256), Palette: []RGB{{}},
	}, []RGB{{}})
	if err != nil {
		t.Fatalf("FromRaster: %v", err)
	}
	f, err := img.Frames().At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if err := f.SetOffset(1000, 0); err == nil {
		t.Fatal("SetOffset(1000, 0) should have failed")
	}
}
