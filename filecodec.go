package act

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	fileHeaderSize  = 0x34
	frameHeaderSize = 0x2C
	frameExtentSize = 16
)

var le = binary.LittleEndian

// Open reads and decodes the ACT file at path. The path must carry a
// case-insensitive .act extension.
func Open(path string) (*Image, error) {
	if !strings.EqualFold(filepath.Ext(path), ".act") {
		return nil, errors.WithStack(ErrBadExtension)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	img.path = path
	return img, nil
}

// Decode parses a byte buffer holding either a plain ACT file or a
// bare XACT payload (the same layout, minus a surrounding archive).
func Decode(data []byte) (*Image, error) {
	if len(data) < fileHeaderSize {
		return nil, errors.WithStack(ErrTruncatedStream)
	}
	header := data[:fileHeaderSize]

	frameTableJump := le.Uint32(header[0x10:])
	if frameTableJump != fileHeaderSize {
		return nil, errors.WithStack(ErrBadFrameTableJump)
	}

	center := Point{X: int(int32(le.Uint32(header[0x24:]))), Y: int(int32(le.Uint32(header[0x28:])))}
	frameCount := int(le.Uint32(header[0x18:]))
	globalFlag := le.Uint32(header[0x2C:])
	useGlobal := globalFlag == 0x18

	var globalPalette []RGB
	if useGlobal {
		globalCount := int(le.Uint32(header[0x30:]))
		globalOffset := le.Uint32(header[0x0C:])
		var err error
		globalPalette, err = readPalette(data, int(globalOffset), globalCount)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	img := &Image{
		center:          center,
		globalPalette:   globalPalette,
		useGlobalColors: useGlobal,
	}
	img.frames = &FrameList{parent: img}

	if frameCount < 0 || fileHeaderSize+frameCount*4 > len(data) {
		return nil, errors.WithStack(ErrTruncatedStream)
	}
	offsetTable := data[fileHeaderSize : fileHeaderSize+frameCount*4]
	frames := make([]*Frame, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		off := int(le.Uint32(offsetTable[i*4:]))
		if off+4 > len(data) {
			return nil, errors.WithStack(ErrTruncatedStream)
		}
		bodyLen := int(le.Uint32(data[off:]))
		if off+bodyLen > len(data) {
			return nil, errors.WithStack(ErrTruncatedStream)
		}
		f, err := decodeFrameBytes(img, data[off:off+bodyLen])
		if err != nil {
			return nil, errors.WithStack(err)
		}
		frames = append(frames, f)
	}
	if len(frames) < minFrameCount || len(frames) > maxFrameCount {
		return nil, errors.WithStack(ErrFrameCountOutOfRange)
	}
	img.frames.frames = frames
	img.recomputeBounds()
	return img, nil
}

// decodeFrameBytes parses one frame body: its 0x2C-byte header,
// palette, extents, and row stream.
func decodeFrameBytes(parent *Image, body []byte) (*Frame, error) {
	if len(body) < frameHeaderSize {
		return nil, ErrTruncatedStream
	}
	header := body[:frameHeaderSize]

	paletteJump := le.Uint32(header[0x04:])
	if paletteJump != frameHeaderSize {
		return nil, ErrBadPaletteJump
	}

	colorFlag := le.Uint32(header[0x24:])
	useFrameColors := colorFlag == 0x18
	if !useFrameColors && !(parent != nil && parent.useGlobalColors) {
		return nil, ErrNoColorSource
	}

	colorCount := int(le.Uint32(header[0x28:]))
	width := int(le.Uint32(header[0x10:]))
	height := int(le.Uint32(header[0x14:]))
	lengthBitCount := uint8(le.Uint32(header[0x20:]))
	if lengthBitCount < 3 || lengthBitCount > 5 {
		return nil, ErrBadLengthBitCount
	}
	if width < 1 || width > maxFrameDimension || height < 1 || height > maxFrameDimension {
		return nil, ErrDimensionOutOfRange
	}

	var palette []RGB
	if useFrameColors {
		if colorCount < 1 || colorCount > 256 {
			return nil, ErrIndexOutOfRange
		}
		var err error
		palette, err = readPalette(body, frameHeaderSize, colorCount)
		if err != nil {
			return nil, err
		}
	}

	dataJump := int(le.Uint32(header[0x08:]))
	if dataJump+frameExtentSize > len(body) {
		return nil, ErrTruncatedStream
	}
	extents := body[dataJump : dataJump+frameExtentSize]
	left := int(int32(le.Uint32(extents[0:])))
	top := int(int32(le.Uint32(extents[4:])))

	rowStream := body[dataJump+frameExtentSize:]
	pix, err := decodeRaster(rowStream, width, height, lengthBitCount)
	if err != nil {
		return nil, err
	}

	resolvedPalette := palette
	if !useFrameColors {
		resolvedPalette = parent.globalPalette
	}
	for _, p := range pix {
		if int(p) >= len(resolvedPalette) {
			return nil, ErrIndexOutOfRange
		}
	}

	f := &Frame{
		width:          width,
		height:         height,
		offsetX:        left,
		offsetY:        top,
		offsetSet:      true,
		palette:        palette,
		useFrameColors: useFrameColors,
		pixels:         pix,
		lengthBitCount: lengthBitCount,
		parent:         parent,
	}
	return f, nil
}

// readPalette reads n RGB-plus-reserved-byte entries starting at off.
func readPalette(data []byte, off, n int) ([]RGB, error) {
	if off < 0 || off+n*4 > len(data) {
		return nil, ErrTruncatedStream
	}
	out := make([]RGB, n)
	for i := 0; i < n; i++ {
		e := data[off+i*4:]
		out[i] = RGB{R: e[0], G: e[1], B: e[2]}
	}
	return out, nil
}

// Encode rebuilds the entire file deterministically from the model.
// The encoder always emits the 16-byte frame-extents block; an
// encoder that omits it produces files its own loader would reject,
// so this is treated as a defect, not a format variant.
func (img *Image) Encode() ([]byte, error) {
	frames := img.frames.frames
	if len(frames) < minFrameCount || len(frames) > maxFrameCount {
		return nil, errors.WithStack(ErrFrameCountOutOfRange)
	}

	bodies := make([][]byte, len(frames))
	totalColors := 0
	for i, f := range frames {
		if !f.useFrameColors && !img.useGlobalColors {
			return nil, errors.WithStack(ErrNoColorSource)
		}
		body, err := encodeFrameBody(f)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		bodies[i] = body
		if f.useFrameColors {
			totalColors += len(f.palette)
		}
	}

	offsetTableLen := len(frames) * 4
	firstOffset := fileHeaderSize + offsetTableLen
	offsets := make([]int, len(frames))
	cursor := firstOffset
	for i, b := range bodies {
		offsets[i] = cursor
		cursor += len(b)
	}

	globalOffset := cursor
	var globalBytes []byte
	if img.useGlobalColors {
		globalBytes = encodePalette(img.globalPalette)
		cursor += len(globalBytes)
	}

	out := make([]byte, fileHeaderSize, cursor)
	le.PutUint32(out[0x00:], uint32(cursor))
	le.PutUint32(out[0x04:], uint32(totalColors))
	le.PutUint32(out[0x0C:], uint32(globalOffset))
	le.PutUint32(out[0x10:], fileHeaderSize)
	le.PutUint32(out[0x18:], uint32(len(frames)))
	le.PutUint32(out[0x1C:], uint32(img.size.X-1))
	le.PutUint32(out[0x20:], uint32(img.size.Y-1))
	le.PutUint32(out[0x24:], uint32(int32(img.center.X)))
	le.PutUint32(out[0x28:], uint32(int32(img.center.Y)))
	if img.useGlobalColors {
		le.PutUint32(out[0x2C:], 0x18)
		le.PutUint32(out[0x30:], uint32(len(img.globalPalette)))
	}

	for _, off := range offsets {
		ob := make([]byte, 4)
		le.PutUint32(ob, uint32(off))
		out = append(out, ob...)
	}
	for _, b := range bodies {
		out = append(out, b...)
	}
	out = append(out, globalBytes...)
	return out, nil
}

// encodeFrameBody serializes one frame's header, palette, extents,
// and row stream.
func encodeFrameBody(f *Frame) ([]byte, error) {
	rows, err := encodeRaster(f.pixels, f.width, f.height, f.lengthBitCount)
	if err != nil {
		return nil, err
	}

	colorCount := 0
	if f.useFrameColors {
		colorCount = len(f.palette)
	}
	dataJump := frameHeaderSize + colorCount*4
	bodyLen := dataJump + frameExtentSize + len(rows)

	header := make([]byte, frameHeaderSize)
	le.PutUint32(header[0x00:], uint32(bodyLen))
	le.PutUint32(header[0x04:], frameHeaderSize)
	le.PutUint32(header[0x08:], uint32(dataJump))
	le.PutUint32(header[0x0C:], uint32(bodyLen))
	le.PutUint32(header[0x10:], uint32(f.width))
	le.PutUint32(header[0x14:], uint32(f.height))
	le.PutUint32(header[0x20:], uint32(f.lengthBitCount))
	if f.useFrameColors {
		le.PutUint32(header[0x24:], 0x18)
	}
	le.PutUint32(header[0x28:], uint32(colorCount))

	body := make([]byte, 0, bodyLen)
	body = append(body, header...)
	if f.useFrameColors {
		body = append(body, encodePalette(f.palette)...)
	}

	extents := make([]byte, frameExtentSize)
	le.PutUint32(extents[0:], uint32(int32(f.offsetX)))
	le.PutUint32(extents[4:], uint32(int32(f.offsetY)))
	le.PutUint32(extents[8:], uint32(int32(f.offsetX+f.width-1)))
	le.PutUint32(extents[12:], uint32(int32(f.offsetY)))
	body = append(body, extents...)

	body = append(body, rows...)
	return body, nil
}

func encodePalette(colors []RGB) []byte {
	out := make([]byte, len(colors)*4)
	for i, c := range colors {
		e := out[i*4:]
		e[0], e[1], e[2], e[3] = c.R, c.G, c.B, 0
	}
	return out
}

// Save writes the image back to its original path. The prior file is
// backed up to a temp sibling first and restored if the write fails.
func (img *Image) Save() error {
	if img.path == "" {
		return errors.WithStack(ErrNoPath)
	}
	return img.SaveTo(img.path)
}

// SaveTo encodes the image and writes it to path, enforcing the
// .act extension and the backup-and-restore write discipline.
func (img *Image) SaveTo(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".act") {
		return errors.WithStack(ErrBadExtension)
	}
	data, err := img.Encode()
	if err != nil {
		return errors.WithStack(err)
	}

	backupPath := path + ".bak"
	hadOriginal := false
	if _, statErr := os.Stat(path); statErr == nil {
		hadOriginal = true
		if err := os.Rename(path, backupPath); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if hadOriginal {
			_ = os.Rename(backupPath, path)
		}
		return errors.WithStack(err)
	}
	if hadOriginal {
		_ = os.Remove(backupPath)
	}
	img.path = path
	return nil
}
