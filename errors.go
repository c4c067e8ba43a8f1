package act

import "errors"

// Validation failures: malformed bytes rejected during decode.
var (
	ErrBadFrameTableJump  = errors.New("act: file header frame-offset jump is not 0x34")
	ErrBadPaletteJump     = errors.New("act: frame header palette jump is not 0x2C")
	ErrNoColorSource      = errors.New("act: neither frame nor parent image supplies a palette")
	ErrIndexOutOfRange    = errors.New("act: pixel index exceeds palette length")
	ErrRowNotTerminated   = errors.New("act: row opcode stream missing EndRow terminator")
	ErrFrameNotTerminated = errors.New("act: row opcode stream missing EndFrame terminator")
	ErrOpcodeOverrun      = errors.New("act: opcode run would write past the row")
	ErrReservedFieldNonZero = errors.New("act: Shift opcode reserved byte is non-zero")
	ErrTruncatedStream    = errors.New("act: opcode stream ends before row is filled")
	ErrTrailingBytes      = errors.New("act: bytes remain after frame terminator")
)

// Boundary failures: values outside the ranges the model allows.
var (
	ErrDimensionOutOfRange = errors.New("act: frame dimension outside [1, 256]")
	ErrRasterTooLarge      = errors.New("act: raster larger than parent image bounds")
	ErrOffsetOutOfRange    = errors.New("act: frame offset would place it outside [0, 256) of center")
	ErrFrameCountOutOfRange = errors.New("act: frame count outside [1, 20]")
)

// Format failures: a value is well-formed but the wrong shape for the call.
var (
	ErrNotIndexed       = errors.New("act: raster is not 8-bit indexed")
	ErrBadLengthBitCount = errors.New("act: length_bit_count outside {3, 4, 5}")
)

// State failures: an operation is invalid given the object's current state.
var (
	ErrNoPath         = errors.New("act: image has no file path; use SaveTo")
	ErrBadExtension   = errors.New("act: path does not have a .act extension")
	ErrTruncateDenied = errors.New("act: SetCount would truncate frames; allowTruncate is false")
)
