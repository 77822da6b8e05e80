package model

// Half identifies a side of the split board.
type Half string

// Available Half values.
const (
	HalfLeft  Half = "left"
	HalfRight Half = "right"
)

// SourcePosition addresses a key in the source's per-half scheme: three
// finger rows of six columns plus a thumb row of three keys per half.
type SourcePosition struct {
	Half Half
	Row  int // 0..2 finger rows, 3 = thumb row
	Col  int
}

// DestinationPosition addresses a key in the destination's logical matrix:
// rows 0-3 carry the left half, rows 4-7 the right half with mirrored
// columns.
type DestinationPosition struct {
	Row int // 0..7
	Col int // 0..5
}
