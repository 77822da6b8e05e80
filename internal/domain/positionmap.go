// Package domain contains the conversion pipeline: parsing the source
// keymap, remapping it onto the destination matrix, and merging the result
// into a template document.
package domain

import (
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// The source keymap lists 42 keys in row-major order across both halves:
//
//	row 0:  0-5  (left)   6-11 (right)
//	row 1: 12-17 (left)  18-23 (right)
//	row 2: 24-29 (left)  30-35 (right)
//	thumbs: 36-38 (left) 39-41 (right)
//
// The destination matrix is 8 logical rows of 6 columns per layer. Rows 0-2
// are the left finger rows, row 3 the left thumbs right-aligned against the
// row end, rows 4-6 the right finger rows with columns mirrored, row 7 the
// right thumbs, also mirrored. Matrix positions with no physical key behind
// them are dead.
const (
	// SourceKeyCount is the number of physical keys the source layout has.
	SourceKeyCount = 42

	halfCols  = 6
	thumbKeys = 3
)

// PositionMap is the static correspondence between a source key index and a
// destination matrix position. It is built once and never mutated.
type PositionMap struct {
	dest   [SourceKeyCount]m.DestinationPosition
	source map[m.DestinationPosition]int
}

// NewPositionMap builds the fixed source/destination correspondence.
func NewPositionMap() *PositionMap {
	p := &PositionMap{source: make(map[m.DestinationPosition]int, SourceKeyCount)}

	for row := 0; row < 3; row++ {
		for col := 0; col < halfCols; col++ {
			left := row*2*halfCols + col
			right := left + halfCols
			p.assign(left, m.DestinationPosition{Row: row, Col: col})
			p.assign(right, m.DestinationPosition{Row: 4 + row, Col: halfCols - 1 - col})
		}
	}
	for t := 0; t < thumbKeys; t++ {
		p.assign(36+t, m.DestinationPosition{Row: 3, Col: halfCols - thumbKeys + t})
		p.assign(39+t, m.DestinationPosition{Row: 7, Col: halfCols - 1 - t})
	}
	return p
}

func (p *PositionMap) assign(index int, d m.DestinationPosition) {
	p.dest[index] = d
	p.source[d] = index
}

// Destination returns the matrix position of source key index i. It reports
// false when the destination board has no position for that key.
func (p *PositionMap) Destination(i int) (m.DestinationPosition, bool) {
	if i < 0 || i >= SourceKeyCount {
		return m.DestinationPosition{}, false
	}
	return p.dest[i], true
}

// SourceIndex is the inverse lookup.
func (p *PositionMap) SourceIndex(d m.DestinationPosition) (int, bool) {
	i, ok := p.source[d]
	return i, ok
}

// Dead reports whether a destination cell has no physical key behind it.
// Only the leading cells of the two thumb rows qualify.
func (p *PositionMap) Dead(d m.DestinationPosition) bool {
	_, ok := p.source[d]
	return !ok
}

// SourcePositionOf describes source key index i in the per-half addressing
// scheme, for diagnostics.
func SourcePositionOf(i int) m.SourcePosition {
	if i >= 36 {
		t := i - 36
		if t < thumbKeys {
			return m.SourcePosition{Half: m.HalfLeft, Row: 3, Col: t}
		}
		return m.SourcePosition{Half: m.HalfRight, Row: 3, Col: t - thumbKeys}
	}
	row := i / (2 * halfCols)
	col := i % (2 * halfCols)
	if col < halfCols {
		return m.SourcePosition{Half: m.HalfLeft, Row: row, Col: col}
	}
	return m.SourcePosition{Half: m.HalfRight, Row: row, Col: col - halfCols}
}
