package model

import "encoding/json"

// Destination matrix dimensions. Eight logical rows of six columns per
// layer, matching the layout arrays inside a .vil file.
const (
	DestRows = 8
	DestCols = 6
)

// TransparentKeycode is the destination's fall-through binding.
const TransparentKeycode = "KC_TRNS"

// Cell is one destination matrix position: either a keycode string or a dead
// position the board physically lacks, which serializes as -1.
type Cell struct {
	Keycode string
	Dead    bool
}

// MarshalJSON emits the keycode string, or -1 for dead positions.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Dead {
		return []byte("-1"), nil
	}
	return json.Marshal(c.Keycode)
}

// UnmarshalJSON accepts either a keycode string or a number; any number marks
// the cell dead.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cell{Keycode: s}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Cell{Dead: true}
	return nil
}

// Grid is one layer mapped onto the destination matrix.
type Grid [DestRows][DestCols]Cell

// TransparentGrid returns a grid with every live cell set to the
// fall-through binding. Dead positions are marked by the caller's position
// map; this helper takes a predicate so it does not need to know the board
// shape.
func TransparentGrid(dead func(DestinationPosition) bool) Grid {
	var g Grid
	for row := 0; row < DestRows; row++ {
		for col := 0; col < DestCols; col++ {
			if dead(DestinationPosition{Row: row, Col: col}) {
				g[row][col] = Cell{Dead: true}
			} else {
				g[row][col] = Cell{Keycode: TransparentKeycode}
			}
		}
	}
	return g
}
