// Package hexgrid maps key ids on the 140-key board to hexagonal grid
// coordinates and back.
//
// Coordinates use doubled-offset form: key id i sits at Row = i/10 and
// Col = 2*(i%10) + (Row&1), so odd rows are shifted half a hex to the
// right and horizontally adjacent hexes differ by two columns.
package hexgrid

const (
	Columns      = 10             // keys per physical row
	Rows         = 14             // populated rows
	MuxAddresses = 16             // multiplexer addresses per column
	KeyCount     = Columns * Rows // keys with an LED
	ScanCount    = Columns * MuxAddresses
	CommandCount = 7
)

// commandKeys lists the ids of the non-note command buttons on the left
// edge of every other row.
var commandKeys = [CommandCount]uint8{0, 20, 40, 60, 80, 100, 120}

// HexCoordinate is a (row, col) address in doubled-offset form
type HexCoordinate struct {
	Row int8
	Col int8
}

// Direction is a unit step between neighbouring hexes
type Direction struct {
	DRow int8
	DCol int8
}

// The six neighbour directions, clockwise from the right
var (
	Right     = Direction{0, 2}
	DownRight = Direction{1, 1}
	DownLeft  = Direction{1, -1}
	Left      = Direction{0, -2}
	UpLeft    = Direction{-1, -1}
	UpRight   = Direction{-1, 1}
)

// Directions holds the neighbour steps in clockwise order
var Directions = [6]Direction{Right, DownRight, DownLeft, Left, UpLeft, UpRight}

var (
	coords   [KeyCount]HexCoordinate
	cmdIndex [KeyCount]int8
)

func init() {
	for i := 0; i < KeyCount; i++ {
		row := i / Columns
		coords[i] = HexCoordinate{
			Row: int8(row),
			Col: int8(2*(i%Columns) + (row & 1)),
		}
		cmdIndex[i] = -1
	}
	for n, id := range commandKeys {
		cmdIndex[id] = int8(n)
	}
}

// CoordinateForKey returns the coordinate of key id
func CoordinateForKey(id int) (HexCoordinate, bool) {
	if id < 0 || id >= KeyCount {
		return HexCoordinate{}, false
	}
	return coords[id], true
}

// KeyForCoordinate returns the key id at h, or false when h is not a
// populated hex on the board.
func KeyForCoordinate(h HexCoordinate) (int, bool) {
	if !h.Valid() {
		return 0, false
	}
	return int(h.Row)*Columns + (int(h.Col)-int(h.Row&1))/2, true
}

// Valid reports whether h addresses a populated hex
func (h HexCoordinate) Valid() bool {
	if h.Row < 0 || int(h.Row) >= Rows {
		return false
	}
	// parity of Col must match the row offset
	if (h.Col-(h.Row&1))&1 != 0 {
		return false
	}
	col := (int(h.Col) - int(h.Row&1)) / 2
	return h.Col >= 0 && col < Columns
}

// Step returns the neighbour of h in direction d. The result may be
// off the board; check Valid before using it.
func (h HexCoordinate) Step(d Direction) HexCoordinate {
	return HexCoordinate{Row: h.Row + d.DRow, Col: h.Col + d.DCol}
}

// Lattice decomposes the offset from origin to h into steps along the two
// layout axes: across (one hex right) and downLeft (one hex down and to
// the left).
func Lattice(origin, h HexCoordinate) (across, downLeft int) {
	dRow := int(h.Row) - int(origin.Row)
	dCol := int(h.Col) - int(origin.Col)
	return (dCol + dRow) / 2, dRow
}

// Distance returns the number of single-hex steps between a and b
func Distance(a, b HexCoordinate) int {
	dRow := abs(int(a.Row) - int(b.Row))
	dCol := abs(int(a.Col) - int(b.Col))
	if dCol <= dRow {
		return dRow
	}
	return dRow + (dCol-dRow)/2
}

// CommandIndex returns the command number of key id, or -1 for a note key
func CommandIndex(id int) int {
	if id < 0 || id >= KeyCount {
		return -1
	}
	return int(cmdIndex[id])
}

// CommandKey returns the key id of command n
func CommandKey(n int) (int, bool) {
	if n < 0 || n >= CommandCount {
		return 0, false
	}
	return int(commandKeys[n]), true
}

// ScanAddress returns the multiplexer address and column pin index for
// key id. Ids at or above KeyCount are unpopulated scan cells.
func ScanAddress(id int) (mux, column int) {
	return id / Columns, id % Columns
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
