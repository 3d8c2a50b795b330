// Package board models Ricochet Robots boards, robots and sliding moves.
package board

import "fmt"

// Direction is one of the four cardinal sliding directions.
type Direction int

const (
	North Direction = iota // towards row 0
	South                  // towards row size-1
	East                   // towards column size-1
	West                   // towards column 0
)

// Directions lists all sliding directions in a fixed order.
var Directions = [4]Direction{North, South, East, West}

func (d Direction) String() string {
	return [...]string{"north", "south", "east", "west"}[d]
}

// Delta returns the per-step column and row offsets of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ParseDirection maps a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Pos is a cell position. X is the column, Y the row; row 0 is the
// northern edge of the board.
type Pos struct {
	X, Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the adjacent position in the given direction. The result
// may be out of bounds; callers check with Board.InBounds.
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Field holds the wall flags of a single cell. Only the southern and
// eastern edges are stored; the opposite edges are queried through the
// neighboring cell, so a wall is never recorded twice.
type Field struct {
	Down  bool // wall on the southern edge
	Right bool // wall on the eastern edge
}

// Board is an immutable-once-built square grid of wall fields. The
// outer boundary is an implicit wall and is not stored.
type Board struct {
	size  int
	walls [][]Field // indexed [column][row]
}

// NewBoard creates an empty size x size board with no interior walls.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, &MalformedBoardError{Reason: fmt.Sprintf("board size %d is not positive", size)}
	}
	walls := make([][]Field, size)
	for x := range walls {
		walls[x] = make([]Field, size)
	}
	return &Board{size: size, walls: walls}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether the position lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// SetWall places a wall on the given edge of the cell. Edges on the
// outer boundary are rejected: the boundary is already an implicit
// wall, and accepting it would make encodings ambiguous.
func (b *Board) SetWall(p Pos, d Direction) error {
	if !b.InBounds(p) {
		return &MalformedBoardError{Reason: fmt.Sprintf("wall cell %v outside %dx%d board", p, b.size, b.size)}
	}
	cell, horizontal := b.normalizeEdge(p, d)
	neighbor := cell.Step(East)
	if horizontal {
		neighbor = cell.Step(South)
	}
	if !b.InBounds(cell) || !b.InBounds(neighbor) {
		return &MalformedBoardError{Reason: fmt.Sprintf("wall %s of %v lies on the board boundary", d, p)}
	}
	if horizontal {
		b.walls[cell.X][cell.Y].Down = true
	} else {
		b.walls[cell.X][cell.Y].Right = true
	}
	return nil
}

// normalizeEdge maps an edge reference to its canonical storage cell:
// the cell north of a horizontal wall, or west of a vertical one.
// horizontal reports whether the edge blocks north/south movement.
func (b *Board) normalizeEdge(p Pos, d Direction) (cell Pos, horizontal bool) {
	switch d {
	case South:
		return p, true
	case North:
		return p.Step(North), true
	case East:
		return p, false
	default:
		return p.Step(West), false
	}
}

// WallBetween reports whether a robot in cell p is blocked from leaving
// it in direction d, either by a stored wall or by the board boundary.
func (b *Board) WallBetween(p Pos, d Direction) bool {
	next := p.Step(d)
	if !b.InBounds(next) {
		return true
	}
	switch d {
	case South:
		return b.walls[p.X][p.Y].Down
	case North:
		return b.walls[next.X][next.Y].Down
	case East:
		return b.walls[p.X][p.Y].Right
	default:
		return b.walls[next.X][next.Y].Right
	}
}

// EncloseCenter walls off the central 2x2 block, the dead zone of the
// physical game boards. The size must be even and at least 4.
func (b *Board) EncloseCenter() error {
	if b.size < 4 || b.size%2 != 0 {
		return &MalformedBoardError{Reason: fmt.Sprintf("cannot enclose center of a %dx%d board", b.size, b.size)}
	}
	lo := b.size/2 - 1
	hi := b.size / 2
	for _, x := range []int{lo, hi} {
		if err := b.SetWall(Pos{x, lo}, North); err != nil {
			return err
		}
		if err := b.SetWall(Pos{x, hi}, South); err != nil {
			return err
		}
	}
	for _, y := range []int{lo, hi} {
		if err := b.SetWall(Pos{lo, y}, West); err != nil {
			return err
		}
		if err := b.SetWall(Pos{hi, y}, East); err != nil {
			return err
		}
	}
	return nil
}

// CenterCells returns the four cells of the central block enclosed by
// EncloseCenter.
func (b *Board) CenterCells() []Pos {
	lo := b.size/2 - 1
	hi := b.size / 2
	return []Pos{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}}
}

// Walls returns every stored wall as a (cell, direction) pair in
// canonical south/east form, ordered column-major. Encoders rely on
// this order being stable.
func (b *Board) Walls() []WallSpec {
	var specs []WallSpec
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.walls[x][y].Down {
				specs = append(specs, WallSpec{Cell: Pos{x, y}, Dir: South})
			}
			if b.walls[x][y].Right {
				specs = append(specs, WallSpec{Cell: Pos{x, y}, Dir: East})
			}
		}
	}
	return specs
}

// WallSpec names one wall edge in canonical form.
type WallSpec struct {
	Cell Pos
	Dir  Direction
}
