package maze

import (
	"fmt"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// Walls holds the four wall flags of a cell. True means closed.
type Walls struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

func (w *Walls) get(d types.Direction) bool {
	switch d {
	case types.North:
		return w.North
	case types.South:
		return w.South
	case types.East:
		return w.East
	case types.West:
		return w.West
	}
	return true
}

func (w *Walls) set(d types.Direction, closed bool) {
	switch d {
	case types.North:
		w.North = closed
	case types.South:
		w.South = closed
	case types.East:
		w.East = closed
	case types.West:
		w.West = closed
	}
}

// Openings counts the open sides.
func (w Walls) Openings() int {
	n := 0
	for _, closed := range []bool{w.North, w.South, w.East, w.West} {
		if !closed {
			n++
		}
	}
	return n
}

// Cell is one grid square.
type Cell struct {
	X            int   `json:"x"`
	Y            int   `json:"y"`
	Walls        Walls `json:"walls"`
	DecisionNode bool  `json:"decision_node"`
}

func (c *Cell) Coord() types.Coord {
	return types.Coord{X: c.X, Y: c.Y}
}

// Maze is a width x height grid whose topology is fixed at generation
// except through SetWall.
type Maze struct {
	Width  int
	Height int
	Seed   int64
	Start  types.Coord

	// grid is indexed [y][x]
	grid [][]*Cell
	// wallGrid caches the renderer projection; nil when stale
	wallGrid [][]bool
}

func newMaze(width, height int, seed int64) *Maze {
	grid := make([][]*Cell, height)
	for y := range grid {
		grid[y] = make([]*Cell, width)
		for x := range grid[y] {
			grid[y][x] = &Cell{
				X:     x,
				Y:     y,
				Walls: Walls{North: true, South: true, East: true, West: true},
			}
		}
	}
	return &Maze{
		Width:  width,
		Height: height,
		Seed:   seed,
		grid:   grid,
	}
}

func (m *Maze) InBounds(c types.Coord) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// Cell returns the cell at c, or false when c is out of bounds.
func (m *Maze) Cell(c types.Coord) (*Cell, bool) {
	if !m.InBounds(c) {
		return nil, false
	}
	return m.grid[c.Y][c.X], true
}

// CanMove reports whether the wall on side d of c is open.
func (m *Maze) CanMove(c types.Coord, d types.Direction) bool {
	cell, ok := m.Cell(c)
	if !ok {
		return false
	}
	return !cell.Walls.get(d)
}

// WallClosed reports the state of the wall on side d of c.
func (m *Maze) WallClosed(c types.Coord, d types.Direction) bool {
	cell, ok := m.Cell(c)
	if !ok {
		return true
	}
	return cell.Walls.get(d)
}

// Cells returns a row-major copy of every cell.
func (m *Maze) Cells() []Cell {
	out := make([]Cell, 0, m.Width*m.Height)
	for _, row := range m.grid {
		for _, cell := range row {
			out = append(out, *cell)
		}
	}
	return out
}

// DecisionNodes returns decision-node coordinates in row-major order.
func (m *Maze) DecisionNodes() []types.Coord {
	var out []types.Coord
	for _, row := range m.grid {
		for _, cell := range row {
			if cell.DecisionNode {
				out = append(out, cell.Coord())
			}
		}
	}
	return out
}

// IsDecisionNode reports whether c was flagged at generation.
func (m *Maze) IsDecisionNode(c types.Coord) bool {
	cell, ok := m.Cell(c)
	return ok && cell.DecisionNode
}

// SetWall sets the wall on side d of c and the opposite side of its
// neighbor. It reports whether anything changed. Boundary walls have no
// neighbor and only the cell side is changed.
func (m *Maze) SetWall(c types.Coord, d types.Direction, closed bool) (bool, error) {
	cell, ok := m.Cell(c)
	if !ok {
		return false, fmt.Errorf("cell %s out of bounds", c)
	}
	if d.Delta() == (types.Coord{}) {
		return false, fmt.Errorf("invalid direction %q", d)
	}
	if cell.Walls.get(d) == closed {
		return false, nil
	}
	cell.Walls.set(d, closed)
	if neighbor, ok := m.Cell(c.Add(d.Delta(), 1)); ok {
		neighbor.Walls.set(d.Opposite(), closed)
	}
	m.wallGrid = nil
	return true, nil
}

// OpenInteriorWalls counts open walls shared by two in-bounds cells.
func (m *Maze) OpenInteriorWalls() int {
	n := 0
	for _, row := range m.grid {
		for _, cell := range row {
			if cell.X+1 < m.Width && !cell.Walls.East {
				n++
			}
			if cell.Y+1 < m.Height && !cell.Walls.South {
				n++
			}
		}
	}
	return n
}

// Reachable returns every coordinate reachable from start through open walls.
func (m *Maze) Reachable(start types.Coord) types.CoordSet {
	seen := types.NewCoordSet()
	if !m.InBounds(start) {
		return seen
	}
	stack := []types.Coord{start}
	seen.Put(start)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range types.Directions {
			next := c.Add(d.Delta(), 1)
			if !m.CanMove(c, d) || !m.InBounds(next) || seen.Has(next) {
				continue
			}
			seen.Put(next)
			stack = append(stack, next)
		}
	}
	return seen
}
