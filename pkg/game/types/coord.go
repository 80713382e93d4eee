package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Coord is a cell coordinate on the maze grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by d scaled by n.
func (c Coord) Add(d Coord, n int) Coord {
	return Coord{X: c.X + d.X*n, Y: c.Y + d.Y*n}
}

// Manhattan returns the taxicab distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Less orders coordinates by x, then y.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CoordSet is a set of coordinates with value equality.
type CoordSet = mapset.Set[Coord]

// NewCoordSet returns a set holding the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := mapset.New[Coord]()
	for _, c := range coords {
		s.Put(c)
	}
	return s
}

// SortedCoords returns the members of s in a stable order.
func SortedCoords(s CoordSet) []Coord {
	out := make([]Coord, 0, s.Size())
	s.Each(func(c Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// CopyCoordSet returns an independent copy of s.
func CopyCoordSet(s CoordSet) CoordSet {
	out := mapset.New[Coord]()
	s.Each(func(c Coord) {
		out.Put(c)
	})
	return out
}

// Direction is one of the four cardinal directions.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists the cardinal directions in carving order.
var Directions = []Direction{North, South, East, West}

// ParseDirection normalizes and validates a direction string.
func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case North, South, East, West:
		return d, true
	default:
		return "", false
	}
}

// Delta returns the unit offset for the direction. North is -y.
func (d Direction) Delta() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: -1}
	case South:
		return Coord{X: 0, Y: 1}
	case East:
		return Coord{X: 1, Y: 0}
	case West:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// DirectionBetween returns the direction of a unit step from a to b.
func DirectionBetween(a, b Coord) (Direction, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 1 && dy == 0:
		return East, true
	case dx == -1 && dy == 0:
		return West, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == 0 && dy == -1:
		return North, true
	default:
		return "", false
	}
}
