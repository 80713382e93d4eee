package types

import "time"

// WallKey names the wall between Cell and its neighbor in Dir.
// Keys are canonical: Dir is always East or South.
type WallKey struct {
	Cell Coord     `json:"cell"`
	Dir  Direction `json:"dir"`
}

// CanonicalWall returns the canonical key for the wall on side d of c.
func CanonicalWall(c Coord, d Direction) WallKey {
	switch d {
	case North:
		return WallKey{Cell: c.Add(d.Delta(), 1), Dir: South}
	case West:
		return WallKey{Cell: c.Add(d.Delta(), 1), Dir: East}
	default:
		return WallKey{Cell: c, Dir: d}
	}
}

// Expansion is a set of walls opened by the ally that close again at RestoreAt.
type Expansion struct {
	Walls     []WallKey `json:"walls"`
	RestoreAt time.Time `json:"restore_at"`
}
