// Package movement validates hero and ally movement against maze
// connectivity and bounds.
package movement

import (
	"math/rand/v2"

	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// Maze is the view of the maze movement needs.
type Maze interface {
	InBounds(c types.Coord) bool
	CanMove(c types.Coord, d types.Direction) bool
}

// Step validates a single-tile move. The wall on the shared side must be open.
func Step(m Maze, from, to types.Coord) error {
	if from.Manhattan(to) != 1 {
		return types.Invalid(types.ReasonInvalidStep, "%s is not adjacent to %s", to, from)
	}
	if !m.InBounds(to) {
		return types.Invalid(types.ReasonOutOfBounds, "%s is out of bounds", to)
	}
	d, _ := types.DirectionBetween(from, to)
	if !m.CanMove(from, d) {
		return types.Invalid(types.ReasonBlocked, "wall %s of %s is closed", d, from)
	}
	return nil
}

// JumpTargets returns the in-bounds cells two or three tiles from origin
// along d. Walls are not considered.
func JumpTargets(m Maze, origin types.Coord, d types.Direction) []types.Coord {
	var out []types.Coord
	for dist := constants.JumpMinDistance; dist <= constants.JumpMaxDistance; dist++ {
		c := origin.Add(d.Delta(), dist)
		if m.InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}

// Jump picks a jump destination uniformly among JumpTargets.
func Jump(m Maze, origin types.Coord, d types.Direction, rng *rand.Rand) (types.Coord, int, error) {
	if d.Delta() == (types.Coord{}) {
		return origin, 0, types.Invalid(types.ReasonInvalidDirection, "unknown direction %q", d)
	}
	candidates := JumpTargets(m, origin, d)
	if len(candidates) == 0 {
		return origin, 0, types.Invalid(types.ReasonNoDestination, "no landing cell %s of %s", d, origin)
	}
	target := candidates[rng.IntN(len(candidates))]
	return target, origin.Manhattan(target), nil
}

// Throw picks a distance of two or three from the ally along d. Unlike
// Jump the throw never fails: an out-of-bounds landing is reported with
// inBounds false and is fatal to the hero.
func Throw(m Maze, ally types.Coord, d types.Direction, rng *rand.Rand) (target types.Coord, distance int, inBounds bool, err error) {
	if d.Delta() == (types.Coord{}) {
		return ally, 0, false, types.Invalid(types.ReasonInvalidDirection, "unknown direction %q", d)
	}
	span := constants.JumpMaxDistance - constants.JumpMinDistance + 1
	distance = constants.JumpMinDistance + rng.IntN(span)
	target = ally.Add(d.Delta(), distance)
	return target, distance, m.InBounds(target), nil
}

// BlinkTargets returns in-bounds cells within Manhattan distance 1..3 of hero.
func BlinkTargets(m Maze, hero types.Coord) []types.Coord {
	r := constants.BlinkMaxDistance
	var out []types.Coord
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			c := types.Coord{X: hero.X + dx, Y: hero.Y + dy}
			dist := hero.Manhattan(c)
			if dist == 0 || dist > r || !m.InBounds(c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// Blink picks a blink destination uniformly among BlinkTargets.
func Blink(m Maze, hero types.Coord, rng *rand.Rand) (types.Coord, error) {
	candidates := BlinkTargets(m, hero)
	if len(candidates) == 0 {
		return hero, types.Invalid(types.ReasonNoBlinkTarget, "no blink target near %s", hero)
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// InLiftReach reports whether hero and ally share a row or column within
// lift reach.
func InLiftReach(hero, ally types.Coord) bool {
	dx, dy := hero.X-ally.X, hero.Y-ally.Y
	if dy == 0 {
		return dx >= -constants.LiftReach && dx <= constants.LiftReach
	}
	if dx == 0 {
		return dy >= -constants.LiftReach && dy <= constants.LiftReach
	}
	return false
}
