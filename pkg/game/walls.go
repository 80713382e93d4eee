package game

import (
	"sort"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
)

// WallOp is one validated wall mutation.
type WallOp struct {
	Cell  types.Coord
	Dir   types.Direction
	Close bool
}

// ParseWallMutations validates every mutation before any is applied.
func ParseWallMutations(in []messages.WallMutation, bounds func(types.Coord) bool) ([]WallOp, error) {
	ops := make([]WallOp, 0, len(in))
	for i, m := range in {
		d, ok := types.ParseDirection(m.Direction)
		if !ok {
			return nil, types.Invalid(types.ReasonInvalidMutation, "operation %d: invalid direction %q", i, m.Direction)
		}
		var closed bool
		switch m.Action {
		case "open":
		case "close":
			closed = true
		default:
			return nil, types.Invalid(types.ReasonInvalidMutation, "operation %d: invalid action %q", i, m.Action)
		}
		c := types.Coord{X: m.X, Y: m.Y}
		if !bounds(c) {
			return nil, types.Invalid(types.ReasonOutOfBounds, "operation %d: %s is out of bounds", i, c)
		}
		ops = append(ops, WallOp{Cell: c, Dir: d, Close: closed})
	}
	return ops, nil
}

// setWall changes one wall and records it as an override. It reports
// whether the wall changed.
func (c *SessionController) setWall(cell types.Coord, d types.Direction, closed bool) bool {
	changed, err := c.maze.SetWall(cell, d, closed)
	if err != nil {
		c.logger.Debug("Ignoring wall change at %s %s: %v", cell, d, err)
		return false
	}
	if changed {
		c.state.WallOverrides[types.CanonicalWall(cell, d)] = closed
	}
	return changed
}

// closeExpansions closes walls whose expansion window has lapsed.
func (c *SessionController) closeExpansions(now time.Time) {
	s := c.state
	kept := s.Expansions[:0]
	for _, e := range s.Expansions {
		if now.Before(e.RestoreAt) {
			kept = append(kept, e)
			continue
		}
		for _, w := range e.Walls {
			c.setWall(w.Cell, w.Dir, true)
		}
	}
	s.Expansions = kept
}

// closedInteriorWalls lists the closed walls of p shared with an in-bounds
// neighbor, in direction order.
func (c *SessionController) closedInteriorWalls(p types.Coord) []types.WallKey {
	var out []types.WallKey
	for _, d := range types.Directions {
		if !c.maze.InBounds(p.Add(d.Delta(), 1)) || !c.maze.WallClosed(p, d) {
			continue
		}
		out = append(out, types.CanonicalWall(p, d))
	}
	return out
}

func sortedWallKeys(m map[types.WallKey]bool) []types.WallKey {
	keys := make([]types.WallKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Cell != keys[j].Cell {
			return keys[i].Cell.Less(keys[j].Cell)
		}
		return keys[i].Dir < keys[j].Dir
	})
	return keys
}
