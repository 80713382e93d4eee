package maze

import (
	"fmt"
	"math/rand/v2"

	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// NewRand returns the generator's PRNG for seed. The same seed always
// yields the same stream.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x6d6f72616c6d617a))
}

// Generate carves a width x height maze with an iterative randomized
// depth-first backtracker from (0,0) and flags decision nodes.
func Generate(width, height int, seed int64) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid maze size %dx%d", width, height)
	}
	rng := NewRand(seed)
	m := newMaze(width, height, seed)
	m.carve(rng)
	m.markDecisionNodes(rng)
	m.Start = types.Coord{X: 0, Y: 0}
	return m, nil
}

func (m *Maze) carve(rng *rand.Rand) {
	visited := make([][]bool, m.Height)
	for y := range visited {
		visited[y] = make([]bool, m.Width)
	}

	start := types.Coord{X: 0, Y: 0}
	visited[start.Y][start.X] = true
	stack := []types.Coord{start}
	candidates := make([]types.Direction, 0, 4)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range types.Directions {
			n := current.Add(d.Delta(), 1)
			if m.InBounds(n) && !visited[n.Y][n.X] {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.IntN(len(candidates))]
		next := current.Add(d.Delta(), 1)
		m.grid[current.Y][current.X].Walls.set(d, false)
		m.grid[next.Y][next.X].Walls.set(d.Opposite(), false)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}
}

func (m *Maze) markDecisionNodes(rng *rand.Rand) {
	marked := 0
	for _, row := range m.grid {
		for _, cell := range row {
			if cell.Walls.Openings() >= 3 && rng.Float64() < constants.DecisionNodeProbability {
				cell.DecisionNode = true
				marked++
			}
		}
	}
	if marked >= constants.MinDecisionNodes {
		return
	}

	// Corridors first, then anything left for mazes too small to have enough corridors.
	for _, minOpenings := range []int{2, 0} {
		var pool []*Cell
		for _, row := range m.grid {
			for _, cell := range row {
				if !cell.DecisionNode && cell.Walls.Openings() >= minOpenings {
					pool = append(pool, cell)
				}
			}
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for _, cell := range pool {
			if marked >= constants.MinDecisionNodes {
				return
			}
			cell.DecisionNode = true
			marked++
		}
	}
}
