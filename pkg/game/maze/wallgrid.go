package maze

// WallGrid returns the renderer projection of the maze: a
// (2*Width+1) x (2*Height+1) grid indexed [px][py] where true is solid.
// Cell (x,y) sits at (2x+1, 2y+1). The result is cached until the next
// wall change and must not be modified by callers.
func (m *Maze) WallGrid() [][]bool {
	if m.wallGrid != nil {
		return m.wallGrid
	}
	gw, gh := m.GridSize()
	grid := make([][]bool, gw)
	for px := range grid {
		grid[px] = make([]bool, gh)
		for py := range grid[px] {
			grid[px][py] = true
		}
	}
	for _, row := range m.grid {
		for _, cell := range row {
			px, py := 2*cell.X+1, 2*cell.Y+1
			grid[px][py] = false
			if !cell.Walls.North {
				grid[px][py-1] = false
			}
			if !cell.Walls.South {
				grid[px][py+1] = false
			}
			if !cell.Walls.West {
				grid[px-1][py] = false
			}
			if !cell.Walls.East {
				grid[px+1][py] = false
			}
		}
	}
	m.wallGrid = grid
	return grid
}

// GridSize returns the dimensions of WallGrid.
func (m *Maze) GridSize() (int, int) {
	return 2*m.Width + 1, 2*m.Height + 1
}
