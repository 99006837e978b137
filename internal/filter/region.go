package filter

// Region is a rectangle of terminal cells. X, Y is the top-left cell.
type Region struct {
	X, Y int
	W, H int
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Region) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r translated by (dx, dy).
func (r Region) Offset(dx, dy int) Region {
	return Region{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
