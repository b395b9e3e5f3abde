package life

// Cell identifies a grid position. Cells with equal coordinates are the
// same cell; there is no identity beyond the coordinate pair.
type Cell struct {
	X, Y int
}

// Wrap maps arbitrary integer coordinates onto a w*h torus. Each axis
// wraps independently using true mathematical modulo, so Wrap(-1, 0, w, h)
// lands on column w-1 rather than -1.
func Wrap(x, y, w, h int) (int, int) {
	x = (x%w + w) % w
	y = (y%h + h) % h
	return x, y
}

// WrapCell is Wrap lifted to a Cell value.
func WrapCell(c Cell, w, h int) Cell {
	x, y := Wrap(c.X, c.Y, w, h)
	return Cell{X: x, Y: y}
}
