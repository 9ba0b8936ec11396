package render

import "github.com/naka-gawa/github-badges/internal/domain"

// GridLayout is the geometry of the contribution grid.
type GridLayout struct {
	Cell   int
	Gap    int
	Margin int // on each side
}

// DefaultGrid is the layout used by the heatmap and the snake.
var DefaultGrid = GridLayout{Cell: 10, Gap: 3, Margin: 24}

func (g GridLayout) pitch() int {
	return g.Cell + g.Gap
}

// Width is the heatmap canvas width for the given number of weeks.
func (g GridLayout) Width(weeks int) int {
	return weeks*g.pitch() + 2*g.Margin
}

// Height is the heatmap canvas height. It does not depend on the data.
func (g GridLayout) Height() int {
	return domain.DaysPerWeek*g.pitch() + 2*g.Margin
}

// CellOrigin is the top-left corner of the cell for week w, day d.
func (g GridLayout) CellOrigin(w, d int) (x, y int) {
	return g.Margin + w*g.pitch(), g.Margin + d*g.pitch()
}

// CellCenter is the centre of the cell for week w, day d.
func (g GridLayout) CellCenter(w, d int) (x, y float64) {
	ox, oy := g.CellOrigin(w, d)
	half := float64(g.Cell) / 2
	return float64(ox) + half, float64(oy) + half
}
