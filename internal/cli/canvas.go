package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/layout"
)

// renderCanvas draws placements as bordered boxes on a cols-by-rows character
// grid, scaled down from the logical screen. Frames that share an edge on
// screen map to adjacent cell ranges, so borders touch without overlapping.
// Each box is labelled with its 1-based position in tiling order.
func renderCanvas(placements []layout.Placement, screen geometry.Rect, cols, rows int) string {
	if cols < 2 || rows < 2 || screen.Empty() {
		return ""
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for i, p := range placements {
		f := p.Frame
		// Degenerate ratios produce zero-area frames on the screen edge;
		// they have no cells to draw.
		if f.Empty() {
			continue
		}
		x0 := clampCell((f.X-screen.X)*cols/screen.W, cols)
		x1 := clampCell((f.X+f.W-screen.X)*cols/screen.W-1, cols)
		y0 := clampCell((f.Y-screen.Y)*rows/screen.H, rows)
		y1 := clampCell((f.Y+f.H-screen.Y)*rows/screen.H-1, rows)
		if x1 < x0 {
			x1 = x0
		}
		if y1 < y0 {
			y1 = y0
		}

		drawBox(grid, x0, y0, x1, y1)
		drawLabel(grid, x0, y0, x1, y1, strconv.Itoa(i+1))
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// clampCell keeps a cell index within [0, n).
func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n-1 {
		return n - 1
	}
	return v
}

func drawBox(grid [][]rune, x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		grid[y0][x] = '─'
		grid[y1][x] = '─'
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = '│'
		grid[y][x1] = '│'
	}
	grid[y0][x0] = '┌'
	grid[y0][x1] = '┐'
	grid[y1][x0] = '└'
	grid[y1][x1] = '┘'
}

// renderPlacementTable lists placements with their frames in tiling order.
func renderPlacementTable(placements []layout.Placement) string {
	rows := make([][]string, len(placements))
	for i, p := range placements {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(int(p.Window)), p.Frame.String()}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Window", "Frame").
		Rows(rows...).
		Render()
}

// drawLabel writes the label inside the box when there is interior room.
func drawLabel(grid [][]rune, x0, y0, x1, y1 int, label string) {
	if y1-y0 < 2 || x1-x0-1 < len(label) {
		return
	}
	y := (y0 + y1) / 2
	x := (x0 + x1 + 1 - len(label)) / 2
	for i, r := range label {
		grid[y][x+i] = r
	}
}
