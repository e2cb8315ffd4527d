package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/scoring"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// RadarAxis is one spoke of the radar chart. Value is the performance
// fraction in [0, 1] (1 = no risk observed), plotted outward from the
// center. Level colors the axis marker.
type RadarAxis struct {
	Label string
	Value float64
	Level scoring.RiskLevel
}

// Radar renders a four-axis radar chart on a character grid. The
// vertical radius is Radius rows; horizontal distances are doubled to
// compensate for character cell aspect ratio.
type Radar struct {
	Axes   [4]RadarAxis // top, right, bottom, left
	Radius int
}

// NewRadar creates a radar chart with the given vertical radius.
func NewRadar(axes [4]RadarAxis, radius int) Radar {
	if radius < 2 {
		radius = 2
	}
	return Radar{Axes: axes, Radius: radius}
}

// cell kinds, in paint-over order: a vertex wins over an edge, an edge
// over an axis guide.
const (
	cellEmpty = iota
	cellAxis
	cellEdge
	cellVertex
)

type radarGrid struct {
	w, h  int
	kind  []int
	ch    []rune
	level []scoring.RiskLevel
}

func newRadarGrid(w, h int) *radarGrid {
	return &radarGrid{
		w:     w,
		h:     h,
		kind:  make([]int, w*h),
		ch:    make([]rune, w*h),
		level: make([]scoring.RiskLevel, w*h),
	}
}

func (g *radarGrid) set(x, y, kind int, ch rune) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	i := y*g.w + x
	if kind < g.kind[i] {
		return
	}
	g.kind[i] = kind
	g.ch[i] = ch
}

func (g *radarGrid) setVertex(x, y int, ch rune, level scoring.RiskLevel) {
	g.set(x, y, cellVertex, ch)
	if x >= 0 && x < g.w && y >= 0 && y < g.h {
		g.level[y*g.w+x] = level
	}
}

// line draws a Bresenham line between two grid points.
func (g *radarGrid) line(x0, y0, x1, y1, kind int, ch rune) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		g.set(x0, y0, kind, ch)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// vertexAt returns the grid position of an axis vertex for value v.
// Axis order is top, right, bottom, left.
func (r Radar) vertexAt(axis int, v float64) (int, int) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	cy := r.Radius
	cx := 2 * r.Radius
	rv := int(math.Round(v * float64(r.Radius)))
	rh := int(math.Round(v * float64(2*r.Radius)))

	switch axis {
	case 0:
		return cx, cy - rv
	case 1:
		return cx + rh, cy
	case 2:
		return cx, cy + rv
	default:
		return cx - rh, cy
	}
}

// View renders the chart with axis labels above, beside and below it.
func (r Radar) View() string {
	g := newRadarGrid(4*r.Radius+1, 2*r.Radius+1)

	// Axis guides out to full extent.
	cx, cy := 2*r.Radius, r.Radius
	for axis := 0; axis < 4; axis++ {
		ex, ey := r.vertexAt(axis, 1)
		g.line(cx, cy, ex, ey, cellAxis, '·')
	}

	// Polygon edges between consecutive vertices.
	var vx, vy [4]int
	for axis := 0; axis < 4; axis++ {
		vx[axis], vy[axis] = r.vertexAt(axis, r.Axes[axis].Value)
	}
	for axis := 0; axis < 4; axis++ {
		next := (axis + 1) % 4
		g.line(vx[axis], vy[axis], vx[next], vy[next], cellEdge, '•')
	}

	// Vertices, colored by level.
	for axis := 0; axis < 4; axis++ {
		icon := []rune(theme.RiskIcon(r.Axes[axis].Level))[0]
		g.setVertex(vx[axis], vy[axis], icon, r.Axes[axis].Level)
	}

	axisStyle := lipgloss.NewStyle().Foreground(theme.Border)
	edgeStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	var rows []string
	for y := 0; y < g.h; y++ {
		var b strings.Builder
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			switch g.kind[i] {
			case cellAxis:
				b.WriteString(axisStyle.Render(string(g.ch[i])))
			case cellEdge:
				b.WriteString(edgeStyle.Render(string(g.ch[i])))
			case cellVertex:
				b.WriteString(theme.RiskText(g.level[i]).Render(string(g.ch[i])))
			default:
				b.WriteRune(' ')
			}
		}
		rows = append(rows, b.String())
	}

	chartWidth := g.w
	chart := strings.Join(rows, "\n")

	// Labels: top and bottom centered, left and right flanking the
	// middle row.
	top := r.axisLabel(0)
	bottom := r.axisLabel(2)
	left := r.axisLabel(3)
	right := r.axisLabel(1)

	lines := strings.Split(chart, "\n")
	mid := r.Radius
	leftPad := lipgloss.Width(left) + 1
	for i := range lines {
		if i == mid {
			lines[i] = left + " " + lines[i] + " " + right
		} else {
			lines[i] = strings.Repeat(" ", leftPad) + lines[i]
		}
	}

	center := func(s string) string {
		pad := (chartWidth-lipgloss.Width(s))/2 + leftPad
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + s
	}

	return center(top) + "\n" + strings.Join(lines, "\n") + "\n" + center(bottom)
}

// axisLabel renders "<icon> <label>" with the icon colored by level.
func (r Radar) axisLabel(axis int) string {
	a := r.Axes[axis]
	return theme.RiskText(a.Level).Render(theme.RiskIcon(a.Level)) +
		" " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Label)
}
