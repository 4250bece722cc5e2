package render

import (
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungeonmap/dungeon"
	"github.com/katalvlaran/dungeonmap/grid"
)

// Cell icons shared by the plain and colored renderings.
const (
	IconBase = '■'
	IconBoss = '×'
	IconGap  = '░'
	IconBare = '·'
)

// connectors maps a RoomType side mask (N|S|E|W bits) to its box glyph.
var connectors = [16]rune{
	0:                                        IconBare,
	int(grid.RoomNorth):                      '╵',
	int(grid.RoomSouth):                      '╷',
	int(grid.RoomEast):                       '╶',
	int(grid.RoomWest):                       '╴',
	int(grid.RoomNorth | grid.RoomSouth):     '│',
	int(grid.RoomEast | grid.RoomWest):       '─',
	int(grid.RoomNorth | grid.RoomEast):      '└',
	int(grid.RoomNorth | grid.RoomWest):      '┘',
	int(grid.RoomSouth | grid.RoomEast):      '┌',
	int(grid.RoomSouth | grid.RoomWest):      '┐',
	int(grid.RoomNorth | grid.RoomSouth | grid.RoomEast):                 '├',
	int(grid.RoomNorth | grid.RoomSouth | grid.RoomWest):                 '┤',
	int(grid.RoomSouth | grid.RoomEast | grid.RoomWest):                  '┬',
	int(grid.RoomNorth | grid.RoomEast | grid.RoomWest):                  '┴',
	int(grid.RoomNorth | grid.RoomSouth | grid.RoomEast | grid.RoomWest): '┼',
}

// cellRune picks the rune for one cell. Base and boss take precedence over
// the connector derived from the side mask.
func cellRune(m *dungeon.Map, p grid.Point) rune {
	switch {
	case p == m.Base():
		return IconBase
	case p == m.Boss() && m.IsRoom(p):
		return IconBoss
	}
	rt := m.RoomType(p)
	switch {
	case rt == grid.RoomTypeGap:
		return IconGap
	case rt <= grid.RoomTypeNone:
		return IconBare
	default:
		return connectors[int(rt)]
	}
}

// Grid renders m as a multi-line string, one rune per cell, rows separated
// by newlines. Dependency-free output, suitable for logs and tests.
func Grid(m *dungeon.Map) string {
	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width(); x++ {
			b.WriteRune(cellRune(m, grid.Point{X: x, Y: y}))
		}
	}

	return b.String()
}

// Renderer renders maps with ANSI styles for interactive terminals.
type Renderer struct {
	colorBase    color.Style
	colorBoss    color.Style
	colorCrit    color.Style
	colorDeadEnd color.Style
	colorRoom    color.Style
	colorGap     color.Style
}

// New returns a Renderer with the default style table.
func New() *Renderer {
	return &Renderer{
		colorBase:    color.Style{color.FgGreen, color.OpBold},
		colorBoss:    color.Style{color.FgRed, color.OpBold},
		colorCrit:    color.Style{color.FgYellow, color.OpBold},
		colorDeadEnd: color.Style{color.FgMagenta},
		colorRoom:    color.Style{color.FgBlue},
		colorGap:     color.Style{color.FgGray},
	}
}

// Colored renders m like Grid with per-cell styles: base green, boss red,
// critical-path rooms yellow, dead ends magenta, other rooms blue, gaps
// gray. Returns the error of the underlying critical-room walk.
func (r *Renderer) Colored(m *dungeon.Map) (string, error) {
	critRooms, err := m.CritRooms()
	if err != nil {
		return "", err
	}
	crit := mapset.New[grid.Point]()
	for _, p := range critRooms {
		crit.Put(p)
	}

	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			b.WriteString(r.style(m, crit, p).Sprint(string(cellRune(m, p))))
		}
	}

	return b.String(), nil
}

// style picks the color.Style for one cell.
func (r *Renderer) style(m *dungeon.Map, crit mapset.Set[grid.Point], p grid.Point) color.Style {
	switch {
	case p == m.Base():
		return r.colorBase
	case p == m.Boss() && m.IsRoom(p):
		return r.colorBoss
	case crit.Has(p):
		return r.colorCrit
	case m.IsDeadEnd(p):
		return r.colorDeadEnd
	case m.IsRoom(p):
		return r.colorRoom
	default:
		return r.colorGap
	}
}
