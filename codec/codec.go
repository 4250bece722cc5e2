package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dungeonmap/dungeon"
	"github.com/katalvlaran/dungeonmap/grid"
)

// Sentinel errors for map encoding and decoding.
var (
	// ErrBadFormat indicates an encoded map with too few fields.
	ErrBadFormat = errors.New("codec: malformed map encoding")
	// ErrBadDimension indicates an unparsable or non-positive dimension.
	ErrBadDimension = errors.New("codec: bad grid dimension")
	// ErrBadGlyph indicates a cell byte outside the glyph alphabet or a row
	// block not matching the declared dimensions.
	ErrBadGlyph = errors.New("codec: bad grid rows")
	// ErrBadCoordinate indicates an unparsable or out-of-grid coordinate.
	ErrBadCoordinate = errors.New("codec: bad coordinate")
)

// Encode renders m in the canonical single-line form. Endpoints are listed
// in canonical order with the boss excluded. Complexity: O(W×H).
func Encode(m *dungeon.Map) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(m.Width()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(m.Height()))
	b.WriteByte(' ')

	cells := m.Cells()
	for y := 0; y < m.Height(); y++ {
		if y > 0 {
			b.WriteByte('/')
		}
		for x := 0; x < m.Width(); x++ {
			b.WriteByte(cells[y*m.Width()+x].Glyph())
		}
	}

	b.WriteByte(' ')
	b.WriteString(m.Base().String())
	b.WriteByte(' ')
	b.WriteString(m.Boss().String())
	for _, p := range m.CritEndpoints() {
		if p == m.Boss() {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(p.String())
	}

	return b.String()
}

// Decode parses the canonical form back into a map, running the full
// structural validation of dungeon.NewFromCells. Complexity: O(W×H).
func Decode(s string) (*dungeon.Map, error) {
	fields := strings.Fields(s)
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: %d fields, want at least 5", ErrBadFormat, len(fields))
	}

	// 1. Dimensions.
	width, err := strconv.Atoi(fields[0])
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("%w: width %q", ErrBadDimension, fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("%w: height %q", ErrBadDimension, fields[1])
	}

	// 2. Row glyphs.
	rows := strings.Split(fields[2], "/")
	if len(rows) != height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadGlyph, len(rows), height)
	}
	cells := make([]grid.Direction, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGlyph, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			d, glyphErr := grid.ParseGlyph(row[x])
			if glyphErr != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q", ErrBadGlyph, y, x, row[x])
			}
			cells = append(cells, d)
		}
	}

	// 3. Anchor points and endpoints.
	base, err := parseOnGrid(fields[3], width, height)
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	boss, err := parseOnGrid(fields[4], width, height)
	if err != nil {
		return nil, fmt.Errorf("boss: %w", err)
	}
	endpoints := make([]grid.Point, 0, len(fields)-5)
	for _, f := range fields[5:] {
		p, epErr := parseOnGrid(f, width, height)
		if epErr != nil {
			return nil, fmt.Errorf("endpoint: %w", epErr)
		}
		endpoints = append(endpoints, p)
	}

	return dungeon.NewFromCells(width, height, cells,
		dungeon.WithBase(base),
		dungeon.WithBoss(boss),
		dungeon.WithCritEndpoints(endpoints...),
	)
}

// parseOnGrid parses chess-style notation and bounds-checks the result.
func parseOnGrid(s string, width, height int) (grid.Point, error) {
	p, err := grid.ParsePoint(s)
	if err != nil || !p.InBounds(width, height) {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}

	return p, nil
}
