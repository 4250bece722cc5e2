package grid

import "errors"

// ErrBadGlyph indicates a byte that does not encode any cell value.
var ErrBadGlyph = errors.New("grid: unrecognized cell glyph")

// Glyph returns the single-byte encoding of d used by the map codec:
// '-' for Gap, '.' for None, and the direction initial otherwise.
func (d Direction) Glyph() byte {
	switch d {
	case Gap:
		return '-'
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	case West:
		return 'W'
	default:
		return '.'
	}
}

// ParseGlyph inverts Glyph. Returns ErrBadGlyph for any other byte.
func ParseGlyph(b byte) (Direction, error) {
	switch b {
	case '-':
		return Gap, nil
	case '.':
		return None, nil
	case 'N':
		return North, nil
	case 'S':
		return South, nil
	case 'E':
		return East, nil
	case 'W':
		return West, nil
	default:
		return Gap, ErrBadGlyph
	}
}
