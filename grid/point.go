package grid

import (
	"errors"
	"sort"
	"strconv"
)

// ErrBadNotation indicates a coordinate string that is not valid
// chess-style notation (column letters followed by a 1-based row number).
var ErrBadNotation = errors.New("grid: bad coordinate notation")

// Point is a cell coordinate. X grows eastward, Y grows southward, and the
// origin is the top-left cell of the grid.
type Point struct {
	X, Y int
}

// Add returns the point one step from p in direction d.
// Sentinel directions return p unchanged.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()

	return Point{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies within a width×height grid.
func (p Point) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Less is the canonical ordering over points: row-major, Y before X.
// Every deterministic point sequence in this module (grid scans, endpoint
// snapshots, serialization) is ordered by this comparator.
func Less(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// SortPoints sorts pts in place into the canonical order. O(n log n).
func SortPoints(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return Less(pts[i], pts[j]) })
}

// String renders p in chess-style notation: bijective base-26 column
// letters for X ("a".."z", "aa", ...) and the 1-based row number for Y.
// Negative coordinates render as "?" since they name no cell.
func (p Point) String() string {
	if p.X < 0 || p.Y < 0 {
		return "?"
	}
	// Bijective base-26: 0→a, 25→z, 26→aa.
	var col [4]byte
	i := len(col)
	for n := p.X + 1; n > 0; n /= 26 {
		n--
		i--
		col[i] = byte('a' + n%26)
	}

	return string(col[i:]) + strconv.Itoa(p.Y+1)
}

// ParsePoint inverts Point.String. Returns ErrBadNotation when s has no
// letter prefix, no digit suffix, or a row number below 1.
func ParsePoint(s string) (Point, error) {
	i := 0
	x := 0
	for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		x = x*26 + int(s[i]-'a') + 1
		i++
	}
	if i == 0 || i == len(s) {
		return Point{}, ErrBadNotation
	}
	row, err := strconv.Atoi(s[i:])
	if err != nil || row < 1 {
		return Point{}, ErrBadNotation
	}

	return Point{X: x - 1, Y: row - 1}, nil
}
