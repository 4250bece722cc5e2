package dungeon

import (
	"fmt"

	"github.com/katalvlaran/dungeonmap/grid"
)

// Cell states of the validation walk, in the usual three-color scheme.
const (
	unchecked = iota // not reached yet
	onPath           // on the parent chain currently being followed
	settled          // proven to reach the base
)

// Validate checks that the stored directions encode a single tree rooted at
// the base: the base cell stores grid.None, every room's parent chain
// reaches the base without a cycle or a dangling link, and every critical
// endpoint is a room. Wraps each defect in ErrMalformedGrid (ErrNotARoom
// for endpoint defects). Runs automatically in NewFromCells unless
// WithoutValidation is given; call it again after bulk cell mutation.
// Complexity: O(W×H) — each cell's chain is followed at most once.
func (m *Map) Validate() error {
	// 1. The root must carry no parent link.
	if m.at(m.base) != grid.None {
		return fmt.Errorf("%w: base cell %s stores %s", ErrMalformedGrid, m.base, m.at(m.base))
	}

	// 2. Follow every room's parent chain, memoizing settled cells so the
	// whole pass stays linear.
	states := make([]uint8, len(m.cells))
	states[m.base.Y*m.width+m.base.X] = settled
	path := make([]grid.Point, 0, 16)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := grid.Point{X: x, Y: y}
			if !m.at(p).IsCardinal() || states[y*m.width+x] != unchecked {
				continue
			}

			path = path[:0]
			cur := p
			for {
				i := cur.Y*m.width + cur.X
				if states[i] == settled {
					break
				}
				if states[i] == onPath {
					return fmt.Errorf("%w: parent cycle through %s", ErrMalformedGrid, cur)
				}
				states[i] = onPath
				path = append(path, cur)

				next := cur.Add(m.at(cur))
				if !m.InBounds(next) {
					return fmt.Errorf("%w: parent link at %s leaves the grid", ErrMalformedGrid, cur)
				}
				if next != m.base && !m.at(next).IsCardinal() {
					return fmt.Errorf("%w: dangling parent link at %s", ErrMalformedGrid, cur)
				}
				cur = next
			}
			for _, q := range path {
				states[q.Y*m.width+q.X] = settled
			}
		}
	}

	// 3. Endpoint set must stay a subset of the rooms.
	var epErr error
	m.critEnds.Each(func(p grid.Point) {
		if epErr == nil && !m.IsRoom(p) {
			epErr = fmt.Errorf("%w: critical endpoint %s", ErrNotARoom, p)
		}
	})

	return epErr
}
