package grid

// Direction is the value stored in a single map cell. Cardinal values point
// from a room toward its parent room; the two sentinels mark non-link cells.
type Direction int

const (
	// None marks either the base cell (the root stores no parent link) or a
	// cell that has not been visited.
	None Direction = iota
	// Gap marks a cell that is explicitly not part of the explored tree.
	Gap
	// North: parent lies one cell up (decreasing Y).
	North
	// South: parent lies one cell down (increasing Y).
	South
	// East: parent lies one cell right (increasing X).
	East
	// West: parent lies one cell left (decreasing X).
	West
)

// RoomType is a bit mask over the four sides of a room; a set bit means that
// side connects to a neighboring room. The two non-positive values classify
// cells that are not through-rooms at all.
type RoomType int

const (
	// RoomTypeGap classifies a cell outside the tree.
	RoomTypeGap RoomType = -1
	// RoomTypeNone classifies a cell with no link information.
	RoomTypeNone RoomType = 0
)

const (
	// RoomNorth is set when the north side connects to a room.
	RoomNorth RoomType = 1 << iota
	// RoomSouth is set when the south side connects to a room.
	RoomSouth
	// RoomEast is set when the east side connects to a room.
	RoomEast
	// RoomWest is set when the west side connects to a room.
	RoomWest
)

// Has reports whether every side set in side is also set in rt.
func (rt RoomType) Has(side RoomType) bool {
	return side > 0 && rt&side == side
}

// Directions returns the four cardinal directions in the fixed scan order
// North, South, East, West. Neighbor scans iterate this slice so that
// derived sequences (children, traversal order) are deterministic.
func Directions() [4]Direction {
	return [4]Direction{North, South, East, West}
}

// IsCardinal reports whether d is one of the four cardinal directions.
func (d Direction) IsCardinal() bool {
	return d >= North && d <= West
}

// Flip returns the opposite cardinal direction.
// Sentinel values are returned unchanged.
func (d Direction) Flip() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the coordinate offset of one step in direction d.
// Sentinel values yield (0,0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// RoomType maps d to the side mask of the single side facing d.
// None maps to RoomTypeNone and Gap to RoomTypeGap, so the result is
// positive exactly when d is cardinal.
func (d Direction) RoomType() RoomType {
	switch d {
	case North:
		return RoomNorth
	case South:
		return RoomSouth
	case East:
		return RoomEast
	case West:
		return RoomWest
	case Gap:
		return RoomTypeGap
	default:
		return RoomTypeNone
	}
}

// String returns the direction name, primarily for test failure messages.
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Gap:
		return "Gap"
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Invalid"
	}
}
