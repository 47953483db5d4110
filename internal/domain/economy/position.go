package economy

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RoomSize is the width and height of one room in tiles.
const RoomSize = 50

// Position is a coordinate within a named room.
type Position struct {
	X        int    `json:"x" yaml:"x"`
	Y        int    `json:"y" yaml:"y"`
	RoomName string `json:"roomName" yaml:"room"`
}

var roomNameRe = regexp.MustCompile(`^([WE])(\d+)([NS])(\d+)$`)

// ParseRoomName decodes a room name like "W12N34" into signed room
// coordinates. West and north rooms map to the negative half-planes, so
// W0N0, E0N0, W0S0 and E0S0 form the four rooms around the origin.
func ParseRoomName(name string) (x, y int, err error) {
	m := roomNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid room name: %q", name)
	}

	x, _ = strconv.Atoi(m[2])
	if m[1] == "W" {
		x = -x - 1
	}
	y, _ = strconv.Atoi(m[4])
	if m[3] == "N" {
		y = -y - 1
	}
	return x, y, nil
}

// Global returns the position's coordinates on the world-wide tile grid,
// combining the room coordinate with the intra-room offset.
func (p Position) Global() (x, y int, err error) {
	rx, ry, err := ParseRoomName(p.RoomName)
	if err != nil {
		return 0, 0, err
	}
	return rx*RoomSize + p.X, ry*RoomSize + p.Y, nil
}

// Distance is the Manhattan distance between two positions over the global
// tile grid. Positions in unparsable rooms are unreachable (+Inf).
func Distance(a, b Position) float64 {
	ax, ay, err := a.Global()
	if err != nil {
		return math.Inf(1)
	}
	bx, by, err := b.Global()
	if err != nil {
		return math.Inf(1)
	}
	return math.Abs(float64(ax-bx)) + math.Abs(float64(ay-by))
}

func (p Position) String() string {
	return fmt.Sprintf("%s[%d,%d]", p.RoomName, p.X, p.Y)
}
