package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

// Directions are listed in Luo Shu order: 坎 坤 震 巽 中 乾 兑 艮 离.
var directionTable = cycle.NewTable("direction", "北", "西南", "东", "东南", "中", "西北", "西", "东北", "南")

// Direction is one of the eight compass points or the centre.
type Direction struct {
	c cycle.Cycle
}

// Direction indexes.
const (
	North = iota
	SouthWest
	East
	SouthEast
	Centre
	NorthWest
	West
	NorthEast
	South
)

// DirectionFromIndex returns the direction at the given index, wrapped mod 9.
func DirectionFromIndex(index int) Direction {
	return Direction{directionTable.FromIndex(index)}
}

// DirectionFromName returns the direction with the given name.
func DirectionFromName(name string) (Direction, error) {
	c, err := directionTable.FromName(name)
	if err != nil {
		return Direction{}, err
	}
	return Direction{c}, nil
}

func (d Direction) Index() int { return d.c.Index() }

func (d Direction) Name() string { return d.c.Name() }

func (d Direction) String() string { return d.c.Name() }

// Next returns the direction n steps along the Luo Shu order.
func (d Direction) Next(n int) Direction {
	return Direction{d.c.Next(n)}
}
