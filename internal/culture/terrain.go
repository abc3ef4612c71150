package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var terrainTable = cycle.NewTable("terrain",
	"长生", "沐浴", "冠带", "临官", "帝旺", "衰", "病", "死", "墓", "绝", "胎", "养")

// Terrain is one of the twelve life stages (长生十二神), birth through nurture.
type Terrain struct {
	c cycle.Cycle
}

// TerrainFromIndex returns the life stage at the given index, wrapped mod 12.
func TerrainFromIndex(index int) Terrain {
	return Terrain{terrainTable.FromIndex(index)}
}

// TerrainFromName returns the life stage with the given name.
func TerrainFromName(name string) (Terrain, error) {
	c, err := terrainTable.FromName(name)
	if err != nil {
		return Terrain{}, err
	}
	return Terrain{c}, nil
}

func (t Terrain) Index() int { return t.c.Index() }

func (t Terrain) Name() string { return t.c.Name() }

func (t Terrain) String() string { return t.c.Name() }

func (t Terrain) Next(n int) Terrain {
	return Terrain{t.c.Next(n)}
}
