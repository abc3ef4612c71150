package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var tenStarTable = cycle.NewTable("ten star",
	"比肩", "劫财", "食神", "伤官", "偏财", "正财", "七杀", "正官", "偏印", "正印")

// TenStar is one of the ten gods (十神): the relation of another stem to a
// day master, paired by polarity.
//
//	same as me:      比肩 劫财
//	I generate:      食神 伤官
//	I overcome:      偏财 正财
//	overcomes me:    七杀 正官
//	generates me:    偏印 正印
type TenStar struct {
	c cycle.Cycle
}

// TenStarFromIndex returns the ten star at the given index, wrapped mod 10.
func TenStarFromIndex(index int) TenStar {
	return TenStar{tenStarTable.FromIndex(index)}
}

// TenStarFromName returns the ten star with the given name.
func TenStarFromName(name string) (TenStar, error) {
	c, err := tenStarTable.FromName(name)
	if err != nil {
		return TenStar{}, err
	}
	return TenStar{c}, nil
}

func (s TenStar) Index() int { return s.c.Index() }

func (s TenStar) Name() string { return s.c.Name() }

func (s TenStar) String() string { return s.c.Name() }

func (s TenStar) Next(n int) TenStar {
	return TenStar{s.c.Next(n)}
}
