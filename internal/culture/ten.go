package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var tenTable = cycle.NewTable("ten", "甲子", "甲戌", "甲申", "甲午", "甲辰", "甲寅")

// Ten is one of the six xun (旬), the ten-day groups of the sixty cycle,
// named after the pillar that opens the group.
type Ten struct {
	c cycle.Cycle
}

// TenFromIndex returns the xun at the given index, wrapped mod 6.
func TenFromIndex(index int) Ten {
	return Ten{tenTable.FromIndex(index)}
}

// TenFromName returns the xun with the given name.
func TenFromName(name string) (Ten, error) {
	c, err := tenTable.FromName(name)
	if err != nil {
		return Ten{}, err
	}
	return Ten{c}, nil
}

func (t Ten) Index() int { return t.c.Index() }

func (t Ten) Name() string { return t.c.Name() }

func (t Ten) String() string { return t.c.Name() }

func (t Ten) Next(n int) Ten {
	return Ten{t.c.Next(n)}
}
