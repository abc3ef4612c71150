package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var zodiacTable = cycle.NewTable("zodiac", "鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪")

// Zodiac is one of the twelve animals, rat through pig.
type Zodiac struct {
	c cycle.Cycle
}

// ZodiacFromIndex returns the animal at the given index, wrapped mod 12.
func ZodiacFromIndex(index int) Zodiac {
	return Zodiac{zodiacTable.FromIndex(index)}
}

// ZodiacFromName returns the animal with the given name.
func ZodiacFromName(name string) (Zodiac, error) {
	c, err := zodiacTable.FromName(name)
	if err != nil {
		return Zodiac{}, err
	}
	return Zodiac{c}, nil
}

func (z Zodiac) Index() int { return z.c.Index() }

func (z Zodiac) Name() string { return z.c.Name() }

func (z Zodiac) String() string { return z.c.Name() }

func (z Zodiac) Next(n int) Zodiac {
	return Zodiac{z.c.Next(n)}
}
