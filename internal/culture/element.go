package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var elementTable = cycle.NewTable("element", "木", "火", "土", "金", "水")

// Element is one of the five phases, in generating order:
// wood, fire, earth, metal, water.
type Element struct {
	c cycle.Cycle
}

// Element indexes.
const (
	Wood = iota
	Fire
	Earth
	Metal
	Water
)

// ElementFromIndex returns the element at the given index, wrapped mod 5.
func ElementFromIndex(index int) Element {
	return Element{elementTable.FromIndex(index)}
}

// ElementFromName returns the element with the given name.
func ElementFromName(name string) (Element, error) {
	c, err := elementTable.FromName(name)
	if err != nil {
		return Element{}, err
	}
	return Element{c}, nil
}

func (e Element) Index() int { return e.c.Index() }

func (e Element) Name() string { return e.c.Name() }

func (e Element) String() string { return e.c.Name() }

// Next returns the element n steps along the generating order.
func (e Element) Next(n int) Element {
	return Element{e.c.Next(n)}
}

// Reinforce returns the element this one generates (wood generates fire).
func (e Element) Reinforce() Element {
	return e.Next(1)
}

// Restrain returns the element this one overcomes (wood overcomes earth).
func (e Element) Restrain() Element {
	return e.Next(2)
}

// Reinforced returns the element that generates this one.
func (e Element) Reinforced() Element {
	return e.Next(-1)
}

// Restrained returns the element that overcomes this one.
func (e Element) Restrained() Element {
	return e.Next(-2)
}

// Direction returns the direction associated with the element:
// wood east, fire south, earth centre, metal west, water north.
func (e Element) Direction() Direction {
	return DirectionFromIndex([]int{2, 8, 4, 6, 0}[e.Index()])
}
