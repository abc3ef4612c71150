// Package cycle provides named cycles: fixed, ordered name tables whose
// elements are addressed by an index that wraps around the table size.
package cycle

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

// ErrInvalidName is returned when a name is not present in a table.
var ErrInvalidName = errors.New("invalid name")

// IsInvalidName checks if an error is an "invalid name" error.
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrInvalidName)
}

// =============================================================================
// Table
// =============================================================================

// Table is a fixed, ordered list of unique display names.
//
// Tables are created once at package level and shared. Two cycle values are
// only equal when they point at the same Table.
type Table struct {
	label  string
	names  []string
	lookup map[string]int
}

// NewTable creates a table from the given names. The label is used in
// error messages ("heaven stem", "earth branch", ...).
//
// It panics on an empty or duplicated name list.
func NewTable(label string, names ...string) *Table {
	if len(names) == 0 {
		panic(fmt.Sprintf("cycle: empty %s table", label))
	}

	lookup := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := lookup[name]; dup {
			panic(fmt.Sprintf("cycle: duplicate %s name %q", label, name))
		}
		lookup[name] = i
	}

	return &Table{
		label:  label,
		names:  append([]string(nil), names...),
		lookup: lookup,
	}
}

// Label returns the table label.
func (t *Table) Label() string {
	return t.label
}

// Size returns the number of names in the table.
func (t *Table) Size() int {
	return len(t.names)
}

// Names returns a copy of the table's names in order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// IndexOf returns the index of the given name.
// The match is exact and case-sensitive.
func (t *Table) IndexOf(name string) (int, error) {
	i, ok := t.lookup[name]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", t.label, name, ErrInvalidName)
	}
	return i, nil
}

// FromIndex returns the element at the given index. Any integer is accepted:
// negative or oversized indexes wrap around the table.
func (t *Table) FromIndex(index int) Cycle {
	return Cycle{table: t, index: Mod(index, len(t.names))}
}

// FromName returns the element with the given name.
func (t *Table) FromName(name string) (Cycle, error) {
	i, err := t.IndexOf(name)
	if err != nil {
		return Cycle{}, err
	}
	return Cycle{table: t, index: i}, nil
}

// =============================================================================
// Cycle
// =============================================================================

// Cycle is one element of a Table. It is an immutable value; comparing two
// cycles with == compares the table identity and the normalized index.
//
// The zero Cycle has no table and must not be used.
type Cycle struct {
	table *Table
	index int
}

// Table returns the table this element belongs to.
func (c Cycle) Table() *Table {
	return c.table
}

// Index returns the element's index in [0, size).
func (c Cycle) Index() int {
	return c.index
}

// Name returns the element's display name.
func (c Cycle) Name() string {
	return c.table.names[c.index]
}

// String implements fmt.Stringer.
func (c Cycle) String() string {
	return c.Name()
}

// Size returns the size of the element's table.
func (c Cycle) Size() int {
	return len(c.table.names)
}

// NextIndex returns the index n steps away, wrapped into the table.
func (c Cycle) NextIndex(n int) int {
	return Mod(c.index+n, len(c.table.names))
}

// Next returns the element n steps away. n may be negative or larger than
// the table; Next(a).Next(b) == Next(a+b).
func (c Cycle) Next(n int) Cycle {
	return Cycle{table: c.table, index: c.NextIndex(n)}
}

// Steps returns the forward distance from c to target, in [0, size).
// Both elements must belong to the same table.
func (c Cycle) Steps(target Cycle) int {
	return Mod(target.index-c.index, len(c.table.names))
}

// =============================================================================
// Arithmetic
// =============================================================================

// Mod returns a modulo m with the sign of m (floored modulo), so that
// Mod(-1, 12) == 11.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// FloorDiv returns a / b rounded toward negative infinity, so that
// FloorDiv(-1, 2) == -1. It is the division that pairs with Mod.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
