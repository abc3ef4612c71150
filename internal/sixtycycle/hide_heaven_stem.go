package sixtycycle

import (
	"fmt"

	"github.com/zapponejosh/ganzhi/internal/culture"
)

// HideHeavenStem is a heaven stem hidden inside an earth branch (藏干),
// tagged with its role.
type HideHeavenStem struct {
	heavenStem HeavenStem
	typ        culture.HideHeavenStemType
}

// NewHideHeavenStem tags a stem with a hidden stem role.
func NewHideHeavenStem(stem HeavenStem, typ culture.HideHeavenStemType) HideHeavenStem {
	return HideHeavenStem{heavenStem: stem, typ: typ}
}

// HeavenStem returns the hidden stem.
func (h HideHeavenStem) HeavenStem() HeavenStem { return h.heavenStem }

// Type returns the role of the hidden stem.
func (h HideHeavenStem) Type() culture.HideHeavenStemType { return h.typ }

// Name returns the stem's name.
func (h HideHeavenStem) Name() string { return h.heavenStem.Name() }

func (h HideHeavenStem) String() string { return h.Name() }

// HideHeavenStemDay is a hidden stem governing a given day (人元司令分野)
// within a branch's rule period. DayIndex is zero-based.
//
// Which stem governs which day is decided by the caller; this type only
// carries the pair.
type HideHeavenStemDay struct {
	hideHeavenStem HideHeavenStem
	dayIndex       int
}

// NewHideHeavenStemDay pairs a hidden stem with a day index.
func NewHideHeavenStemDay(hide HideHeavenStem, dayIndex int) HideHeavenStemDay {
	return HideHeavenStemDay{hideHeavenStem: hide, dayIndex: dayIndex}
}

func (d HideHeavenStemDay) HideHeavenStem() HideHeavenStem { return d.hideHeavenStem }

func (d HideHeavenStemDay) DayIndex() int { return d.dayIndex }

// Name returns the stem name followed by its element, e.g. 甲木.
func (d HideHeavenStemDay) Name() string {
	stem := d.hideHeavenStem.HeavenStem()
	return stem.Name() + stem.Element().Name()
}

// String returns the name and the one-based day, e.g. 甲木第3天.
func (d HideHeavenStemDay) String() string {
	return fmt.Sprintf("%s第%d天", d.Name(), d.dayIndex+1)
}
