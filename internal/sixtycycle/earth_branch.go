package sixtycycle

import (
	"github.com/zapponejosh/ganzhi/internal/culture"
	"github.com/zapponejosh/ganzhi/internal/cycle"
)

var earthBranchTable = cycle.NewTable("earth branch", "子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥")

// noStem marks an absent hidden stem. It never leaves this file.
const noStem = -1

var (
	branchElements = []int{4, 2, 0, 0, 2, 1, 1, 2, 3, 3, 2, 4}

	hideHeavenStemMain     = []int{9, 5, 0, 1, 4, 2, 3, 5, 6, 7, 4, 8}
	hideHeavenStemMiddle   = []int{noStem, 9, 2, noStem, 1, 6, 5, 3, 8, noStem, 7, 0}
	hideHeavenStemResidual = []int{noStem, 7, 4, noStem, 9, 4, noStem, 1, 4, noStem, 3, noStem}

	branchDirections = []int{0, 4, 2, 2, 4, 8, 8, 4, 6, 6, 4, 0}

	// 巳酉丑煞东，亥卯未煞西，申子辰煞南，寅午戌煞北 (index % 4)
	ominousDirections = []int{8, 2, 0, 6}

	// 子丑土 寅亥木 卯戌火 辰酉金 巳申水 午未土
	branchCombineElements = []int{2, 2, 0, 1, 3, 4, 2, 2, 4, 3, 1, 0}
)

// EarthBranch is one of the twelve earth branches (地支), 子 through 亥.
type EarthBranch struct {
	c cycle.Cycle
}

// EarthBranchFromIndex returns the branch at the given index, wrapped mod 12.
func EarthBranchFromIndex(index int) EarthBranch {
	return EarthBranch{earthBranchTable.FromIndex(index)}
}

// EarthBranchFromName returns the branch with the given name.
func EarthBranchFromName(name string) (EarthBranch, error) {
	c, err := earthBranchTable.FromName(name)
	if err != nil {
		return EarthBranch{}, err
	}
	return EarthBranch{c}, nil
}

// EarthBranchNames returns the twelve branch names in order.
func EarthBranchNames() []string {
	return earthBranchTable.Names()
}

// Index returns the branch's index in [0, 12).
func (e EarthBranch) Index() int { return e.c.Index() }

// Name returns the branch's name.
func (e EarthBranch) Name() string { return e.c.Name() }

func (e EarthBranch) String() string { return e.c.Name() }

// Next returns the branch n steps away.
func (e EarthBranch) Next(n int) EarthBranch {
	return EarthBranch{e.c.Next(n)}
}

// Element returns the branch's element.
func (e EarthBranch) Element() culture.Element {
	return culture.ElementFromIndex(branchElements[e.Index()])
}

// YinYang returns Yang for even branches and Yin for odd ones.
func (e EarthBranch) YinYang() culture.YinYang {
	return culture.YinYangOf(e.Index())
}

// HideHeavenStemMain returns the main hidden stem (本气). Every branch has one.
func (e EarthBranch) HideHeavenStemMain() HeavenStem {
	return HeavenStemFromIndex(hideHeavenStemMain[e.Index()])
}

// HideHeavenStemMiddle returns the middle hidden stem (中气), if the branch has one.
func (e EarthBranch) HideHeavenStemMiddle() (HeavenStem, bool) {
	return hiddenStem(hideHeavenStemMiddle[e.Index()])
}

// HideHeavenStemResidual returns the residual hidden stem (余气), if the branch has one.
func (e EarthBranch) HideHeavenStemResidual() (HeavenStem, bool) {
	return hiddenStem(hideHeavenStemResidual[e.Index()])
}

func hiddenStem(index int) (HeavenStem, bool) {
	if index == noStem {
		return HeavenStem{}, false
	}
	return HeavenStemFromIndex(index), true
}

// HideHeavenStems returns the branch's hidden stems: the main stem first,
// then the middle and residual stems when present.
func (e EarthBranch) HideHeavenStems() []HideHeavenStem {
	stems := []HideHeavenStem{NewHideHeavenStem(e.HideHeavenStemMain(), culture.Main)}
	if s, ok := e.HideHeavenStemMiddle(); ok {
		stems = append(stems, NewHideHeavenStem(s, culture.Middle))
	}
	if s, ok := e.HideHeavenStemResidual(); ok {
		stems = append(stems, NewHideHeavenStem(s, culture.Residual))
	}
	return stems
}

// Zodiac returns the branch's animal.
func (e EarthBranch) Zodiac() culture.Zodiac {
	return culture.ZodiacFromIndex(e.Index())
}

// Direction returns the branch's compass direction. The four earth branches
// 丑 辰 未 戌 sit at the centre.
func (e EarthBranch) Direction() culture.Direction {
	return culture.DirectionFromIndex(branchDirections[e.Index()])
}

// Opposite returns the branch this one clashes with (六冲), six steps away.
func (e EarthBranch) Opposite() EarthBranch {
	return e.Next(6)
}

// Ominous returns the direction of the sha (煞) for the branch.
func (e EarthBranch) Ominous() culture.Direction {
	return culture.DirectionFromIndex(ominousDirections[e.Index()%4])
}

// PengZuEarthBranch returns the branch's PengZu taboo.
func (e EarthBranch) PengZuEarthBranch() culture.PengZuEarthBranch {
	return culture.PengZuEarthBranchFromIndex(e.Index())
}

// Combine returns the branch this one combines with (六合):
// 子丑 寅亥 卯戌 辰酉 巳申 午未.
func (e EarthBranch) Combine() EarthBranch {
	return EarthBranchFromIndex(1 - e.Index())
}

// Harm returns the branch that harms this one (六害):
// 子未 丑午 寅巳 卯辰 申亥 酉戌.
func (e EarthBranch) Harm() EarthBranch {
	return EarthBranchFromIndex(19 - e.Index())
}

// CombineWith returns the element the pair transforms into when target is
// this branch's combination partner. ok is false when the two do not combine.
func (e EarthBranch) CombineWith(target EarthBranch) (element culture.Element, ok bool) {
	if e.Combine() != target {
		return culture.Element{}, false
	}
	return culture.ElementFromIndex(branchCombineElements[e.Index()]), true
}
