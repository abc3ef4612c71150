// Package sixtycycle implements the sixty-cycle (干支) engine: the ten
// heaven stems, the twelve earth branches, the hidden stems each branch
// carries, and the sixty pillars formed by pairing them.
//
// All values are immutable and every derived property is a table lookup on
// the value's index. Numeric constructors accept any integer and wrap it
// around the cycle; name constructors fail with cycle.ErrInvalidName.
package sixtycycle

import (
	"github.com/zapponejosh/ganzhi/internal/culture"
	"github.com/zapponejosh/ganzhi/internal/cycle"
)

var heavenStemTable = cycle.NewTable("heaven stem", "甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸")

// Direction lore. Each table reproduces a traditional mnemonic verse and is
// indexed as noted; none of them reduces to a simpler formula.
var (
	// 甲己在艮乙庚乾，丙辛坤位喜神安。丁壬只在离宫坐，戊癸原在在巽间。 (index % 5)
	joyDirections = []int{7, 5, 1, 8, 3}

	// 甲戊坤艮位，乙己是坤坎，庚辛居离艮，丙丁兑与乾，震巽属何日，壬癸贵神安。
	yangDirections = []int{1, 1, 6, 5, 7, 0, 8, 7, 2, 3}

	// 甲戊见牛羊，乙己鼠猴乡，丙丁猪鸡位，壬癸蛇兔藏，庚辛逢虎马，此是贵神方。
	yinDirections = []int{7, 0, 5, 6, 1, 1, 7, 8, 3, 2}

	// 甲乙东北是财神，丙丁向在西南寻，戊己正北坐方位，庚辛正东去安身，壬癸原来正南坐。 (index / 2)
	wealthDirections = []int{7, 1, 0, 2, 8}

	// 甲乙东南是福神，丙丁正东是堪宜，戊北己南庚辛坤，壬在乾方癸在西。
	mascotDirections = []int{3, 3, 2, 2, 0, 8, 1, 1, 5, 6}
)

// Terrain of each stem at 子, the starting point of the long-life cycle.
// Yang stems walk the branches forward from here, yin stems backward.
var terrainBase = []int{1, 6, 10, 9, 10, 9, 7, 0, 4, 3}

// HeavenStem is one of the ten heaven stems (天干), 甲 through 癸.
type HeavenStem struct {
	c cycle.Cycle
}

// HeavenStemFromIndex returns the stem at the given index, wrapped mod 10.
func HeavenStemFromIndex(index int) HeavenStem {
	return HeavenStem{heavenStemTable.FromIndex(index)}
}

// HeavenStemFromName returns the stem with the given name.
func HeavenStemFromName(name string) (HeavenStem, error) {
	c, err := heavenStemTable.FromName(name)
	if err != nil {
		return HeavenStem{}, err
	}
	return HeavenStem{c}, nil
}

// HeavenStemNames returns the ten stem names in order.
func HeavenStemNames() []string {
	return heavenStemTable.Names()
}

// Index returns the stem's index in [0, 10).
func (h HeavenStem) Index() int { return h.c.Index() }

// Name returns the stem's name.
func (h HeavenStem) Name() string { return h.c.Name() }

func (h HeavenStem) String() string { return h.c.Name() }

// Next returns the stem n steps away.
func (h HeavenStem) Next(n int) HeavenStem {
	return HeavenStem{h.c.Next(n)}
}

// Element returns the stem's element: two stems per element in generating order.
func (h HeavenStem) Element() culture.Element {
	return culture.ElementFromIndex(h.Index() / 2)
}

// YinYang returns Yang for 甲 丙 戊 庚 壬 and Yin for the rest.
func (h HeavenStem) YinYang() culture.YinYang {
	return culture.YinYangOf(h.Index())
}

// TenStar returns the relation of target to this stem taken as day master.
//
// A yin day master facing a yang target shifts the offset by two, so that
// the proper and partial members of each pair land the right way round.
func (h HeavenStem) TenStar(target HeavenStem) culture.TenStar {
	offset := target.Index() - h.Index()
	if h.Index()%2 != 0 && target.Index()%2 == 0 {
		offset += 2
	}
	return culture.TenStarFromIndex(offset)
}

// Direction returns the direction of the stem's element.
func (h HeavenStem) Direction() culture.Direction {
	return h.Element().Direction()
}

// JoyDirection returns the direction of the god of joy (喜神).
func (h HeavenStem) JoyDirection() culture.Direction {
	return culture.DirectionFromIndex(joyDirections[h.Index()%5])
}

// YangDirection returns the direction of the yang noble (阳贵神).
func (h HeavenStem) YangDirection() culture.Direction {
	return culture.DirectionFromIndex(yangDirections[h.Index()])
}

// YinDirection returns the direction of the yin noble (阴贵神).
func (h HeavenStem) YinDirection() culture.Direction {
	return culture.DirectionFromIndex(yinDirections[h.Index()])
}

// WealthDirection returns the direction of the god of wealth (财神).
func (h HeavenStem) WealthDirection() culture.Direction {
	return culture.DirectionFromIndex(wealthDirections[h.Index()/2])
}

// MascotDirection returns the direction of the god of fortune (福神).
func (h HeavenStem) MascotDirection() culture.Direction {
	return culture.DirectionFromIndex(mascotDirections[h.Index()])
}

// PengZuHeavenStem returns the stem's PengZu taboo.
func (h HeavenStem) PengZuHeavenStem() culture.PengZuHeavenStem {
	return culture.PengZuHeavenStemFromIndex(h.Index())
}

// Terrain returns the stem's life stage (长生十二神) at the given branch.
func (h HeavenStem) Terrain(branch EarthBranch) culture.Terrain {
	offset := branch.Index()
	if h.YinYang() == culture.Yin {
		offset = -offset
	}
	return culture.TerrainFromIndex(terrainBase[h.Index()] + offset)
}

// Combine returns the stem this one combines with (天干五合): 甲己 乙庚 丙辛 丁壬 戊癸.
func (h HeavenStem) Combine() HeavenStem {
	return h.Next(5)
}

// CombineWith returns the element the pair transforms into when target is
// this stem's combination partner. ok is false when the two do not combine.
//
//	甲己 土, 乙庚 金, 丙辛 水, 丁壬 木, 戊癸 火
func (h HeavenStem) CombineWith(target HeavenStem) (element culture.Element, ok bool) {
	if h.Combine() != target {
		return culture.Element{}, false
	}
	return culture.ElementFromIndex(h.Index() + 2), true
}
