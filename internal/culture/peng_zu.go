package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var pengZuHeavenStemTable = cycle.NewTable("peng zu heaven stem",
	"甲不开仓财物耗散", "乙不栽植千株不长", "丙不修灶必见灾殃", "丁不剃头头必生疮", "戊不受田田主不祥",
	"己不破券二比并亡", "庚不经络织机虚张", "辛不合酱主人不尝", "壬不泱水更难提防", "癸不词讼理弱敌强",
)

var pengZuEarthBranchTable = cycle.NewTable("peng zu earth branch",
	"子不问卜自惹祸殃", "丑不冠带主不还乡", "寅不祭祀神鬼不尝", "卯不穿井水泉不香",
	"辰不哭泣必主重丧", "巳不远行财物伏藏", "午不苫盖屋主更张", "未不服药毒气入肠",
	"申不安床鬼祟入房", "酉不会客醉坐颠狂", "戌不吃犬作怪上床", "亥不嫁娶不利新郎",
)

// PengZuHeavenStem is the PengZu taboo saying for a heaven stem.
type PengZuHeavenStem struct {
	c cycle.Cycle
}

// PengZuHeavenStemFromIndex returns the saying for the stem at index, wrapped mod 10.
func PengZuHeavenStemFromIndex(index int) PengZuHeavenStem {
	return PengZuHeavenStem{pengZuHeavenStemTable.FromIndex(index)}
}

// PengZuHeavenStemFromName returns the saying with the given text.
func PengZuHeavenStemFromName(name string) (PengZuHeavenStem, error) {
	c, err := pengZuHeavenStemTable.FromName(name)
	if err != nil {
		return PengZuHeavenStem{}, err
	}
	return PengZuHeavenStem{c}, nil
}

func (p PengZuHeavenStem) Index() int { return p.c.Index() }

func (p PengZuHeavenStem) Name() string { return p.c.Name() }

func (p PengZuHeavenStem) String() string { return p.c.Name() }

func (p PengZuHeavenStem) Next(n int) PengZuHeavenStem {
	return PengZuHeavenStem{p.c.Next(n)}
}

// PengZuEarthBranch is the PengZu taboo saying for an earth branch.
type PengZuEarthBranch struct {
	c cycle.Cycle
}

// PengZuEarthBranchFromIndex returns the saying for the branch at index, wrapped mod 12.
func PengZuEarthBranchFromIndex(index int) PengZuEarthBranch {
	return PengZuEarthBranch{pengZuEarthBranchTable.FromIndex(index)}
}

// PengZuEarthBranchFromName returns the saying with the given text.
func PengZuEarthBranchFromName(name string) (PengZuEarthBranch, error) {
	c, err := pengZuEarthBranchTable.FromName(name)
	if err != nil {
		return PengZuEarthBranch{}, err
	}
	return PengZuEarthBranch{c}, nil
}

func (p PengZuEarthBranch) Index() int { return p.c.Index() }

func (p PengZuEarthBranch) Name() string { return p.c.Name() }

func (p PengZuEarthBranch) String() string { return p.c.Name() }

func (p PengZuEarthBranch) Next(n int) PengZuEarthBranch {
	return PengZuEarthBranch{p.c.Next(n)}
}

// PengZu (彭祖百忌) pairs the stem and branch taboo sayings of one member of
// the sixty cycle.
type PengZu struct {
	heavenStem  PengZuHeavenStem
	earthBranch PengZuEarthBranch
}

// NewPengZu returns the PengZu sayings for the given stem and branch indexes.
func NewPengZu(heavenStemIndex, earthBranchIndex int) PengZu {
	return PengZu{
		heavenStem:  PengZuHeavenStemFromIndex(heavenStemIndex),
		earthBranch: PengZuEarthBranchFromIndex(earthBranchIndex),
	}
}

// HeavenStem returns the stem saying.
func (p PengZu) HeavenStem() PengZuHeavenStem {
	return p.heavenStem
}

// EarthBranch returns the branch saying.
func (p PengZu) EarthBranch() PengZuEarthBranch {
	return p.earthBranch
}

// Name returns both sayings separated by a space.
func (p PengZu) Name() string {
	return p.heavenStem.Name() + " " + p.earthBranch.Name()
}

func (p PengZu) String() string {
	return p.Name()
}
