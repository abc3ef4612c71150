package sixtycycle

import (
	"github.com/zapponejosh/ganzhi/internal/culture"
	"github.com/zapponejosh/ganzhi/internal/cycle"
)

// Pillar i pairs stem i%10 with branch i%12.
var sixtyCycleTable = cycle.NewTable("sixty cycle",
	"甲子", "乙丑", "丙寅", "丁卯", "戊辰", "己巳", "庚午", "辛未", "壬申", "癸酉",
	"甲戌", "乙亥", "丙子", "丁丑", "戊寅", "己卯", "庚辰", "辛巳", "壬午", "癸未",
	"甲申", "乙酉", "丙戌", "丁亥", "戊子", "己丑", "庚寅", "辛卯", "壬辰", "癸巳",
	"甲午", "乙未", "丙申", "丁酉", "戊戌", "己亥", "庚子", "辛丑", "壬寅", "癸卯",
	"甲辰", "乙巳", "丙午", "丁未", "戊申", "己酉", "庚戌", "辛亥", "壬子", "癸丑",
	"甲寅", "乙卯", "丙辰", "丁巳", "戊午", "己未", "庚申", "辛酉", "壬戌", "癸亥",
)

// all holds the sixty pillars in order. It is read-only after init.
var all = func() []SixtyCycle {
	cycles := make([]SixtyCycle, sixtyCycleTable.Size())
	for i := range cycles {
		cycles[i] = SixtyCycleFromIndex(i)
	}
	return cycles
}()

// SixtyCycle is one of the sixty stem-branch pairs (六十甲子), 甲子 through 癸亥.
type SixtyCycle struct {
	c cycle.Cycle
}

// SixtyCycleFromIndex returns the pillar at the given index, wrapped mod 60.
func SixtyCycleFromIndex(index int) SixtyCycle {
	return SixtyCycle{sixtyCycleTable.FromIndex(index)}
}

// SixtyCycleFromName returns the pillar with the given name, e.g. 甲子.
func SixtyCycleFromName(name string) (SixtyCycle, error) {
	c, err := sixtyCycleTable.FromName(name)
	if err != nil {
		return SixtyCycle{}, err
	}
	return SixtyCycle{c}, nil
}

// All returns the sixty pillars in order.
func All() []SixtyCycle {
	return append([]SixtyCycle(nil), all...)
}

// Index returns the pillar's index in [0, 60).
func (s SixtyCycle) Index() int { return s.c.Index() }

// Name returns the pillar's name.
func (s SixtyCycle) Name() string { return s.c.Name() }

func (s SixtyCycle) String() string { return s.c.Name() }

// Next returns the pillar n steps away.
func (s SixtyCycle) Next(n int) SixtyCycle {
	return SixtyCycle{s.c.Next(n)}
}

// HeavenStem returns the pillar's stem.
func (s SixtyCycle) HeavenStem() HeavenStem {
	return HeavenStemFromIndex(s.Index() % 10)
}

// EarthBranch returns the pillar's branch.
func (s SixtyCycle) EarthBranch() EarthBranch {
	return EarthBranchFromIndex(s.Index() % 12)
}

// Sound returns the pillar's nayin (纳音).
func (s SixtyCycle) Sound() culture.Sound {
	return culture.SoundFromIndex(s.Index() / 2)
}

// PengZu returns the PengZu taboos of the pillar's stem and branch.
func (s SixtyCycle) PengZu() culture.PengZu {
	return culture.NewPengZu(s.HeavenStem().Index(), s.EarthBranch().Index())
}

// Ten returns the xun (旬) the pillar belongs to.
func (s SixtyCycle) Ten() culture.Ten {
	return culture.TenFromIndex(cycle.FloorDiv(s.HeavenStem().Index()-s.EarthBranch().Index(), 2))
}

// ExtraEarthBranches returns the two void branches (旬空) of the pillar's
// xun: the branches left over once its ten stems have been paired.
func (s SixtyCycle) ExtraEarthBranches() [2]EarthBranch {
	first := EarthBranchFromIndex(10 + s.EarthBranch().Index() - s.HeavenStem().Index())
	return [2]EarthBranch{first, first.Next(1)}
}
