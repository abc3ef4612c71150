package cli

import (
	"strconv"

	"github.com/zapponejosh/ganzhi/internal/render"
	"github.com/zapponejosh/ganzhi/internal/sixtycycle"
)

// stemView is the lookup result for a heaven stem.
type stemView struct {
	Name            string        `json:"name" yaml:"name"`
	Index           int           `json:"index" yaml:"index"`
	Element         string        `json:"element" yaml:"element"`
	YinYang         string        `json:"yin_yang" yaml:"yin_yang"`
	Direction       string        `json:"direction" yaml:"direction"`
	JoyDirection    string        `json:"joy_direction" yaml:"joy_direction"`
	YangDirection   string        `json:"yang_direction" yaml:"yang_direction"`
	YinDirection    string        `json:"yin_direction" yaml:"yin_direction"`
	WealthDirection string        `json:"wealth_direction" yaml:"wealth_direction"`
	MascotDirection string        `json:"mascot_direction" yaml:"mascot_direction"`
	Combine         string        `json:"combine" yaml:"combine"`
	PengZu          string        `json:"peng_zu" yaml:"peng_zu"`
	Target          *stemRelation `json:"target,omitempty" yaml:"target,omitempty"`
	Terrain         *terrainView  `json:"terrain,omitempty" yaml:"terrain,omitempty"`
}

type stemRelation struct {
	Name      string `json:"name" yaml:"name"`
	TenStar   string `json:"ten_star" yaml:"ten_star"`
	Combined  bool   `json:"combined" yaml:"combined"`
	Transform string `json:"transform,omitempty" yaml:"transform,omitempty"`
}

type terrainView struct {
	Branch  string `json:"branch" yaml:"branch"`
	Terrain string `json:"terrain" yaml:"terrain"`
}

func newStemView(s sixtycycle.HeavenStem) stemView {
	return stemView{
		Name:            s.Name(),
		Index:           s.Index(),
		Element:         s.Element().Name(),
		YinYang:         s.YinYang().String(),
		Direction:       s.Direction().Name(),
		JoyDirection:    s.JoyDirection().Name(),
		YangDirection:   s.YangDirection().Name(),
		YinDirection:    s.YinDirection().Name(),
		WealthDirection: s.WealthDirection().Name(),
		MascotDirection: s.MascotDirection().Name(),
		Combine:         s.Combine().Name(),
		PengZu:          s.PengZuHeavenStem().Name(),
	}
}

func (v stemView) Grid() render.Grid {
	rows := [][]string{
		{"index", strconv.Itoa(v.Index)},
		{"element", v.Element},
		{"yin yang", v.YinYang},
		{"direction", v.Direction},
		{"joy direction", v.JoyDirection},
		{"yang noble direction", v.YangDirection},
		{"yin noble direction", v.YinDirection},
		{"wealth direction", v.WealthDirection},
		{"mascot direction", v.MascotDirection},
		{"combine", v.Combine},
		{"peng zu", v.PengZu},
	}
	if v.Target != nil {
		rows = append(rows, []string{"ten star of " + v.Target.Name, v.Target.TenStar})
		rows = append(rows, []string{"combine with " + v.Target.Name, transformText(v.Target.Combined, v.Target.Transform)})
	}
	if v.Terrain != nil {
		rows = append(rows, []string{"terrain at " + v.Terrain.Branch, v.Terrain.Terrain})
	}
	return render.Grid{Title: "heaven stem " + v.Name, Header: []string{"Property", "Value"}, Rows: rows}
}

// branchView is the lookup result for an earth branch.
type branchView struct {
	Name            string          `json:"name" yaml:"name"`
	Index           int             `json:"index" yaml:"index"`
	Element         string          `json:"element" yaml:"element"`
	YinYang         string          `json:"yin_yang" yaml:"yin_yang"`
	Zodiac          string          `json:"zodiac" yaml:"zodiac"`
	Direction       string          `json:"direction" yaml:"direction"`
	Ominous         string          `json:"ominous" yaml:"ominous"`
	Opposite        string          `json:"opposite" yaml:"opposite"`
	Combine         string          `json:"combine" yaml:"combine"`
	Harm            string          `json:"harm" yaml:"harm"`
	HideHeavenStems []hideStemView  `json:"hide_heaven_stems" yaml:"hide_heaven_stems"`
	PengZu          string          `json:"peng_zu" yaml:"peng_zu"`
	Target          *branchRelation `json:"target,omitempty" yaml:"target,omitempty"`
}

type hideStemView struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Element string `json:"element" yaml:"element"`
}

type branchRelation struct {
	Name      string `json:"name" yaml:"name"`
	Combined  bool   `json:"combined" yaml:"combined"`
	Transform string `json:"transform,omitempty" yaml:"transform,omitempty"`
	Clash     bool   `json:"clash" yaml:"clash"`
	Harm      bool   `json:"harm" yaml:"harm"`
}

func newBranchView(b sixtycycle.EarthBranch) branchView {
	v := branchView{
		Name:      b.Name(),
		Index:     b.Index(),
		Element:   b.Element().Name(),
		YinYang:   b.YinYang().String(),
		Zodiac:    b.Zodiac().Name(),
		Direction: b.Direction().Name(),
		Ominous:   b.Ominous().Name(),
		Opposite:  b.Opposite().Name(),
		Combine:   b.Combine().Name(),
		Harm:      b.Harm().Name(),
		PengZu:    b.PengZuEarthBranch().Name(),
	}
	for _, h := range b.HideHeavenStems() {
		v.HideHeavenStems = append(v.HideHeavenStems, hideStemView{
			Name:    h.Name(),
			Type:    h.Type().String(),
			Element: h.HeavenStem().Element().Name(),
		})
	}
	return v
}

func (v branchView) Grid() render.Grid {
	rows := [][]string{
		{"index", strconv.Itoa(v.Index)},
		{"element", v.Element},
		{"yin yang", v.YinYang},
		{"zodiac", v.Zodiac},
		{"direction", v.Direction},
		{"ominous", v.Ominous},
		{"opposite", v.Opposite},
		{"combine", v.Combine},
		{"harm", v.Harm},
	}
	for _, h := range v.HideHeavenStems {
		rows = append(rows, []string{"hidden stem " + h.Type, h.Name + h.Element})
	}
	rows = append(rows, []string{"peng zu", v.PengZu})
	if v.Target != nil {
		rows = append(rows, []string{"combine with " + v.Target.Name, transformText(v.Target.Combined, v.Target.Transform)})
		rows = append(rows, []string{"clash with " + v.Target.Name, strconv.FormatBool(v.Target.Clash)})
		rows = append(rows, []string{"harm with " + v.Target.Name, strconv.FormatBool(v.Target.Harm)})
	}
	return render.Grid{Title: "earth branch " + v.Name, Header: []string{"Property", "Value"}, Rows: rows}
}

// cycleView is the lookup result for a member of the sixty cycle.
type cycleView struct {
	Name               string   `json:"name" yaml:"name"`
	Index              int      `json:"index" yaml:"index"`
	HeavenStem         string   `json:"heaven_stem" yaml:"heaven_stem"`
	EarthBranch        string   `json:"earth_branch" yaml:"earth_branch"`
	Sound              string   `json:"sound" yaml:"sound"`
	Ten                string   `json:"ten" yaml:"ten"`
	ExtraEarthBranches []string `json:"extra_earth_branches" yaml:"extra_earth_branches"`
	PengZu             string   `json:"peng_zu" yaml:"peng_zu"`
}

func newCycleView(s sixtycycle.SixtyCycle) cycleView {
	extra := s.ExtraEarthBranches()
	return cycleView{
		Name:               s.Name(),
		Index:              s.Index(),
		HeavenStem:         s.HeavenStem().Name(),
		EarthBranch:        s.EarthBranch().Name(),
		Sound:              s.Sound().Name(),
		Ten:                s.Ten().Name(),
		ExtraEarthBranches: []string{extra[0].Name(), extra[1].Name()},
		PengZu:             s.PengZu().Name(),
	}
}

func (v cycleView) Grid() render.Grid {
	return render.Grid{
		Title:  "sixty cycle " + v.Name,
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"index", strconv.Itoa(v.Index)},
			{"heaven stem", v.HeavenStem},
			{"earth branch", v.EarthBranch},
			{"sound", v.Sound},
			{"ten", v.Ten},
			{"extra earth branches", v.ExtraEarthBranches[0] + v.ExtraEarthBranches[1]},
			{"peng zu", v.PengZu},
		},
	}
}

// tableView lists the whole sixty cycle.
type tableView struct {
	Cycles []cycleView `json:"cycles" yaml:"cycles"`
}

func (v tableView) Grid() render.Grid {
	g := render.Grid{
		Title:      "sixty cycle",
		Header:     []string{"#", "Name", "Stem", "Branch", "Sound", "Ten", "Void"},
		AlignRight: []int{1},
	}
	for _, c := range v.Cycles {
		g.Rows = append(g.Rows, []string{
			strconv.Itoa(c.Index), c.Name, c.HeavenStem, c.EarthBranch, c.Sound, c.Ten,
			c.ExtraEarthBranches[0] + c.ExtraEarthBranches[1],
		})
	}
	return g
}

func transformText(combined bool, element string) string {
	if !combined {
		return "-"
	}
	return element
}
