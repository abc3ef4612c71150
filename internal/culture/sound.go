package culture

import "github.com/zapponejosh/ganzhi/internal/cycle"

var soundTable = cycle.NewTable("sound",
	"海中金", "炉中火", "大林木", "路旁土", "剑锋金", "山头火",
	"涧下水", "城头土", "白蜡金", "杨柳木", "泉中水", "屋上土",
	"霹雳火", "松柏木", "长流水", "沙中金", "山下火", "平地木",
	"壁上土", "金箔金", "覆灯火", "天河水", "大驿土", "钗钏金",
	"桑柘木", "大溪水", "沙中土", "天上火", "石榴木", "大海水",
)

// Sound is one of the thirty nayin (纳音). Each sound is shared by two
// consecutive members of the sixty cycle.
type Sound struct {
	c cycle.Cycle
}

// SoundFromIndex returns the sound at the given index, wrapped mod 30.
func SoundFromIndex(index int) Sound {
	return Sound{soundTable.FromIndex(index)}
}

// SoundFromName returns the sound with the given name.
func SoundFromName(name string) (Sound, error) {
	c, err := soundTable.FromName(name)
	if err != nil {
		return Sound{}, err
	}
	return Sound{c}, nil
}

func (s Sound) Index() int { return s.c.Index() }

func (s Sound) Name() string { return s.c.Name() }

func (s Sound) String() string { return s.c.Name() }

func (s Sound) Next(n int) Sound {
	return Sound{s.c.Next(n)}
}
