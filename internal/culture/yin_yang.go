package culture

// YinYang is the polarity of a stem or branch.
type YinYang int

const (
	Yin YinYang = iota
	Yang
)

// String returns the display name.
func (y YinYang) String() string {
	switch y {
	case Yin:
		return "阴"
	case Yang:
		return "阳"
	default:
		return "unknown"
	}
}

// YinYangOf returns Yang for even indexes and Yin for odd ones.
func YinYangOf(index int) YinYang {
	if index%2 == 0 {
		return Yang
	}
	return Yin
}
