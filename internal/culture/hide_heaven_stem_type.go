package culture

// HideHeavenStemType is the role of a hidden stem within an earth branch.
type HideHeavenStemType int

const (
	Residual HideHeavenStemType = iota
	Middle
	Main
)

// String returns the display name.
func (t HideHeavenStemType) String() string {
	switch t {
	case Residual:
		return "余气"
	case Middle:
		return "中气"
	case Main:
		return "本气"
	default:
		return "unknown"
	}
}
