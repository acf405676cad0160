package config

// ScreenID identifies a top-level game screen
type ScreenID int

const (
	ScreenNone ScreenID = iota
	ScreenLoading
	ScreenTitle
	ScreenPlaying
)

func (s ScreenID) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	default:
		return "none"
	}
}

// ParseScreen maps a level property value to a screen. Unknown names map to ScreenNone.
func ParseScreen(name string) ScreenID {
	switch name {
	case "loading":
		return ScreenLoading
	case "title":
		return ScreenTitle
	case "playing":
		return ScreenPlaying
	default:
		return ScreenNone
	}
}
