package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/strength"
)

var (
	upperStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	lowerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#BFBFBF"))
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#69B1FF"))
	symbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

var levelColors = map[strength.Level]lipgloss.Color{
	strength.VeryWeak:   "#FF4D4F",
	strength.Weak:       "#FA8C16",
	strength.Moderate:   "#FADB14",
	strength.Strong:     "#73D13D",
	strength.VeryStrong: "#13C2C2",
}

// LevelStyle colors text by strength level.
func LevelStyle(l strength.Level) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(levelColors[l])
}

func classStyle(r rune) lipgloss.Style {
	switch {
	case r >= 'A' && r <= 'Z':
		return upperStyle
	case r >= 'a' && r <= 'z':
		return lowerStyle
	case r >= '0' && r <= '9':
		return digitStyle
	default:
		return symbolStyle
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func modeLabel(m model.LengthMode) string {
	if m == model.CharacterLength {
		return "target length"
	}
	return "word count"
}
