package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// House palette: charcoal, cream and brass
// ---------------------------------------------------------------------------

const (
	colorBrass     lipgloss.Color = "#c8a45c"
	colorBrassDim  lipgloss.Color = "#8c7444"
	colorCream     lipgloss.Color = "#f3ead8"
	colorLinen     lipgloss.Color = "#d9cfbd"
	colorStone     lipgloss.Color = "#a39a8b"
	colorSlate     lipgloss.Color = "#6b655c"
	colorCharcoal  lipgloss.Color = "#2a2724"
	colorEspresso  lipgloss.Color = "#1c1a18"
	colorSage      lipgloss.Color = "#9bb58a"
	colorClaret    lipgloss.Color = "#c0626b"
	colorMistyBlue lipgloss.Color = "#8fa9c2"
)

const (
	colorAccent  = colorBrass
	colorText    = colorCream
	colorMuted   = colorStone
	colorSuccess = colorSage
	colorError   = colorClaret
	colorInfo    = colorMistyBlue
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorEspresso).
			Padding(0, 2).
			Bold(true)
	headerScrolledStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Background(colorCharcoal).
				Padding(0, 2).
				Bold(true)
	navStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	navActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Underline(true)

	eyebrowStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headingStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	bodyStyle     = lipgloss.NewStyle().Foreground(colorLinen)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	priceStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dotOnStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	dotOffStyle   = lipgloss.NewStyle().Foreground(colorSlate)
	chipStyle     = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	chipOnStyle   = lipgloss.NewStyle().Foreground(colorEspresso).Background(colorAccent).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	focusedLabel  = lipgloss.NewStyle().Foreground(colorAccent).Width(12)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	footerStyle   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	topHintStyle  = lipgloss.NewStyle().Foreground(colorEspresso).Background(colorAccent).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBrassDim).Padding(0, 1)
	slideStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 2)
	slideBusy     = slideStyle.BorderForeground(colorSlate)
	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Background(colorEspresso).
			Foreground(colorText).
			Padding(1, 3)
	backdropStyle = lipgloss.NewStyle().Foreground(colorSlate).Faint(true)

	toastSuccessStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSuccess).
				Padding(0, 1)
	toastFailureStyle = toastSuccessStyle.BorderForeground(colorError)
)
