package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette holds the raw colors for one theme variant.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark palette, the default. Calm blues on deep navy.
var darkPalette = Palette{
	Primary:   lipgloss.Color("#60A5FA"), // Sky Blue
	Secondary: lipgloss.Color("#34D399"), // Emerald
	Accent:    lipgloss.Color("#FBBF24"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F87171"), // Soft Red
	Text:      lipgloss.Color("#E2E8F0"), // Light Slate
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0B1020"), // Deep Navy
	BgCard:    lipgloss.Color("#101735"), // Navy Card
	Border:    lipgloss.Color("#243056"), // Muted Navy
}

// Light palette. Mirrors the dark roles on a paper background.
var lightPalette = Palette{
	Primary:   lipgloss.Color("#2563EB"), // Blue
	Secondary: lipgloss.Color("#059669"), // Emerald
	Accent:    lipgloss.Color("#B45309"), // Amber
	Success:   lipgloss.Color("#16A34A"), // Green
	Error:     lipgloss.Color("#DC2626"), // Red
	Text:      lipgloss.Color("#0F172A"), // Near Black
	TextDim:   lipgloss.Color("#64748B"), // Slate
	Bg:        lipgloss.Color("#F7F7FB"), // Paper
	BgCard:    lipgloss.Color("#FFFFFF"), // White
	Border:    lipgloss.Color("#D8DEEA"), // Light Gray
}

// Active colors. Set by Apply; every style below is rebuilt with them.
var (
	Primary   = darkPalette.Primary
	Secondary = darkPalette.Secondary
	Accent    = darkPalette.Accent
	Success   = darkPalette.Success
	Error     = darkPalette.Error
	Text      = darkPalette.Text
	TextDim   = darkPalette.TextDim
	Bg        = darkPalette.Bg
	BgCard    = darkPalette.BgCard
	Border    = darkPalette.Border
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

// Apply switches the active palette and rebuilds every exported style.
// Any name other than "light" selects the dark palette.
func Apply(name string) {
	p := darkPalette
	if name == "light" {
		p = lightPalette
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgCard).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

func init() {
	Apply("dark")
}
