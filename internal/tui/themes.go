package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines a color scheme for solver output
type Theme struct {
	Name       string
	Accent     string // Titles, cursor, selected chain marker
	Letter     string // Box letters
	Word       string // Words in a chain
	Muted      string // Labels, help text
	Faded      string // Letters not yet typed, empty slots
	Error      string // Errors and empty results
	Border     string // Box borders
	SelectedBg string // Selected chain background
}

// Available themes
var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Accent:     "#C73B3C",
		Letter:     "#d7af5f",
		Word:       "#5fafaf",
		Muted:      "#6c6c6c",
		Faded:      "#8a8a8a",
		Error:      "#ff5f5f",
		Border:     "#5f87d7",
		SelectedBg: "#303030",
	},
	"gruvbox": {
		Name:       "Gruvbox",
		Accent:     "#d65d0e", // Gruvbox orange
		Letter:     "#d79921", // Gruvbox yellow
		Word:       "#98971a", // Gruvbox green
		Muted:      "#928374", // Gruvbox gray
		Faded:      "#a89984", // Gruvbox light gray
		Error:      "#cc241d", // Gruvbox red
		Border:     "#458588", // Gruvbox aqua
		SelectedBg: "#3c3836", // Gruvbox bg1
	},
	"tokyonight": {
		Name:       "Tokyo Night",
		Accent:     "#7aa2f7",
		Letter:     "#e0af68",
		Word:       "#9ece6a",
		Muted:      "#565f89",
		Faded:      "#9aa5ce",
		Error:      "#f7768e",
		Border:     "#7dcfff",
		SelectedBg: "#292e42",
	},
	"catppuccin": {
		Name:       "Catppuccin",
		Accent:     "#cba6f7", // Mauve
		Letter:     "#f9e2af", // Yellow
		Word:       "#a6e3a1", // Green
		Muted:      "#6c7086", // Overlay0
		Faded:      "#9399b2", // Overlay2
		Error:      "#f38ba8", // Red
		Border:     "#89b4fa", // Blue
		SelectedBg: "#313244", // Surface0
	},
}

// ThemeNames returns the list of available theme names
var ThemeNames = []string{"default", "gruvbox", "tokyonight", "catppuccin"}

// CurrentTheme holds the active theme
var CurrentTheme = Themes["default"]

var (
	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	letterStyle   lipgloss.Style
	wordStyle     lipgloss.Style
	valueStyle    lipgloss.Style
	errorStyle    lipgloss.Style
	fadedStyle    lipgloss.Style
	cursorStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	boxStyle      lipgloss.Style
	helpStyle     lipgloss.Style
)

// SetTheme updates the current theme and regenerates all styles. It reports
// whether name is a known theme.
func SetTheme(name string) bool {
	theme, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = theme
	regenerateStyles()
	return true
}

// regenerateStyles updates all lipgloss styles with current theme colors
func regenerateStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Accent))

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Muted))

	letterStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Letter))

	wordStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Word))

	valueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Word))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Error))

	fadedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Faded))

	cursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(CurrentTheme.Accent)).
		Foreground(lipgloss.Color("#000000"))

	selectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Word)).
		Background(lipgloss.Color(CurrentTheme.SelectedBg))

	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Border)).
		Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Muted)).
		MarginTop(1)
}

// Initialize styles with default theme
func init() {
	regenerateStyles()
}
