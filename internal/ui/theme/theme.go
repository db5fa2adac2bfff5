// Package theme provides the semantic colours of the tree picker.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme names the colours the picker draws with. All methods return
// AdaptiveColor so light and dark terminals both read well.
type Theme interface {
	Primary() lipgloss.AdaptiveColor // Focused row, prompt
	Accent() lipgloss.AdaptiveColor  // Carets, match count

	Success() lipgloss.AdaptiveColor // Checked boxes
	Warning() lipgloss.AdaptiveColor // Partial marker
	Error() lipgloss.AdaptiveColor   // Error line

	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor // Disabled nodes, hints

	Background() lipgloss.AdaptiveColor
	Selection() lipgloss.AdaptiveColor // Focused row background
	Chip() lipgloss.AdaptiveColor      // Tag background
}

// Palette is a Theme with fixed colours.
type Palette struct {
	PrimaryColor    lipgloss.AdaptiveColor
	AccentColor     lipgloss.AdaptiveColor
	SuccessColor    lipgloss.AdaptiveColor
	WarningColor    lipgloss.AdaptiveColor
	ErrorColor      lipgloss.AdaptiveColor
	TextColor       lipgloss.AdaptiveColor
	MutedColor      lipgloss.AdaptiveColor
	BackgroundColor lipgloss.AdaptiveColor
	SelectionColor  lipgloss.AdaptiveColor
	ChipColor       lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor    { return p.PrimaryColor }
func (p Palette) Accent() lipgloss.AdaptiveColor     { return p.AccentColor }
func (p Palette) Success() lipgloss.AdaptiveColor    { return p.SuccessColor }
func (p Palette) Warning() lipgloss.AdaptiveColor    { return p.WarningColor }
func (p Palette) Error() lipgloss.AdaptiveColor      { return p.ErrorColor }
func (p Palette) Text() lipgloss.AdaptiveColor       { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor  { return p.MutedColor }
func (p Palette) Background() lipgloss.AdaptiveColor { return p.BackgroundColor }
func (p Palette) Selection() lipgloss.AdaptiveColor  { return p.SelectionColor }
func (p Palette) Chip() lipgloss.AdaptiveColor       { return p.ChipColor }

func c(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Dracula
// https://draculatheme.com/contribute
var Dracula = Palette{
	PrimaryColor:    c("#7e57c2", "#bd93f9"),
	AccentColor:     c("#0097a7", "#8be9fd"),
	SuccessColor:    c("#388e3c", "#50fa7b"),
	WarningColor:    c("#ef6c00", "#ffb86c"),
	ErrorColor:      c("#d32f2f", "#ff5555"),
	TextColor:       c("#212121", "#f8f8f2"),
	MutedColor:      c("#757575", "#6272a4"),
	BackgroundColor: c("#ffffff", "#282a36"),
	SelectionColor:  c("#e0e0e0", "#44475a"),
	ChipColor:       c("#bdbdbd", "#1e1f29"),
}

// Nord
// https://www.nordtheme.com/docs/colors-and-palettes
var Nord = Palette{
	PrimaryColor:    c("#5E81AC", "#88C0D0"),
	AccentColor:     c("#8FBCBB", "#8FBCBB"),
	SuccessColor:    c("#A3BE8C", "#A3BE8C"),
	WarningColor:    c("#D08770", "#D08770"),
	ErrorColor:      c("#BF616A", "#BF616A"),
	TextColor:       c("#2E3440", "#ECEFF4"),
	MutedColor:      c("#3B4252", "#8B95A7"),
	BackgroundColor: c("#ECEFF4", "#2E3440"),
	SelectionColor:  c("#E5E9F0", "#3B4252"),
	ChipColor:       c("#D8DEE9", "#434C5E"),
}

// Catppuccin (Latte / Mocha)
var Catppuccin = Palette{
	PrimaryColor:    c("#1e66f5", "#89b4fa"),
	AccentColor:     c("#fe640b", "#fab387"),
	SuccessColor:    c("#40a02b", "#a6e3a1"),
	WarningColor:    c("#fe640b", "#fab387"),
	ErrorColor:      c("#d20f39", "#f38ba8"),
	TextColor:       c("#4c4f69", "#cdd6f4"),
	MutedColor:      c("#9ca0b0", "#6c7086"),
	BackgroundColor: c("#eff1f5", "#1e1e2e"),
	SelectionColor:  c("#e6e9ef", "#313244"),
	ChipColor:       c("#dce0e8", "#181825"),
}

var Gruvbox = Palette{
	PrimaryColor:    c("#076678", "#83a598"),
	AccentColor:     c("#b57614", "#fabd2f"),
	SuccessColor:    c("#79740e", "#b8bb26"),
	WarningColor:    c("#af3a03", "#fe8019"),
	ErrorColor:      c("#9d0006", "#fb4934"),
	TextColor:       c("#3c3836", "#ebdbb2"),
	MutedColor:      c("#7c6f64", "#a89984"),
	BackgroundColor: c("#fbf1c7", "#282828"),
	SelectionColor:  c("#ebdbb2", "#504945"),
	ChipColor:       c("#d5c4a1", "#1d2021"),
}

// Solarized
// https://ethanschoonover.com/solarized/
var Solarized = Palette{
	PrimaryColor:    c("#268bd2", "#268bd2"),
	AccentColor:     c("#2aa198", "#2aa198"),
	SuccessColor:    c("#859900", "#859900"),
	WarningColor:    c("#b58900", "#b58900"),
	ErrorColor:      c("#dc322f", "#dc322f"),
	TextColor:       c("#657b83", "#839496"),
	MutedColor:      c("#93a1a1", "#586e75"),
	BackgroundColor: c("#fdf6e3", "#002b36"),
	SelectionColor:  c("#eee8d5", "#073642"),
	ChipColor:       c("#eee8d5", "#073642"),
}

func init() {
	RegisterTheme("dracula", Dracula)
	RegisterTheme("catppuccin", Catppuccin)
	RegisterTheme("gruvbox", Gruvbox)
	RegisterTheme("nord", Nord)
	RegisterTheme("solarized", Solarized)
}
