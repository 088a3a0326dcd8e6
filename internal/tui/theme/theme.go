// Package theme defines the colour palettes for lifedash output.
//
// Each palette has a dark and a light variant; the stored dark/light
// preference picks one, the config file picks the palette.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the UI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	Green         lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	Yellow        lipgloss.Color
	Cyan          lipgloss.Color
}

// Palette pairs the dark and light variants of one colour scheme.
type Palette struct {
	Name  string
	Dark  Theme
	Light Theme
}

// Active is the currently selected theme.
var Active = FlexokiLight

// FlexokiDark is the default dark variant - warm, paper-inspired.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
	Cyan:         lipgloss.Color("#24837B"),
}

// FlexokiLight is the paper-coloured light variant.
var FlexokiLight = Theme{
	Name:         "flexoki-light",
	Background:   lipgloss.Color("#FFFCF0"),
	Surface:      lipgloss.Color("#F2F0E5"),
	SurfaceHover: lipgloss.Color("#E6E4D9"),
	Border:       lipgloss.Color("#CECDC3"),
	BorderAccent: lipgloss.Color("#24837B"),
	TextDim:      lipgloss.Color("#B7B5AC"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#100F0F"),
	Accent:       lipgloss.Color("#24837B"),
	AccentBright: lipgloss.Color("#3AA99F"),
	Green:        lipgloss.Color("#66800B"),
	Orange:       lipgloss.Color("#BC5215"),
	Red:          lipgloss.Color("#AF3029"),
	Blue:         lipgloss.Color("#205EA6"),
	Yellow:       lipgloss.Color("#AD8301"),
	Cyan:         lipgloss.Color("#24837B"),
}

// CatppuccinMocha is a warm pastel dark theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	SurfaceHover: lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Green:        lipgloss.Color("#A6E3A1"),
	Orange:       lipgloss.Color("#FAB387"),
	Red:          lipgloss.Color("#F38BA8"),
	Blue:         lipgloss.Color("#89B4FA"),
	Yellow:       lipgloss.Color("#F9E2AF"),
	Cyan:         lipgloss.Color("#94E2D5"),
}

// CatppuccinLatte is the light Catppuccin flavour.
var CatppuccinLatte = Theme{
	Name:         "catppuccin-latte",
	Background:   lipgloss.Color("#EFF1F5"),
	Surface:      lipgloss.Color("#E6E9EF"),
	SurfaceHover: lipgloss.Color("#CCD0DA"),
	Border:       lipgloss.Color("#BCC0CC"),
	BorderAccent: lipgloss.Color("#1E66F5"),
	TextDim:      lipgloss.Color("#9CA0B0"),
	TextMuted:    lipgloss.Color("#6C6F85"),
	TextPrimary:  lipgloss.Color("#4C4F69"),
	Accent:       lipgloss.Color("#1E66F5"),
	AccentBright: lipgloss.Color("#7287FD"),
	Green:        lipgloss.Color("#40A02B"),
	Orange:       lipgloss.Color("#FE640B"),
	Red:          lipgloss.Color("#D20F39"),
	Blue:         lipgloss.Color("#1E66F5"),
	Yellow:       lipgloss.Color("#DF8E1D"),
	Cyan:         lipgloss.Color("#179299"),
}

// TokyoNight is a cool blue/purple dark theme.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Background:   lipgloss.Color("#1A1B26"),
	Surface:      lipgloss.Color("#24283B"),
	SurfaceHover: lipgloss.Color("#343A52"),
	Border:       lipgloss.Color("#565F89"),
	BorderAccent: lipgloss.Color("#7AA2F7"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentBright: lipgloss.Color("#A9C1FF"),
	Green:        lipgloss.Color("#9ECE6A"),
	Orange:       lipgloss.Color("#FF9E64"),
	Red:          lipgloss.Color("#F7768E"),
	Blue:         lipgloss.Color("#7AA2F7"),
	Yellow:       lipgloss.Color("#E0AF68"),
	Cyan:         lipgloss.Color("#7DCFFF"),
}

// TokyoNightDay is the light Tokyo Night variant.
var TokyoNightDay = Theme{
	Name:         "tokyo-night-day",
	Background:   lipgloss.Color("#E1E2E7"),
	Surface:      lipgloss.Color("#D0D5E3"),
	SurfaceHover: lipgloss.Color("#C4C8DA"),
	Border:       lipgloss.Color("#A8AECB"),
	BorderAccent: lipgloss.Color("#2E7DE9"),
	TextDim:      lipgloss.Color("#8990B3"),
	TextMuted:    lipgloss.Color("#6172B0"),
	TextPrimary:  lipgloss.Color("#3760BF"),
	Accent:       lipgloss.Color("#2E7DE9"),
	AccentBright: lipgloss.Color("#188092"),
	Green:        lipgloss.Color("#587539"),
	Orange:       lipgloss.Color("#B15C00"),
	Red:          lipgloss.Color("#F52A65"),
	Blue:         lipgloss.Color("#2E7DE9"),
	Yellow:       lipgloss.Color("#8C6C3E"),
	Cyan:         lipgloss.Color("#007197"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
	Yellow:       lipgloss.Color("3"),
	Cyan:         lipgloss.Color("6"),
}

// Palettes lists every palette, default first.
var Palettes = []Palette{
	{Name: "flexoki", Dark: FlexokiDark, Light: FlexokiLight},
	{Name: "catppuccin", Dark: CatppuccinMocha, Light: CatppuccinLatte},
	{Name: "tokyo-night", Dark: TokyoNight, Light: TokyoNightDay},
	{Name: "terminal", Dark: Terminal, Light: Terminal},
}

// PaletteByName returns a palette by name, defaulting to flexoki.
func PaletteByName(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Palettes[0]
}

// Resolve picks the dark or light variant of the named palette.
func Resolve(palette string, dark bool) Theme {
	p := PaletteByName(palette)
	if dark {
		return p.Dark
	}
	return p.Light
}

// SetActive sets the active theme.
func SetActive(palette string, dark bool) {
	Active = Resolve(palette, dark)
}
