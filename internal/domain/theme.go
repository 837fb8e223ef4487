package domain

// ThemeStyle describes how a theme renders the public page. The frontend
// applies these values directly; the palette fields are CSS color values.
type ThemeStyle struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	LinkCard   string `json:"link_card"`
	LinkBorder string `json:"link_border"`
	Blur       bool   `json:"blur"`
}

var themeStyles = map[string]ThemeStyle{
	ThemeMinimal: {
		Name:       ThemeMinimal,
		Background: "var(--background)",
		Text:       "var(--foreground)",
		Muted:      "var(--muted-foreground)",
		LinkCard:   "var(--background)",
		LinkBorder: "var(--border)",
	},
	ThemeGradient: {
		Name:       ThemeGradient,
		Background: "linear-gradient(to bottom right, #4F46E5, #7C3AED)",
		Text:       "#FFFFFF",
		Muted:      "rgba(255, 255, 255, 0.8)",
		LinkCard:   "rgba(255, 255, 255, 0.15)",
		LinkBorder: "rgba(255, 255, 255, 0.1)",
		Blur:       true,
	},
	ThemeDark: {
		Name:       ThemeDark,
		Background: "#121212",
		Text:       "#FFFFFF",
		Muted:      "#A1A1AA",
		LinkCard:   "#1F1F1F",
		LinkBorder: "#2D2D2D",
	},
}

// ThemeStyleFor returns the style for a theme name, falling back to
// minimal for anything unknown.
func ThemeStyleFor(name string) ThemeStyle {
	if style, ok := themeStyles[name]; ok {
		return style
	}
	return themeStyles[ThemeMinimal]
}

// ThemeStyles returns all theme styles in picker order.
func ThemeStyles() []ThemeStyle {
	out := make([]ThemeStyle, 0, len(Themes))
	for _, name := range Themes {
		out = append(out, themeStyles[name])
	}
	return out
}
