package colors

// Monochrome returns a grayscale color scheme for minimal terminals
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Error:   "#BCBCBC",
		Success: "#EEEEEE",

		PanelBorder: "#6C6C6C",
		FieldBorder: "#444444",
		FocusBorder: "#FFFFFF",
		ButtonFg:    "#000000",

		Title:  "#FFFFFF",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",
	}
}
