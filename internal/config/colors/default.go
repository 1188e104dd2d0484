package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Error:   "#FF5F5F",
		Success: "#5FD75F",

		// UI elements
		PanelBorder: "#5F87D7",
		FieldBorder: "#585858",
		FocusBorder: "#D75FD7",
		ButtonFg:    "#FFFFFF",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
