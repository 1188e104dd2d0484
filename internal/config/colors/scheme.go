package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for focus, buttons, the spinner)
	Accent string `yaml:"accent"`

	// Semantic colors
	Error   string `yaml:"error"`   // Red - validation messages, errored field borders
	Success string `yaml:"success"` // Green - confirmation flashes

	// UI element colors
	PanelBorder string `yaml:"panel_border"`
	FieldBorder string `yaml:"field_border"`
	FocusBorder string `yaml:"focus_border"`
	ButtonFg    string `yaml:"button_fg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.PanelBorder == "" {
		c.PanelBorder = preset.PanelBorder
	}
	if c.FieldBorder == "" {
		c.FieldBorder = preset.FieldBorder
	}
	if c.FocusBorder == "" {
		c.FocusBorder = preset.FocusBorder
	}
	if c.ButtonFg == "" {
		c.ButtonFg = preset.ButtonFg
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
}

// MergeFrom copies non-empty values from other into c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Error != "" {
		c.Error = other.Error
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.PanelBorder != "" {
		c.PanelBorder = other.PanelBorder
	}
	if other.FieldBorder != "" {
		c.FieldBorder = other.FieldBorder
	}
	if other.FocusBorder != "" {
		c.FocusBorder = other.FocusBorder
	}
	if other.ButtonFg != "" {
		c.ButtonFg = other.ButtonFg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
}
