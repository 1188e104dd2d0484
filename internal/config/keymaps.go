package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`

	// Submission
	Submit string `yaml:"submit"`

	// Other
	TogglePreview string `yaml:"toggle_preview"`
	Quit          string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextField:     "tab",
		PrevField:     "shift+tab",
		Submit:        "ctrl+s",
		TogglePreview: "ctrl+p",
		Quit:          "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
	if k.TogglePreview == "" {
		k.TogglePreview = defaults.TogglePreview
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
