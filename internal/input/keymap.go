package input

const (
	// KeyPanStep is how far one arrow key press pans, in sub-pixels.
	KeyPanStep = 8

	TimeScaleStep = 1.25
)

// Keymap translates key names (as reported by the terminal layer) into
// commands.
type Keymap map[string]Command

func DefaultKeymap() Keymap {
	return Keymap{
		"q":      Quit{},
		"ctrl+c": Quit{},
		" ":      TogglePause{},
		"+":      ScaleTime{Factor: TimeScaleStep},
		"=":      ScaleTime{Factor: TimeScaleStep},
		"-":      ScaleTime{Factor: 1 / TimeScaleStep},
		"_":      ScaleTime{Factor: 1 / TimeScaleStep},
		"0":      ResetTime{},
		"tab":    CycleSelection{},
		"r":      ResetScene{},
		"c":      ClearScene{},
		"t":      CycleTheme{},
		"?":      ToggleHelp{},
		"]":      Zoom{Steps: 1},
		"[":      Zoom{Steps: -1},
		"}":      Zoom{Steps: 1, Coarse: true},
		"{":      Zoom{Steps: -1, Coarse: true},
		"left":   Pan{DX: KeyPanStep},
		"right":  Pan{DX: -KeyPanStep},
		"up":     Pan{DY: KeyPanStep},
		"down":   Pan{DY: -KeyPanStep},
		"h":      Pan{DX: KeyPanStep},
		"l":      Pan{DX: -KeyPanStep},
		"k":      Pan{DY: KeyPanStep},
		"j":      Pan{DY: -KeyPanStep},
	}
}

// Lookup returns the command bound to key, or nil.
func (k Keymap) Lookup(key string) Command {
	return k[key]
}
