// Package model defines the data structures shared across the converter.
package model

// Path represents a file system path.
type Path string

// BindingKind represents the category of a key binding.
type BindingKind string

const (
	// BindingKeycode is a plain key press (&kp).
	BindingKeycode BindingKind = "keycode"

	// BindingModTap acts as a modifier when held and a key when tapped
	// (&mt and custom hold-tap behaviors).
	BindingModTap BindingKind = "mod-tap"

	// BindingLayerTap activates a layer when held and taps a key otherwise (&lt).
	BindingLayerTap BindingKind = "layer-tap"

	// BindingMomentary activates a layer while held (&mo).
	BindingMomentary BindingKind = "momentary"

	// BindingToLayer switches to a layer (&to).
	BindingToLayer BindingKind = "to-layer"

	// BindingTransparent falls through to the layer beneath (&trans).
	BindingTransparent BindingKind = "transparent"

	// BindingNone is an explicitly unassigned key (&none, and ZMK-only
	// hardware features like &bt that the destination cannot express).
	BindingNone BindingKind = "none"

	// BindingUnsupported is a source behavior the converter cannot translate.
	// Reaching the mapper with one of these is a hard error.
	BindingUnsupported BindingKind = "unsupported"
)

// Binding is the action assigned to one physical key position on one layer.
// Bindings are immutable values produced by the parser and only read
// afterwards.
type Binding struct {
	Kind    BindingKind
	Keycode string // ZMK key name for Keycode; tap key for ModTap and LayerTap
	Hold    string // ZMK modifier name for ModTap
	Layer   int    // target layer for LayerTap, Momentary and ToLayer
	Raw     string // original source token sequence, kept for diagnostics
}

// Keycode builds a plain keypress binding.
func Keycode(name string) Binding {
	return Binding{Kind: BindingKeycode, Keycode: name, Raw: "&kp " + name}
}

// Transparent builds a fall-through binding.
func Transparent() Binding {
	return Binding{Kind: BindingTransparent, Raw: "&trans"}
}

// None builds an unassigned binding.
func None() Binding {
	return Binding{Kind: BindingNone, Raw: "&none"}
}
