package model

// Behavior captures hold-tap tuning parsed from the source keymap. It is
// informational only: the destination template stays authoritative for
// timing settings.
type Behavior struct {
	Name             string
	TappingTermMS    int
	Flavor           string
	RequirePriorIdle int
}

// Layer is one ordered set of bindings. The slice index of a binding is the
// source key position; the slice index of the layer within Keymap is its
// activation index.
type Layer struct {
	Name     string
	Bindings []Binding
}

// Keymap is the parsed source keymap with layers in declaration order.
type Keymap struct {
	Layers    []Layer
	Behaviors map[string]Behavior
}
