package domain

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/zmk-tools/zmk2vial/internal/log"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// MapResult carries the mapped per-layer grids plus any non-fatal warnings
// recorded along the way.
type MapResult struct {
	Grids    []m.Grid
	Warnings []string
}

// Mapper remaps parsed layers onto the destination matrix. capacity is the
// number of layers the destination file holds; the mapped result always has
// exactly that many grids, with unused layers fully transparent.
type Mapper interface {
	Map(keymap m.Keymap, capacity int) (MapResult, error)
}

type mapper struct {
	positions *PositionMap
	log       zerolog.Logger
}

// NewMapper constructs a Mapper over the static position map.
func NewMapper() Mapper {
	return &mapper{positions: NewPositionMap(), log: log.WithComponent("mapper")}
}

func (mp *mapper) Map(keymap m.Keymap, capacity int) (MapResult, error) {
	if len(keymap.Layers) > capacity {
		return MapResult{}, fmt.Errorf("%w: source declares %d layers, destination holds %d",
			m.ErrLayerOverflow, len(keymap.Layers), capacity)
	}

	result := MapResult{Grids: make([]m.Grid, 0, capacity)}

	for li, layer := range keymap.Layers {
		grid := m.TransparentGrid(mp.positions.Dead)

		for ki, binding := range layer.Bindings {
			dest, ok := mp.positions.Destination(ki)
			if !ok {
				warning := fmt.Sprintf("layer %q: key %d (%s) has no destination position, dropped",
					layer.Name, ki, binding.Raw)
				mp.log.Warn().Str("layer", layer.Name).Int("key", ki).Str("binding", binding.Raw).
					Msg("source key has no destination position, dropped")
				result.Warnings = append(result.Warnings, warning)
				continue
			}

			keycode, err := translate(binding)
			if err != nil {
				return MapResult{}, fmt.Errorf("layer %q (index %d), key %d: %w", layer.Name, li, ki, err)
			}
			grid[dest.Row][dest.Col] = m.Cell{Keycode: keycode}
		}

		result.Grids = append(result.Grids, grid)
	}

	for len(result.Grids) < capacity {
		result.Grids = append(result.Grids, m.TransparentGrid(mp.positions.Dead))
	}

	return result, nil
}

// translate converts one binding to its destination keycode. The switch is
// exhaustive over BindingKind; a source behavior the destination format
// cannot express is a hard error, since silently dropping an intended
// behavior would corrupt the layout.
func translate(b m.Binding) (string, error) {
	switch b.Kind {
	case m.BindingKeycode:
		return qmkKeycode(b.Keycode), nil
	case m.BindingModTap:
		mod, ok := qmkModifier(b.Hold)
		if !ok {
			return "", fmt.Errorf("%w: %q holds %q, which is not a modifier", m.ErrUnsupportedBinding, b.Raw, b.Hold)
		}
		return mod + "_T(" + qmkKeycode(b.Keycode) + ")", nil
	case m.BindingLayerTap:
		return "LT" + strconv.Itoa(b.Layer) + "(" + qmkKeycode(b.Keycode) + ")", nil
	case m.BindingMomentary:
		return "MO(" + strconv.Itoa(b.Layer) + ")", nil
	case m.BindingToLayer:
		return "TO(" + strconv.Itoa(b.Layer) + ")", nil
	case m.BindingTransparent:
		return m.TransparentKeycode, nil
	case m.BindingNone:
		return "KC_NO", nil
	case m.BindingUnsupported:
		return "", fmt.Errorf("%w: %q", m.ErrUnsupportedBinding, b.Raw)
	default:
		return "", fmt.Errorf("%w: unknown binding kind %q (%s)", m.ErrUnsupportedBinding, b.Kind, b.Raw)
	}
}
