// Package controller provides output adapters for presenting conversion
// results.
package controller

import (
	"github.com/zmk-tools/zmk2vial/internal/domain"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// UI defines the interface for presenting run results. Implementations can
// use different output methods.
type UI interface {
	// DisplayLayers shows the parsed source layers and their binding mix.
	DisplayLayers(keymap m.Keymap) error

	// DisplaySummary reports a completed conversion.
	DisplaySummary(summary domain.ConvertSummary)
}
