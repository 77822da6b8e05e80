package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/zmk-tools/zmk2vial/internal/domain"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewUI creates the plain-text UI.
func NewUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayLayers prints one table row per layer with its binding mix.
func (s *SimpleUI) DisplayLayers(keymap m.Keymap) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Layer", "Name", "Keys", "Mod-Taps", "Layer Actions", "Unassigned"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	total := 0

	for i, layer := range keymap.Layers {
		var modTaps, layerActions, unassigned int
		for _, b := range layer.Bindings {
			switch b.Kind {
			case m.BindingModTap:
				modTaps++
			case m.BindingLayerTap, m.BindingMomentary, m.BindingToLayer:
				layerActions++
			case m.BindingNone:
				unassigned++
			}
		}
		total += len(layer.Bindings)

		table.Append([]string{
			fmt.Sprintf("%d", i),
			layer.Name,
			fmt.Sprintf("%d", len(layer.Bindings)),
			fmt.Sprintf("%d", modTaps),
			fmt.Sprintf("%d", layerActions),
			fmt.Sprintf("%d", unassigned),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Layers %d", len(keymap.Layers)),
		"", fmt.Sprintf("%d", total), "", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySummary reports where the converted layout went and any dropped
// keys.
func (s *SimpleUI) DisplaySummary(summary domain.ConvertSummary) {
	for _, warning := range summary.Warnings {
		s.printf("warning: %s\n", warning)
	}
	s.printf("Converted %d layer(s) into %s (%d layer slots)\n",
		summary.Layers, summary.Output, summary.Capacity)
	s.printf("Load it in Vial via File -> Load saved layout\n")
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
