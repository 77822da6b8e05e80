package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zmk-tools/zmk2vial/internal/controller"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the layers of the source keymap",
		Long:  "Parse the source keymap and print its layers with their binding mix, without converting.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			keymap, err := pipeline().Inspect(resolveSource())
			if err != nil {
				return err
			}

			return controller.NewUI(cmd).DisplayLayers(keymap)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
