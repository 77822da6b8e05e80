// Package cmd provides the root command and CLI setup for zmk2vial.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zmk-tools/zmk2vial/internal/adapter"
	"github.com/zmk-tools/zmk2vial/internal/controller"
	"github.com/zmk-tools/zmk2vial/internal/domain"
	"github.com/zmk-tools/zmk2vial/internal/log"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

const (
	defaultRepo       = "timur-hassan/zmk-config-chocofi"
	defaultBranch     = "master"
	defaultKeymapPath = "config/corne.keymap"
)

var (
	localFlag      string
	repoFlag       string
	branchFlag     string
	keymapPathFlag string
	templateFlag   string
	outputFlag     string
	logLevelFlag   string
)

// convertWorkflow can be replaced in tests; when nil the real pipeline is
// wired on first use.
var convertWorkflow domain.Workflow

func pipeline() domain.Workflow {
	if convertWorkflow != nil {
		return convertWorkflow
	}
	return domain.NewWorkflow(adapter.NewTemplateStore(), adapter.NewVilWriter())
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zmk2vial",
		Short: "Convert a ZMK keymap to a Vial .vil layout",
		Long: `zmk2vial converts a ZMK keymap into a Vial .vil layout file.

The keymap is fetched from a GitHub repository's raw content (or read from a
local path), remapped onto Vial's 8-row matrix, and merged into a template
.vil whose tap-dance, macro and settings sections are preserved unchanged.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Configure(log.Config{Level: logLevelFlag})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := resolveSource()

			output := outputFlag
			if output == "" {
				output = defaultOutput(source.Location())
			}

			summary, err := pipeline().Convert(domain.ConvertArgs{
				Source:   source,
				Template: m.Path(templateFlag),
				Output:   m.Path(output),
			})
			if err != nil {
				return err
			}

			controller.NewUI(cmd).DisplaySummary(summary)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&localFlag, "local", "l", "", "path to a local .keymap file instead of fetching")
	cmd.PersistentFlags().StringVarP(&repoFlag, "repo", "r", defaultRepo, "GitHub repository to fetch from")
	cmd.PersistentFlags().StringVarP(&branchFlag, "branch", "b", defaultBranch, "branch to fetch from")
	cmd.PersistentFlags().StringVar(&keymapPathFlag, "keymap-path", defaultKeymapPath, "keymap file path within the repository")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
	cmd.MarkFlagsMutuallyExclusive("local", "repo")

	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "template .vil file carrying macros, tap-dances and settings")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output .vil path (default: derived from the keymap name)")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(m.ExitCode(err))
	}
}

func resolveSource() adapter.KeymapSource {
	if localFlag != "" {
		return adapter.NewLocalKeymapSource(m.Path(localFlag))
	}
	return adapter.NewGitHubKeymapSource(repoFlag, branchFlag, keymapPathFlag)
}

// defaultOutput derives the output file name from the keymap location:
// config/corne.keymap becomes corne.vil.
func defaultOutput(location string) string {
	base := filepath.Base(location)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "layout"
	}
	return base + ".vil"
}
