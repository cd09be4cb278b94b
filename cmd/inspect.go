package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xll-gen/cc-arrays/internal/generator"
	"github.com/xll-gen/cc-arrays/internal/ui"
)

// noColor disables ANSI colors in the inspect report.
var noColor bool

// inspectCmd reports what would be generated without writing anything.
var inspectCmd = &cobra.Command{
	Use:   "inspect <inputs>...",
	Short: "Show array names, types and sizes for inputs without generating files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			ui.DisableColor()
		}
		ui.Out = cmd.OutOrStdout()
		return runInspect(args)
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(inspectCmd)
}

// runInspect prints one report entry per unique input and a warning for
// every repeated one. Inputs that cannot be classified or read are
// reported and returned as an error.
func runInspect(inputs []string) error {
	ui.PrintHeader("Inputs")

	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if seen[in] {
			ui.PrintWarning("duplicate", in+" (generated once)")
		}
		seen[in] = true
	}

	reports, err := generator.Inspect(inputs)
	for _, r := range reports {
		ui.PrintSuccess(r.Input.Kind.String(), r.Input.Path)
		ui.PrintDetail(fmt.Sprintf("%s %s[%d]", r.Spec.ElementType, r.Spec.Name, r.Count))
	}
	if err != nil {
		ui.PrintError("error", err.Error())
		return err
	}
	return nil
}
