package targets

import (
	"fmt"

	"github.com/enlight/dbgmits/pkg/target"
	"github.com/enlight/dbgmits/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// =============================================================================
// Color definitions for CLI output
// =============================================================================

var (
	colorName       = color.New(color.FgHiGreen, color.Bold)
	colorBinary     = color.New(color.FgCyan)
	colorCapability = color.New(color.FgYellow)
	colorSummary    = color.New(color.FgHiBlack)
)

var listLong bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all debugger test targets",
	Long: `Lists every target in the suite with the binary it builds to and the
debugger capabilities it exercises.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range target.Descriptor.AllTargets() {
			fmt.Printf("%s  %s  %s\n",
				colorName.Sprint(t.Name),
				colorBinary.Sprint(t.Binary),
				colorCapability.Sprint(utils.FormatSlice(t.Capabilities, ", ")))
			if listLong {
				fmt.Printf("    %s\n", colorSummary.Sprint(t.Summary))
			}
		}
	},
}

func init() {
	TargetsCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Also print each target's summary")
}
