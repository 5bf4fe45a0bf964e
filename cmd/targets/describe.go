package targets

import (
	"fmt"
	"os"

	"github.com/enlight/dbgmits/pkg/target"
	"github.com/spf13/cobra"
)

var describeYaml bool

var describeCmd = &cobra.Command{
	Use:   "describe target",
	Short: "Dump the ground-truth descriptor of a target",
	Long: `Dumps everything a debugger attached to the given target must observe:
marker functions, expected call chains, argument and local values, memory
contents, output and thread contracts.

By default the descriptor is printed as human readable documentation; with
--yaml it is dumped in the YAML form consumed by external harnesses. The
output goes to stdout unless redirected to a file with --output.`,
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: target.Descriptor.Names(),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := describeTarget(args[0], describeYaml)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error creating file:", err)
				os.Exit(2)
			}
			defer file.Close()
			fmt.Fprintln(file, doc)
		} else {
			fmt.Println(doc)
		}
	},
}

// Returns the requested rendering of the named target's descriptor
func describeTarget(name string, asYaml bool) (string, error) {
	t, err := target.Descriptor.Target(name)
	if err != nil {
		return "", err
	}

	if asYaml {
		return t.Yaml()
	}
	return t.DocString(), nil
}

func init() {
	TargetsCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the descriptor is dumped to stdout.")
	describeCmd.Flags().BoolVar(&describeYaml, "yaml", false, "Dump the descriptor as YAML instead of documentation text")
}
