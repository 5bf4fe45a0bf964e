package targets

import (
	"github.com/spf13/cobra"
)

// TargetsCmd groups the commands operating on the debugger test targets
var TargetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Inspect and launch the debugger test targets",
}
